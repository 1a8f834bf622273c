// README: Vehicle handlers: public fleet listing plus admin CRUD.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jatriwheels/internal/modules/vehicle"
	"jatriwheels/internal/types"
)

type VehicleHandler struct {
	vehicles *vehicle.Service
}

func NewVehicleHandler(svc *vehicle.Service) *VehicleHandler {
	return &VehicleHandler{vehicles: svc}
}

// ListPublic returns only active vehicles, for the booking form.
func (h *VehicleHandler) ListPublic(c *gin.Context) {
	out, err := h.vehicles.List(c.Request.Context(), true)
	if err != nil {
		writeVehicleError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"vehicles": out})
}

// ListAll returns the whole fleet, inactive entries included.
func (h *VehicleHandler) ListAll(c *gin.Context) {
	out, err := h.vehicles.List(c.Request.Context(), false)
	if err != nil {
		writeVehicleError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"vehicles": out})
}

type vehicleReq struct {
	Name            string `json:"name" binding:"required"`
	Category        string `json:"category" binding:"required"`
	PricePerKm      int64  `json:"price_per_km" binding:"required,gt=0"` // paise
	Seats           int    `json:"seats" binding:"required,min=1"`
	LuggageCapacity int    `json:"luggage_capacity" binding:"min=0"`
	ImageURL        string `json:"image_url"`
	Active          bool   `json:"active"`
}

func (r vehicleReq) command() vehicle.UpsertCommand {
	return vehicle.UpsertCommand{
		Name:            r.Name,
		Category:        r.Category,
		PricePerKm:      types.INR(r.PricePerKm),
		Seats:           r.Seats,
		LuggageCapacity: r.LuggageCapacity,
		ImageURL:        r.ImageURL,
		Active:          r.Active,
	}
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req vehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	v, err := h.vehicles.Create(c.Request.Context(), req.command())
	if err != nil {
		writeVehicleError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, v)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	var req vehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	v, err := h.vehicles.Update(c.Request.Context(), types.ID(c.Param("id")), req.command())
	if err != nil {
		writeVehicleError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, v)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.vehicles.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeVehicleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
