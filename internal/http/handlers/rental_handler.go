// README: Rental booking handlers: public create plus admin list/update.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jatriwheels/internal/modules/rental"
	"jatriwheels/internal/types"
)

type RentalHandler struct {
	rentals *rental.Service
}

func NewRentalHandler(svc *rental.Service) *RentalHandler {
	return &RentalHandler{rentals: svc}
}

type createRentalReq struct {
	UserID          string   `json:"user_id"`
	VehicleCategory string   `json:"vehicle_category" binding:"required"`
	PickupDate      string   `json:"pickup_date" binding:"required,datetime=2006-01-02"`
	PickupTime      string   `json:"pickup_time" binding:"required,datetime=15:04"`
	PickupLocation  string   `json:"pickup_location" binding:"required"`
	PickupPlaceID   string   `json:"pickup_place_id"`
	Destinations    []string `json:"destinations" binding:"required,min=1,max=10,dive,required"`
	TotalPrice      int64    `json:"total_price" binding:"required,gt=0"` // paise
}

func (h *RentalHandler) Create(c *gin.Context) {
	var req createRentalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	cmd := rental.CreateCommand{
		VehicleCategory: req.VehicleCategory,
		PickupDate:      req.PickupDate,
		PickupTime:      req.PickupTime,
		PickupLocation:  req.PickupLocation,
		PickupPlaceID:   req.PickupPlaceID,
		Destinations:    req.Destinations,
		TotalPrice:      types.INR(req.TotalPrice),
	}
	if req.UserID != "" {
		id := types.ID(req.UserID)
		cmd.UserID = &id
	}

	r, err := h.rentals.Create(c.Request.Context(), cmd)
	if err != nil {
		writeRentalError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"rental": r, "rental_code": r.RentalCode})
}

func (h *RentalHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	out, err := h.rentals.List(c.Request.Context(), limit, offset)
	if err != nil {
		writeRentalError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"rentals": out})
}

func (h *RentalHandler) Get(c *gin.Context) {
	r, err := h.rentals.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeRentalError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, r)
}

func (h *RentalHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.rentals.UpdateStatus(c.Request.Context(), types.ID(c.Param("id")), rental.Status(req.Status)); err != nil {
		writeRentalError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": req.Status})
}

func (h *RentalHandler) UpdatePayment(c *gin.Context) {
	var req updatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.rentals.UpdatePaymentStatus(c.Request.Context(), types.ID(c.Param("id")), rental.PaymentStatus(req.PaymentStatus)); err != nil {
		writeRentalError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"payment_status": req.PaymentStatus})
}
