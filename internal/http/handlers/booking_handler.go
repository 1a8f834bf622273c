// README: Booking handlers: public create plus admin list/update/delete.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jatriwheels/internal/modules/booking"
	"jatriwheels/internal/modules/quote"
	"jatriwheels/internal/types"
)

type BookingHandler struct {
	bookings *booking.Service
	// whatsappNumber is the business line bookings hand off to.
	whatsappNumber string
}

func NewBookingHandler(svc *booking.Service, whatsappNumber string) *BookingHandler {
	return &BookingHandler{bookings: svc, whatsappNumber: whatsappNumber}
}

type createBookingReq struct {
	UserID          string  `json:"user_id"`
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"required,inphone"`
	PickupLocation  string  `json:"pickup_location" binding:"required"`
	DropoffLocation string  `json:"dropoff_location" binding:"required"`
	JourneyDate     string  `json:"journey_date" binding:"required,datetime=2006-01-02"`
	JourneyTime     string  `json:"journey_time" binding:"required,datetime=15:04"`
	Passengers      int     `json:"passengers" binding:"required,min=1"`
	Luggage         int     `json:"luggage" binding:"min=0"`
	TripType        string  `json:"trip_type" binding:"required,oneof=one_way round_trip"`
	DistanceKm      float64 `json:"distance_km" binding:"required,gt=0"`
	TotalFare       int64   `json:"total_fare" binding:"required,gt=0"` // paise
	AdvancePayment  int64   `json:"advance_payment" binding:"min=0"`    // paise
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	cmd := booking.CreateCommand{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		JourneyDate:     req.JourneyDate,
		JourneyTime:     req.JourneyTime,
		Passengers:      req.Passengers,
		Luggage:         req.Luggage,
		TripType:        quote.TripType(req.TripType),
		DistanceKm:      req.DistanceKm,
		TotalFare:       types.INR(req.TotalFare),
		AdvancePayment:  types.INR(req.AdvancePayment),
	}
	if req.UserID != "" {
		id := types.ID(req.UserID)
		cmd.UserID = &id
	}

	b, err := h.bookings.Create(c.Request.Context(), cmd)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	writeJSON(c, http.StatusCreated, gin.H{
		"booking":       b,
		"order_number":  b.OrderNumber,
		"whatsapp_link": booking.HandoffLink(h.whatsappNumber, b),
	})
}

// Track is the public order-status lookup. It exposes progress only,
// never the customer's contact details.
func (h *BookingHandler) Track(c *gin.Context) {
	b, err := h.bookings.GetByOrderNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"order_number":   b.OrderNumber,
		"status":         b.Status,
		"payment_status": b.PaymentStatus,
		"journey_date":   b.JourneyDate,
		"journey_time":   b.JourneyTime,
	})
}

func (h *BookingHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	out, err := h.bookings.List(c.Request.Context(), limit, offset)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": out})
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.bookings.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, b)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.bookings.UpdateStatus(c.Request.Context(), types.ID(c.Param("id")), booking.Status(req.Status)); err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": req.Status})
}

type updatePaymentReq struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

func (h *BookingHandler) UpdatePayment(c *gin.Context) {
	var req updatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.bookings.UpdatePaymentStatus(c.Request.Context(), types.ID(c.Param("id")), booking.PaymentStatus(req.PaymentStatus)); err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"payment_status": req.PaymentStatus})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookings.Delete(c.Request.Context(), types.ID(c.Param("id"))); err != nil {
		writeBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pageParams reads limit/offset query parameters; services clamp them.
func pageParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
