// README: Quote endpoint: fare + eligibility for a trip and vehicle.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jatriwheels/internal/modules/quote"
	"jatriwheels/internal/types"
)

// quoter and rateSource are the slices of the quote and vehicle
// services this endpoint composes.
type quoter interface {
	QuoteTrip(ctx context.Context, spec quote.TripSpec, ratePerKm types.Money) (quote.Quote, error)
}

type rateSource interface {
	RateFor(ctx context.Context, id types.ID) (types.Money, error)
}

type QuoteHandler struct {
	quotes   quoter
	vehicles rateSource
}

func NewQuoteHandler(quotes quoter, vehicles rateSource) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, vehicles: vehicles}
}

type quoteReq struct {
	PickupPlaceID  string `json:"pickup_place_id" binding:"required"`
	PickupLabel    string `json:"pickup_label"`
	DropoffPlaceID string `json:"dropoff_place_id" binding:"required"`
	DropoffLabel   string `json:"dropoff_label"`
	TripType       string `json:"trip_type" binding:"required,oneof=one_way round_trip"`
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	Time           string `json:"time" binding:"required,datetime=15:04"`
	VehicleID      string `json:"vehicle_id" binding:"required"`
}

// All amounts are integer paise.
type quoteResp struct {
	OneWayKm       float64 `json:"one_way_km"`
	TotalKm        float64 `json:"total_km"`
	TripType       string  `json:"trip_type"`
	DistanceSource string  `json:"distance_source"`
	Currency       string  `json:"currency"`
	RatePerKm      int64   `json:"rate_per_km"`
	TripCost       int64   `json:"trip_cost"`
	PlatformFee    int64   `json:"platform_fee"`
	TotalCost      int64   `json:"total_cost"`
	AdvancePayment int64   `json:"advance_payment"`
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	rate, err := h.vehicles.RateFor(c.Request.Context(), types.ID(req.VehicleID))
	if err != nil {
		writeVehicleError(c, err)
		return
	}

	q, err := h.quotes.QuoteTrip(c.Request.Context(), quote.TripSpec{
		Pickup:  quote.PlaceReference{ID: types.ID(req.PickupPlaceID), Label: req.PickupLabel},
		Dropoff: quote.PlaceReference{ID: types.ID(req.DropoffPlaceID), Label: req.DropoffLabel},
		Type:    quote.TripType(req.TripType),
		Date:    req.Date,
		Time:    req.Time,
	}, rate)
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	// A zero-distance trip prices to zero; not bookable through this site.
	if q.OneWayKm == 0 {
		writeErrorCode(c, http.StatusUnprocessableEntity, "distance too short to book", "distance_too_short")
		return
	}

	writeJSON(c, http.StatusOK, quoteResp{
		OneWayKm:       q.OneWayKm,
		TotalKm:        q.TotalKm,
		TripType:       string(q.TripType),
		DistanceSource: string(q.DistanceSource),
		Currency:       q.TotalCost.Currency,
		RatePerKm:      q.RatePerKm.Amount,
		TripCost:       q.TripCost.Amount,
		PlatformFee:    q.PlatformFee.Amount,
		TotalCost:      q.TotalCost.Amount,
		AdvancePayment: q.AdvancePayment.Amount,
	})
}
