// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jatriwheels/internal/modules/admin"
	"jatriwheels/internal/modules/booking"
	"jatriwheels/internal/modules/quote"
	"jatriwheels/internal/modules/rental"
	"jatriwheels/internal/modules/user"
	"jatriwheels/internal/modules/vehicle"
)

// errorResponse carries a stable machine-readable code next to the
// human message so clients can branch without string matching.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeErrorCode(c *gin.Context, status int, msg, code string) {
	writeJSON(c, status, errorResponse{Error: msg, Code: code})
}

func writeQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, quote.ErrInvalidInput):
		writeErrorCode(c, http.StatusBadRequest, err.Error(), "invalid_input")
	case errors.Is(err, quote.ErrLeadTimeTooShort):
		writeErrorCode(c, http.StatusUnprocessableEntity, err.Error(), "lead_time_too_short")
	case errors.Is(err, quote.ErrRegionIneligible):
		writeErrorCode(c, http.StatusUnprocessableEntity, err.Error(), "region_ineligible")
	case errors.Is(err, quote.ErrResolutionFailed):
		// Unresolved places fail closed; the client sees the same
		// outcome as an out-of-area trip.
		writeErrorCode(c, http.StatusUnprocessableEntity, "service unavailable in this region", "region_ineligible")
	case errors.Is(err, quote.ErrDistanceUnavailable):
		writeErrorCode(c, http.StatusServiceUnavailable, err.Error(), "distance_unavailable")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeRentalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rental.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, rental.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeVehicleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, vehicle.ErrBadRequest), errors.Is(err, vehicle.ErrInactive):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, vehicle.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, admin.ErrInvalidCredentials),
		errors.Is(err, admin.ErrInvalidToken),
		errors.Is(err, admin.ErrTokenRevoked):
		writeError(c, http.StatusUnauthorized, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
