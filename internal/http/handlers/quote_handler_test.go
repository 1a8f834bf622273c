// README: Tests for the quote endpoint: happy path and error mapping.
package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jatriwheels/internal/http/handlers"
	"jatriwheels/internal/modules/quote"
	"jatriwheels/internal/modules/vehicle"
	"jatriwheels/internal/types"
)

type stubQuoter struct {
	quote quote.Quote
	err   error
}

func (s *stubQuoter) QuoteTrip(_ context.Context, _ quote.TripSpec, _ types.Money) (quote.Quote, error) {
	return s.quote, s.err
}

type stubRates struct {
	rate types.Money
	err  error
}

func (s *stubRates) RateFor(_ context.Context, _ types.ID) (types.Money, error) {
	return s.rate, s.err
}

func newQuoteRouter(q *stubQuoter, r *stubRates) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	h := handlers.NewQuoteHandler(q, r)
	e.POST("/api/quotes", h.Create)
	return e
}

const validBody = `{
	"pickup_place_id": "place-a",
	"dropoff_place_id": "place-b",
	"trip_type": "one_way",
	"date": "2026-09-10",
	"time": "09:30",
	"vehicle_id": "veh1"
}`

func postQuote(t *testing.T, e *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestQuoteCreate_HappyPath(t *testing.T) {
	q := quote.Quote{
		OneWayKm:       180.4,
		TotalKm:        180.4,
		TripType:       quote.OneWay,
		DistanceSource: quote.SourceRouted,
		RatePerKm:      types.INR(1500),
		TripCost:       types.INR(270600),
		PlatformFee:    types.INR(13530),
		TotalCost:      types.INR(284130),
		AdvancePayment: types.INR(56826),
	}
	e := newQuoteRouter(&stubQuoter{quote: q}, &stubRates{rate: types.INR(1500)})

	w := postQuote(t, e, validBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{`"total_cost":284130`, `"advance_payment":56826`, `"distance_source":"routed"`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %s in body, got %s", want, body)
		}
	}
}

func TestQuoteCreate_MissingFields(t *testing.T) {
	e := newQuoteRouter(&stubQuoter{}, &stubRates{rate: types.INR(1500)})
	w := postQuote(t, e, `{"pickup_place_id": "place-a"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestQuoteCreate_BadTripType(t *testing.T) {
	e := newQuoteRouter(&stubQuoter{}, &stubRates{rate: types.INR(1500)})
	body := strings.Replace(validBody, "one_way", "three_way", 1)
	w := postQuote(t, e, body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestQuoteCreate_UnknownVehicle(t *testing.T) {
	e := newQuoteRouter(&stubQuoter{}, &stubRates{err: vehicle.ErrNotFound})
	w := postQuote(t, e, validBody)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestQuoteCreate_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"region ineligible", quote.ErrRegionIneligible, http.StatusUnprocessableEntity, "region_ineligible"},
		{"resolution failure reads as ineligible", quote.ErrResolutionFailed, http.StatusUnprocessableEntity, "region_ineligible"},
		{"lead time too short", quote.ErrLeadTimeTooShort, http.StatusUnprocessableEntity, "lead_time_too_short"},
		{"distance unavailable", quote.ErrDistanceUnavailable, http.StatusServiceUnavailable, "distance_unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newQuoteRouter(&stubQuoter{err: tc.err}, &stubRates{rate: types.INR(1500)})
			w := postQuote(t, e, validBody)
			if w.Code != tc.wantStatus {
				t.Errorf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if !strings.Contains(w.Body.String(), tc.wantCode) {
				t.Errorf("expected code %s in body, got %s", tc.wantCode, w.Body.String())
			}
		})
	}
}

func TestQuoteCreate_ZeroDistanceNotBookable(t *testing.T) {
	q := quote.Quote{TripType: quote.OneWay, DistanceSource: quote.SourceRouted}
	e := newQuoteRouter(&stubQuoter{quote: q}, &stubRates{rate: types.INR(1500)})
	w := postQuote(t, e, validBody)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "distance_too_short") {
		t.Errorf("expected distance_too_short code, got %s", w.Body.String())
	}
}
