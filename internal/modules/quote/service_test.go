package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"jatriwheels/internal/config"
	"jatriwheels/internal/types"
)

// stubResolver maps place IDs to canned resolutions.
type stubResolver struct {
	places map[types.ID]ResolvedPlace
	errs   map[types.ID]error
}

func (s *stubResolver) Resolve(_ context.Context, ref PlaceReference) (ResolvedPlace, error) {
	if err, ok := s.errs[ref.ID]; ok {
		return ResolvedPlace{}, err
	}
	p, ok := s.places[ref.ID]
	if !ok {
		return ResolvedPlace{}, errors.New("unknown place")
	}
	return p, nil
}

type stubDistance struct {
	km  float64
	err error
}

func (s *stubDistance) RouteDistance(_ context.Context, _, _ PlaceReference) (float64, error) {
	return s.km, s.err
}

func testConfig() config.QuoteConfig {
	return config.QuoteConfig{
		ServicedRegions: northeastStates,
		MinLeadTime:     4 * time.Hour,
		PlatformFeePct:  5,
		AdvancePct:      20,
	}
}

func newTestService(resolver PlaceResolver, distance DistanceProvider) *Service {
	s := NewService(resolver, distance, testConfig(), zap.NewNop())
	s.loc = time.UTC
	s.now = func() time.Time { return time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func placeAt(state string, lat, lng float64) ResolvedPlace {
	p := statePlace(state)
	p.Position = types.Point{Lat: lat, Lng: lng}
	return p
}

func validSpec() TripSpec {
	return TripSpec{
		Pickup:  PlaceReference{ID: "p1", Label: "Guwahati, Assam"},
		Dropoff: PlaceReference{ID: "p2", Label: "Shillong, Meghalaya"},
		Type:    OneWay,
		Date:    "2024-01-02",
		Time:    "09:00",
	}
}

func TestQuoteTrip_EndToEnd(t *testing.T) {
	resolver := &stubResolver{places: map[types.ID]ResolvedPlace{
		"p1": placeAt("Assam", 26.1445, 91.7362),
		"p2": placeAt("Meghalaya", 25.5788, 91.8933),
	}}
	svc := newTestService(resolver, &stubDistance{km: 180.4})

	q, err := svc.QuoteTrip(context.Background(), validSpec(), types.INR(1500))
	if err != nil {
		t.Fatalf("QuoteTrip() error: %v", err)
	}
	if q.DistanceSource != SourceRouted {
		t.Errorf("DistanceSource = %s, want routed", q.DistanceSource)
	}
	if q.TripCost.Amount != 270600 || q.PlatformFee.Amount != 13530 ||
		q.TotalCost.Amount != 284130 || q.AdvancePayment.Amount != 56826 {
		t.Errorf("unexpected quote amounts: %+v", q)
	}
}

func TestQuoteTrip_RoundTrip(t *testing.T) {
	resolver := &stubResolver{places: map[types.ID]ResolvedPlace{
		"p1": placeAt("Assam", 26.1445, 91.7362),
		"p2": placeAt("Meghalaya", 25.5788, 91.8933),
	}}
	svc := newTestService(resolver, &stubDistance{km: 180.4})

	spec := validSpec()
	spec.Type = RoundTrip
	q, err := svc.QuoteTrip(context.Background(), spec, types.INR(1500))
	if err != nil {
		t.Fatalf("QuoteTrip() error: %v", err)
	}
	if q.TotalKm != 360.8 {
		t.Errorf("TotalKm = %f, want 360.8", q.TotalKm)
	}
	if q.TripCost.Amount != 541200 || q.TotalCost.Amount != 568260 || q.AdvancePayment.Amount != 113652 {
		t.Errorf("unexpected round-trip amounts: %+v", q)
	}
}

func TestQuoteTrip_RegionIneligible(t *testing.T) {
	resolver := &stubResolver{places: map[types.ID]ResolvedPlace{
		"p1": placeAt("Assam", 26.1445, 91.7362),
		"p2": placeAt("West Bengal", 22.5726, 88.3639),
	}}
	svc := newTestService(resolver, &stubDistance{km: 1000})

	_, err := svc.QuoteTrip(context.Background(), validSpec(), types.INR(1500))
	if !errors.Is(err, ErrRegionIneligible) {
		t.Errorf("QuoteTrip() error = %v, want ErrRegionIneligible", err)
	}
}

func TestQuoteTrip_ResolutionFailsClosed(t *testing.T) {
	resolver := &stubResolver{
		places: map[types.ID]ResolvedPlace{"p1": placeAt("Assam", 26.1, 91.7)},
		errs:   map[types.ID]error{"p2": errors.New("geocode api error")},
	}
	svc := newTestService(resolver, &stubDistance{km: 180.4})

	_, err := svc.QuoteTrip(context.Background(), validSpec(), types.INR(1500))
	if !errors.Is(err, ErrResolutionFailed) {
		t.Errorf("QuoteTrip() error = %v, want ErrResolutionFailed", err)
	}
}

func TestQuoteTrip_StraightLineFallback(t *testing.T) {
	resolver := &stubResolver{places: map[types.ID]ResolvedPlace{
		"p1": placeAt("Assam", 26.1445, 91.7362),
		"p2": placeAt("Meghalaya", 25.5788, 91.8933),
	}}
	svc := newTestService(resolver, &stubDistance{err: errors.New("matrix down")})

	q, err := svc.QuoteTrip(context.Background(), validSpec(), types.INR(1500))
	if err != nil {
		t.Fatalf("QuoteTrip() error: %v", err)
	}
	if q.DistanceSource != SourceStraightLine {
		t.Errorf("DistanceSource = %s, want straight_line", q.DistanceSource)
	}
	// Guwahati to Shillong is roughly 65 km as the crow flies.
	if q.OneWayKm < 55 || q.OneWayKm > 75 {
		t.Errorf("fallback distance = %f km, want ~65", q.OneWayKm)
	}
}

func TestQuoteTrip_DistanceUnavailable(t *testing.T) {
	// Resolutions succeed but carry no coordinates, so the fallback
	// has nothing to work with.
	resolver := &stubResolver{places: map[types.ID]ResolvedPlace{
		"p1": statePlace("Assam"),
		"p2": statePlace("Meghalaya"),
	}}
	svc := newTestService(resolver, &stubDistance{err: errors.New("matrix down")})

	_, err := svc.QuoteTrip(context.Background(), validSpec(), types.INR(1500))
	if !errors.Is(err, ErrDistanceUnavailable) {
		t.Errorf("QuoteTrip() error = %v, want ErrDistanceUnavailable", err)
	}
}

func TestQuoteTrip_LeadTimeTooShort(t *testing.T) {
	resolver := &stubResolver{places: map[types.ID]ResolvedPlace{
		"p1": placeAt("Assam", 26.1, 91.7),
		"p2": placeAt("Meghalaya", 25.5, 91.8),
	}}
	svc := newTestService(resolver, &stubDistance{km: 180.4})

	spec := validSpec()
	spec.Date = "2024-01-01"
	spec.Time = "13:00"
	_, err := svc.QuoteTrip(context.Background(), spec, types.INR(1500))
	if !errors.Is(err, ErrLeadTimeTooShort) {
		t.Errorf("QuoteTrip() error = %v, want ErrLeadTimeTooShort", err)
	}

	// The same clock time the next day has a full day of lead.
	spec.Date = "2024-01-02"
	if _, err := svc.QuoteTrip(context.Background(), spec, types.INR(1500)); err != nil {
		t.Errorf("next-day trip rejected: %v", err)
	}
}

func TestQuoteTrip_InvalidInput(t *testing.T) {
	resolver := &stubResolver{places: map[types.ID]ResolvedPlace{}}
	svc := newTestService(resolver, &stubDistance{km: 1})

	tests := []struct {
		name   string
		mutate func(*TripSpec)
		rate   int64
	}{
		{"missing pickup", func(s *TripSpec) { s.Pickup.ID = "" }, 1500},
		{"missing dropoff", func(s *TripSpec) { s.Dropoff.ID = "" }, 1500},
		{"missing date", func(s *TripSpec) { s.Date = "" }, 1500},
		{"missing time", func(s *TripSpec) { s.Time = "" }, 1500},
		{"bad trip type", func(s *TripSpec) { s.Type = "shuttle" }, 1500},
		{"malformed date", func(s *TripSpec) { s.Date = "tomorrow" }, 1500},
		{"negative rate", func(s *TripSpec) {}, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)
			_, err := svc.QuoteTrip(context.Background(), spec, types.INR(tt.rate))
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("QuoteTrip() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestHaversineKm_SamePoint(t *testing.T) {
	p := types.Point{Lat: 26.1445, Lng: 91.7362}
	if d := haversineKm(p, p); d != 0 {
		t.Errorf("haversineKm(p, p) = %f, want 0", d)
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	a := types.Point{Lat: 26.1445, Lng: 91.7362}
	b := types.Point{Lat: 25.5788, Lng: 91.8933}
	d1, d2 := haversineKm(a, b), haversineKm(b, a)
	if d1 != d2 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}
