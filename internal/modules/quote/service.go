// README: Quote service orchestrates resolution, eligibility, distance, and fare.
package quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"jatriwheels/internal/config"
	"jatriwheels/internal/types"
)

var (
	ErrInvalidInput        = errors.New("invalid quote input")
	ErrResolutionFailed    = errors.New("place resolution failed")
	ErrRegionIneligible    = errors.New("service unavailable in this region")
	ErrDistanceUnavailable = errors.New("distance unavailable")
	ErrLeadTimeTooShort    = errors.New("scheduled time too close to now")
)

type Service struct {
	resolver PlaceResolver
	distance DistanceProvider
	area     *ServiceArea
	cfg      config.QuoteConfig
	log      *zap.Logger
	loc      *time.Location
	now      func() time.Time
}

func NewService(resolver PlaceResolver, distance DistanceProvider, cfg config.QuoteConfig, log *zap.Logger) *Service {
	return &Service{
		resolver: resolver,
		distance: distance,
		area:     NewServiceArea(cfg.ServicedRegions),
		cfg:      cfg,
		log:      log,
		loc:      time.Local,
		now:      time.Now,
	}
}

// lookupResult joins the three concurrent external reads. Each quoting
// attempt waits for all of them before deciding anything.
type lookupResult struct {
	pickup     ResolvedPlace
	dropoff    ResolvedPlace
	pickupErr  error
	dropoffErr error
	routedKm   float64
	routedErr  error
}

// QuoteTrip runs one quoting attempt: validate the spec, check the
// lead time, resolve both places and the routed distance concurrently,
// check regional eligibility, then price the trip. Every failure is
// scoped to this attempt and returned as a typed error.
func (s *Service) QuoteTrip(ctx context.Context, spec TripSpec, ratePerKm types.Money) (Quote, error) {
	if spec.Pickup.ID == "" || spec.Dropoff.ID == "" || spec.Date == "" || spec.Time == "" {
		return Quote{}, ErrInvalidInput
	}
	if !spec.Type.Valid() {
		return Quote{}, ErrInvalidInput
	}
	if ratePerKm.Amount < 0 {
		return Quote{}, ErrInvalidInput
	}

	scheduled, err := spec.ScheduledAt(s.loc)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: bad date or time: %v", ErrInvalidInput, err)
	}
	if err := ValidateLeadTime(scheduled, s.now(), s.cfg.MinLeadTime); err != nil {
		return Quote{}, err
	}

	res := s.lookup(ctx, spec)

	// Fail closed: an unresolved place can never be eligible.
	if res.pickupErr != nil {
		return Quote{}, fmt.Errorf("%w: pickup: %v", ErrResolutionFailed, res.pickupErr)
	}
	if res.dropoffErr != nil {
		return Quote{}, fmt.Errorf("%w: dropoff: %v", ErrResolutionFailed, res.dropoffErr)
	}
	if !s.area.Contains(res.pickup) || !s.area.Contains(res.dropoff) {
		return Quote{}, ErrRegionIneligible
	}

	km, source, err := s.pickDistance(res, spec)
	if err != nil {
		return Quote{}, err
	}

	q, err := Fare(km, spec.Type, ratePerKm, s.cfg.PlatformFeePct, s.cfg.AdvancePct)
	if err != nil {
		return Quote{}, err
	}
	q.DistanceSource = source
	return q, nil
}

// lookup issues the two resolutions and the routed-distance call
// concurrently and waits for all three (join, not race).
func (s *Service) lookup(ctx context.Context, spec TripSpec) lookupResult {
	var res lookupResult
	done := make(chan struct{}, 3)

	go func() {
		res.pickup, res.pickupErr = s.resolver.Resolve(ctx, spec.Pickup)
		done <- struct{}{}
	}()
	go func() {
		res.dropoff, res.dropoffErr = s.resolver.Resolve(ctx, spec.Dropoff)
		done <- struct{}{}
	}()
	go func() {
		res.routedKm, res.routedErr = s.distance.RouteDistance(ctx, spec.Pickup, spec.Dropoff)
		done <- struct{}{}
	}()

	for i := 0; i < 3; i++ {
		<-done
	}
	return res
}

// pickDistance prefers the routed distance and falls back to the
// great-circle distance between the resolved coordinates. The fallback
// is logged so it stays distinguishable in telemetry.
func (s *Service) pickDistance(res lookupResult, spec TripSpec) (float64, DistanceSource, error) {
	if res.routedErr == nil {
		if res.routedKm < 0 {
			return 0, "", fmt.Errorf("%w: negative routed distance", ErrDistanceUnavailable)
		}
		return res.routedKm, SourceRouted, nil
	}

	// The fallback needs real coordinates from both resolutions.
	zero := types.Point{}
	if res.pickup.Position == zero || res.dropoff.Position == zero {
		return 0, "", fmt.Errorf("%w: routed lookup failed and no coordinates for fallback: %v",
			ErrDistanceUnavailable, res.routedErr)
	}

	km := haversineKm(res.pickup.Position, res.dropoff.Position)
	s.log.Warn("routed distance unavailable, using straight-line fallback",
		zap.String("pickup", spec.Pickup.Label),
		zap.String("dropoff", spec.Dropoff.Label),
		zap.Float64("straight_line_km", km),
		zap.Error(res.routedErr),
	)
	return km, SourceStraightLine, nil
}
