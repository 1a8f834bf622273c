// README: Quote engine value objects and collaborator contracts.
package quote

import (
	"context"
	"time"

	"jatriwheels/internal/types"
)

// PlaceReference is an opaque external place identifier plus the
// human-readable label the user selected. Immutable once selected.
type PlaceReference struct {
	ID    types.ID
	Label string
}

// AdminComponent is one administrative-region label attached to a
// resolved place. TopLevel is true only for the top administrative
// division (state); city and district components are never top level.
type AdminComponent struct {
	Label    string
	TopLevel bool
}

// ResolvedPlace is the result of looking up a PlaceReference. Created
// per quoting attempt and discarded after use, never cached.
type ResolvedPlace struct {
	Position types.Point
	Address  string
	Regions  []AdminComponent
}

type TripType string

const (
	OneWay    TripType = "one_way"
	RoundTrip TripType = "round_trip"
)

func (t TripType) Valid() bool {
	return t == OneWay || t == RoundTrip
}

// TripSpec is a single quoting request: both places plus the scheduled
// date and time as entered by the user.
type TripSpec struct {
	Pickup  PlaceReference
	Dropoff PlaceReference
	Type    TripType
	Date    string // 2006-01-02
	Time    string // 15:04
}

// ScheduledAt combines the date and time fields into one instant.
// The date must never be discarded: comparing time-of-day alone
// misjudges trips scheduled for a later day.
func (s TripSpec) ScheduledAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", s.Date+" "+s.Time, loc)
}

// DistanceSource records how a quote's distance was obtained. A
// straight-line distance systematically underestimates road travel,
// so the two must stay distinguishable downstream.
type DistanceSource string

const (
	SourceRouted       DistanceSource = "routed"
	SourceStraightLine DistanceSource = "straight_line"
)

// Quote is the priced outcome of a quoting attempt. All amounts are
// derived deterministically from the trip spec and rate.
type Quote struct {
	OneWayKm       float64
	TotalKm        float64
	TripType       TripType
	DistanceSource DistanceSource
	RatePerKm      types.Money
	TripCost       types.Money
	PlatformFee    types.Money
	TotalCost      types.Money
	AdvancePayment types.Money
}

// PlaceResolver is the external place-resolution collaborator.
type PlaceResolver interface {
	Resolve(ctx context.Context, ref PlaceReference) (ResolvedPlace, error)
}

// DistanceProvider is the external routed-distance collaborator.
type DistanceProvider interface {
	RouteDistance(ctx context.Context, origin, dest PlaceReference) (float64, error)
}
