// README: Rental booking aggregate (multi-stop vehicle rental).
package rental

import (
	"time"

	"jatriwheels/internal/types"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// maxDestinations caps the stops of one rental itinerary.
const maxDestinations = 10

type Rental struct {
	ID              types.ID      `json:"id"`
	RentalCode      string        `json:"rental_code"`
	UserID          *types.ID     `json:"user_id,omitempty"`
	VehicleCategory string        `json:"vehicle_category"`
	PickupDate      string        `json:"pickup_date"`
	PickupTime      string        `json:"pickup_time"`
	PickupLocation  string        `json:"pickup_location"`
	PickupPlaceID   string        `json:"pickup_place_id,omitempty"`
	Destinations    []string      `json:"destinations"`
	TotalPrice      types.Money   `json:"total_price"`
	DiscountedPrice *types.Money  `json:"discounted_price,omitempty"`
	Status          Status        `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
