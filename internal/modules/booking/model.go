// README: Booking aggregate and status definitions.
package booking

import (
	"time"

	"jatriwheels/internal/modules/quote"
	"jatriwheels/internal/types"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID              types.ID       `json:"id"`
	OrderNumber     string         `json:"order_number"`
	UserID          *types.ID      `json:"user_id,omitempty"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	PickupLocation  string         `json:"pickup_location"`
	DropoffLocation string         `json:"dropoff_location"`
	JourneyDate     string         `json:"journey_date"`
	JourneyTime     string         `json:"journey_time"`
	Passengers      int            `json:"passengers"`
	Luggage         int            `json:"luggage"`
	TripType        quote.TripType `json:"trip_type"`
	DistanceKm      float64        `json:"distance_km"`
	TotalFare       types.Money    `json:"total_fare"`
	AdvancePayment  types.Money    `json:"advance_payment"`
	Status          Status         `json:"status"`
	PaymentStatus   PaymentStatus  `json:"payment_status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
