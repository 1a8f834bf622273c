// README: Booking service: order numbers, persistence, admin updates.
package booking

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"jatriwheels/internal/modules/quote"
	"jatriwheels/internal/types"
)

var (
	ErrNotFound   = errors.New("booking not found")
	ErrBadRequest = errors.New("bad booking request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	UserID          *types.ID
	Name            string
	Email           string
	Phone           string
	PickupLocation  string
	DropoffLocation string
	JourneyDate     string
	JourneyTime     string
	Passengers      int
	Luggage         int
	TripType        quote.TripType
	DistanceKm      float64
	TotalFare       types.Money
	AdvancePayment  types.Money
}

// Create persists a booking request with a fresh JW- order number. The
// quote amounts are stored as given; pricing happened upstream.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Booking, error) {
	if cmd.Name == "" || cmd.Email == "" || cmd.Phone == "" {
		return nil, ErrBadRequest
	}
	if cmd.PickupLocation == "" || cmd.DropoffLocation == "" || cmd.JourneyDate == "" || cmd.JourneyTime == "" {
		return nil, ErrBadRequest
	}
	if !cmd.TripType.Valid() {
		return nil, ErrBadRequest
	}
	if cmd.Passengers < 1 || cmd.Luggage < 0 || cmd.DistanceKm < 0 {
		return nil, ErrBadRequest
	}

	now := time.Now()
	b := &Booking{
		ID:              types.ID(uuid.NewString()),
		OrderNumber:     newOrderNumber(),
		UserID:          cmd.UserID,
		Name:            cmd.Name,
		Email:           cmd.Email,
		Phone:           cmd.Phone,
		PickupLocation:  cmd.PickupLocation,
		DropoffLocation: cmd.DropoffLocation,
		JourneyDate:     cmd.JourneyDate,
		JourneyTime:     cmd.JourneyTime,
		Passengers:      cmd.Passengers,
		Luggage:         cmd.Luggage,
		TripType:        cmd.TripType,
		DistanceKm:      cmd.DistanceKm,
		TotalFare:       cmd.TotalFare,
		AdvancePayment:  cmd.AdvancePayment,
		Status:          StatusPending,
		PaymentStatus:   PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	return s.store.Get(ctx, id)
}

// GetByOrderNumber resolves the customer-facing JW- reference.
func (s *Service) GetByOrderNumber(ctx context.Context, orderNumber string) (*Booking, error) {
	if orderNumber == "" {
		return nil, ErrBadRequest
	}
	return s.store.GetByOrderNumber(ctx, orderNumber)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.List(ctx, limit, offset)
}

func (s *Service) UpdateStatus(ctx context.Context, id types.ID, status Status) error {
	switch status {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
	default:
		return ErrBadRequest
	}
	return s.store.UpdateStatus(ctx, id, status)
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, id types.ID, status PaymentStatus) error {
	switch status {
	case PaymentPending, PaymentPaid, PaymentRefunded:
	default:
		return ErrBadRequest
	}
	return s.store.UpdatePaymentStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	return s.store.Delete(ctx, id)
}

// newOrderNumber produces a customer-facing reference like JW-482913.
func newOrderNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing means the platform is broken; the
		// clock keeps order numbers from colliding in that case.
		return fmt.Sprintf("JW-%06d", time.Now().UnixNano()%900000+100000)
	}
	return fmt.Sprintf("JW-%06d", n.Int64()+100000)
}
