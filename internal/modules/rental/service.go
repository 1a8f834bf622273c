// README: Rental service: rental codes, itinerary limits, admin updates.
package rental

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"jatriwheels/internal/types"
)

var (
	ErrNotFound   = errors.New("rental not found")
	ErrBadRequest = errors.New("bad rental request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	UserID          *types.ID
	VehicleCategory string
	PickupDate      string
	PickupTime      string
	PickupLocation  string
	PickupPlaceID   string
	Destinations    []string
	TotalPrice      types.Money
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Rental, error) {
	if cmd.VehicleCategory == "" || cmd.PickupDate == "" || cmd.PickupTime == "" || cmd.PickupLocation == "" {
		return nil, ErrBadRequest
	}
	if len(cmd.Destinations) == 0 || len(cmd.Destinations) > maxDestinations {
		return nil, ErrBadRequest
	}
	if cmd.TotalPrice.Amount < 0 {
		return nil, ErrBadRequest
	}

	now := time.Now()
	r := &Rental{
		ID:              types.ID(uuid.NewString()),
		RentalCode:      newRentalCode(),
		UserID:          cmd.UserID,
		VehicleCategory: cmd.VehicleCategory,
		PickupDate:      cmd.PickupDate,
		PickupTime:      cmd.PickupTime,
		PickupLocation:  cmd.PickupLocation,
		PickupPlaceID:   cmd.PickupPlaceID,
		Destinations:    cmd.Destinations,
		TotalPrice:      cmd.TotalPrice,
		Status:          StatusPending,
		PaymentStatus:   PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.store.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Rental, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Rental, error) {
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
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
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

func newRentalCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return fmt.Sprintf("JR-%06d", time.Now().UnixNano()%900000+100000)
	}
	return fmt.Sprintf("JR-%06d", n.Int64()+100000)
}
