// README: User service: listing and ride history for the admin dashboard.
package user

import (
	"context"
	"errors"

	"jatriwheels/internal/modules/booking"
	"jatriwheels/internal/types"
)

var ErrNotFound = errors.New("user not found")

// BookingLister is the slice of the booking module this service needs.
type BookingLister interface {
	ListByUser(ctx context.Context, userID types.ID) ([]*booking.Booking, error)
}

type Service struct {
	store    *Store
	bookings BookingLister
}

func NewService(store *Store, bookings BookingLister) *Service {
	return &Service{store: store, bookings: bookings}
}

func (s *Service) Get(ctx context.Context, id types.ID) (*User, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.List(ctx, limit, offset)
}

// RideHistory returns a user's bookings, newest first. The user must
// exist; an unknown ID is ErrNotFound, not an empty history.
func (s *Service) RideHistory(ctx context.Context, id types.ID) ([]*booking.Booking, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.bookings.ListByUser(ctx, id)
}
