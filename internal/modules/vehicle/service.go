// README: Vehicle service: fleet CRUD plus rate lookup for quoting.
package vehicle

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"jatriwheels/internal/types"
)

var (
	ErrNotFound   = errors.New("vehicle not found")
	ErrBadRequest = errors.New("bad vehicle request")
	ErrInactive   = errors.New("vehicle not available for booking")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type UpsertCommand struct {
	Name            string
	Category        string
	PricePerKm      types.Money
	Seats           int
	LuggageCapacity int
	ImageURL        string
	Active          bool
}

func (c UpsertCommand) validate() error {
	if c.Name == "" || c.Category == "" {
		return ErrBadRequest
	}
	if c.PricePerKm.Amount < 0 || c.Seats < 1 || c.LuggageCapacity < 0 {
		return ErrBadRequest
	}
	return nil
}

func (s *Service) Create(ctx context.Context, cmd UpsertCommand) (*Vehicle, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	v := &Vehicle{
		ID:              types.ID(uuid.NewString()),
		Name:            cmd.Name,
		Category:        cmd.Category,
		PricePerKm:      cmd.PricePerKm,
		Seats:           cmd.Seats,
		LuggageCapacity: cmd.LuggageCapacity,
		ImageURL:        cmd.ImageURL,
		Active:          cmd.Active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.store.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id types.ID, cmd UpsertCommand) (*Vehicle, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	v, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Name = cmd.Name
	v.Category = cmd.Category
	v.PricePerKm = cmd.PricePerKm
	v.Seats = cmd.Seats
	v.LuggageCapacity = cmd.LuggageCapacity
	v.ImageURL = cmd.ImageURL
	v.Active = cmd.Active
	if err := s.store.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Vehicle, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*Vehicle, error) {
	return s.store.List(ctx, activeOnly)
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	return s.store.Delete(ctx, id)
}

// RateFor returns the per-km rate used to quote a trip with this
// vehicle. Inactive vehicles cannot be quoted.
func (s *Service) RateFor(ctx context.Context, id types.ID) (types.Money, error) {
	v, err := s.store.Get(ctx, id)
	if err != nil {
		return types.Money{}, err
	}
	if !v.Active {
		return types.Money{}, ErrInactive
	}
	return v.PricePerKm, nil
}
