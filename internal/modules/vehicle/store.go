// README: Vehicle store backed by PostgreSQL.
package vehicle

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jatriwheels/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const vehicleColumns = `
	id, name, category, price_per_km, seats, luggage_capacity,
	image_url, active, created_at, updated_at`

func (s *Store) Create(ctx context.Context, v *Vehicle) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO vehicles (
			id, name, category, price_per_km, seats, luggage_capacity,
			image_url, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(v.ID), v.Name, v.Category, v.PricePerKm.Amount,
		v.Seats, v.LuggageCapacity, v.ImageURL, v.Active,
		v.CreatedAt, v.UpdatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Vehicle, error) {
	row := s.db.QueryRow(ctx, `SELECT`+vehicleColumns+` FROM vehicles WHERE id = $1`, string(id))
	return scanVehicle(row)
}

func (s *Store) List(ctx context.Context, activeOnly bool) ([]*Vehicle, error) {
	q := `SELECT` + vehicleColumns + ` FROM vehicles`
	if activeOnly {
		q += ` WHERE active`
	}
	q += ` ORDER BY name`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, v *Vehicle) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE vehicles
		SET name = $1, category = $2, price_per_km = $3, seats = $4,
		    luggage_capacity = $5, image_url = $6, active = $7, updated_at = NOW()
		WHERE id = $8`,
		v.Name, v.Category, v.PricePerKm.Amount, v.Seats,
		v.LuggageCapacity, v.ImageURL, v.Active, string(v.ID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*Vehicle, error) {
	var v Vehicle
	err := row.Scan(
		&v.ID, &v.Name, &v.Category, &v.PricePerKm.Amount,
		&v.Seats, &v.LuggageCapacity, &v.ImageURL, &v.Active,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	v.PricePerKm.Currency = "INR"
	return &v, nil
}
