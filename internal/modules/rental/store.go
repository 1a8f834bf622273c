// README: Rental store backed by PostgreSQL (destinations as text[]).
package rental

import (
	"context"
	"database/sql"
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

const rentalColumns = `
	id, rental_code, user_id, vehicle_category,
	pickup_date, pickup_time, pickup_location, pickup_place_id,
	destinations, total_price, discounted_price,
	status, payment_status, created_at, updated_at`

func (s *Store) Create(ctx context.Context, r *Rental) error {
	var discounted *int64
	if r.DiscountedPrice != nil {
		discounted = &r.DiscountedPrice.Amount
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO rental_booking (
			id, rental_code, user_id, vehicle_category,
			pickup_date, pickup_time, pickup_location, pickup_place_id,
			destinations, total_price, discounted_price,
			status, payment_status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11,
			$12, $13, $14, $15
		)`,
		string(r.ID), r.RentalCode, toStringPtr(r.UserID), r.VehicleCategory,
		r.PickupDate, r.PickupTime, r.PickupLocation, r.PickupPlaceID,
		r.Destinations, r.TotalPrice.Amount, discounted,
		string(r.Status), string(r.PaymentStatus), r.CreatedAt, r.UpdatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Rental, error) {
	row := s.db.QueryRow(ctx, `SELECT`+rentalColumns+` FROM rental_booking WHERE id = $1`, string(id))
	return scanRental(row)
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]*Rental, error) {
	rows, err := s.db.Query(ctx, `
		SELECT`+rentalColumns+`
		FROM rental_booking
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Rental
	for rows.Next() {
		r, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id types.ID, status Status) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE rental_booking SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdatePaymentStatus(ctx context.Context, id types.ID, status PaymentStatus) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE rental_booking SET payment_status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), string(id))
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

func scanRental(row rowScanner) (*Rental, error) {
	var r Rental
	var userID sql.NullString
	var discounted sql.NullInt64
	err := row.Scan(
		&r.ID, &r.RentalCode, &userID, &r.VehicleCategory,
		&r.PickupDate, &r.PickupTime, &r.PickupLocation, &r.PickupPlaceID,
		&r.Destinations, &r.TotalPrice.Amount, &discounted,
		&r.Status, &r.PaymentStatus, &r.CreatedAt, &r.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		id := types.ID(userID.String)
		r.UserID = &id
	}
	r.TotalPrice.Currency = "INR"
	if discounted.Valid {
		m := types.INR(discounted.Int64)
		r.DiscountedPrice = &m
	}
	return &r, nil
}

func toStringPtr(id *types.ID) *string {
	if id == nil {
		return nil
	}
	v := string(*id)
	return &v
}
