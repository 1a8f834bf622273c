// README: Booking store backed by PostgreSQL.
package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

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

const bookingColumns = `
	id, order_number, user_id, name, email, phone,
	pickup_location, dropoff_location, journey_date, journey_time,
	passengers, luggage, trip_type, distance_km,
	total_fare, advance_payment, status, payment_status,
	created_at, updated_at`

func (s *Store) Create(ctx context.Context, b *Booking) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookings (
			id, order_number, user_id, name, email, phone,
			pickup_location, dropoff_location, journey_date, journey_time,
			passengers, luggage, trip_type, distance_km,
			total_fare, advance_payment, status, payment_status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $16, $17, $18,
			$19, $20
		)`,
		string(b.ID),
		b.OrderNumber,
		toStringPtr(b.UserID),
		b.Name, b.Email, b.Phone,
		b.PickupLocation, b.DropoffLocation, b.JourneyDate, b.JourneyTime,
		b.Passengers, b.Luggage, string(b.TripType), b.DistanceKm,
		b.TotalFare.Amount, b.AdvancePayment.Amount,
		string(b.Status), string(b.PaymentStatus),
		b.CreatedAt, b.UpdatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `SELECT`+bookingColumns+` FROM bookings WHERE id = $1`, string(id))
	return scanBooking(row)
}

func (s *Store) GetByOrderNumber(ctx context.Context, orderNumber string) (*Booking, error) {
	row := s.db.QueryRow(ctx, `SELECT`+bookingColumns+` FROM bookings WHERE order_number = $1`, orderNumber)
	return scanBooking(row)
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]*Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT`+bookingColumns+`
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (s *Store) ListByUser(ctx context.Context, userID types.ID) ([]*Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT`+bookingColumns+`
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`, string(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (s *Store) UpdateStatus(ctx context.Context, id types.ID, status Status) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`,
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
		UPDATE bookings SET payment_status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountCreatedBetween counts bookings created in [from, to).
func (s *Store) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE created_at >= $1 AND created_at < $2`, from, to).Scan(&n)
	return n, err
}

// RevenueBetween sums completed-booking fares (paise) in [from, to).
func (s *Store) RevenueBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var paise int64
	err := s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_fare), 0) FROM bookings
		WHERE status = 'completed' AND created_at >= $1 AND created_at < $2`,
		from, to).Scan(&paise)
	return paise, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*Booking, error) {
	var b Booking
	var userID sql.NullString
	err := row.Scan(
		&b.ID, &b.OrderNumber, &userID, &b.Name, &b.Email, &b.Phone,
		&b.PickupLocation, &b.DropoffLocation, &b.JourneyDate, &b.JourneyTime,
		&b.Passengers, &b.Luggage, &b.TripType, &b.DistanceKm,
		&b.TotalFare.Amount, &b.AdvancePayment.Amount, &b.Status, &b.PaymentStatus,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		id := types.ID(userID.String)
		b.UserID = &id
	}
	b.TotalFare.Currency = "INR"
	b.AdvancePayment.Currency = "INR"
	return &b, nil
}

func scanBookings(rows pgx.Rows) ([]*Booking, error) {
	var out []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func toStringPtr(id *types.ID) *string {
	if id == nil {
		return nil
	}
	v := string(*id)
	return &v
}
