// README: Published testimonials for the landing page.
package testimonial

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jatriwheels/internal/types"
)

type Testimonial struct {
	ID        types.ID  `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ListPublished returns testimonials for the landing page, newest first.
func (s *Store) ListPublished(ctx context.Context, limit int) ([]*Testimonial, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, name, content, rating, created_at
		FROM testimonials
		WHERE published
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Testimonial
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Content, &t.Rating, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
