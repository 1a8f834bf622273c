// README: Vehicle fleet entry; the per-km rate feeds the quote engine.
package vehicle

import (
	"time"

	"jatriwheels/internal/types"
)

type Vehicle struct {
	ID              types.ID    `json:"id"`
	Name            string      `json:"name"`
	Category        string      `json:"category"`
	PricePerKm      types.Money `json:"price_per_km"`
	Seats           int         `json:"seats"`
	LuggageCapacity int         `json:"luggage_capacity"`
	ImageURL        string      `json:"image_url"`
	Active          bool        `json:"active"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
