// README: Rider account as shown in the admin dashboard.
package user

import (
	"time"

	"jatriwheels/internal/types"
)

type User struct {
	ID           types.ID  `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	IsVerified   bool      `json:"is_verified"`
	AuthProvider string    `json:"auth_provider"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
