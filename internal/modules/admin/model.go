// README: Admin account model.
package admin

import (
	"time"

	"jatriwheels/internal/types"
)

type Admin struct {
	ID            types.ID
	Email         string
	PasswordHash  string
	Role          string
	LastLogin     *time.Time
	LoginAttempts int
	CreatedAt     time.Time
}
