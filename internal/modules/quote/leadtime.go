// README: Lead-time validation for scheduled trips.
package quote

import "time"

// ValidateLeadTime rejects trips scheduled less than min ahead of now.
// A trip exactly min ahead is accepted.
func ValidateLeadTime(scheduled, now time.Time, min time.Duration) error {
	if scheduled.Sub(now) < min {
		return ErrLeadTimeTooShort
	}
	return nil
}
