// README: Common money value object used across modules.
package types

import (
	"fmt"
	"math"
)

// Money is a scaled-integer amount in the currency's minor unit
// (paise for INR). Fare arithmetic stays in integers so a displayed
// quote never drifts from the amount eventually charged.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func INR(paise int64) Money {
	return Money{Amount: paise, Currency: "INR"}
}

func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}
}

// Percent returns pct% of m, rounded half away from zero.
func (m Money) Percent(pct float64) Money {
	return Money{
		Amount:   int64(math.Round(float64(m.Amount) * pct / 100.0)),
		Currency: m.Currency,
	}
}

// MulKm scales a per-kilometre rate by a distance, rounded to the
// nearest minor unit.
func (m Money) MulKm(km float64) Money {
	return Money{
		Amount:   int64(math.Round(float64(m.Amount) * km)),
		Currency: m.Currency,
	}
}

// Rupees returns the amount in major units, for display only.
func (m Money) Rupees() float64 {
	return float64(m.Amount) / 100.0
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Rupees(), m.Currency)
}
