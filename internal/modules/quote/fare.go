// README: Fare and advance-payment calculator, pure integer money arithmetic.
package quote

import "jatriwheels/internal/types"

// Fare prices a trip: round trips double the billable distance, the
// platform fee is feePct of the trip cost, and the advance payment is
// advancePct of the fee-inclusive total. Negative distance or rate is
// a caller contract violation, never clamped.
func Fare(distanceKm float64, tripType TripType, ratePerKm types.Money, feePct, advancePct float64) (Quote, error) {
	if distanceKm < 0 || ratePerKm.Amount < 0 {
		return Quote{}, ErrInvalidInput
	}
	if !tripType.Valid() {
		return Quote{}, ErrInvalidInput
	}

	totalKm := distanceKm
	if tripType == RoundTrip {
		totalKm *= 2
	}

	tripCost := ratePerKm.MulKm(totalKm)
	fee := tripCost.Percent(feePct)
	total := tripCost.Add(fee)
	advance := total.Percent(advancePct)

	return Quote{
		OneWayKm:       distanceKm,
		TotalKm:        totalKm,
		TripType:       tripType,
		RatePerKm:      ratePerKm,
		TripCost:       tripCost,
		PlatformFee:    fee,
		TotalCost:      total,
		AdvancePayment: advance,
	}, nil
}
