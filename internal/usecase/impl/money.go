package impl

import "math"

// toMinorUnits converts a major-unit amount to integer minor units (e.g.
// rupees to paise), rounding half up.
func toMinorUnits(amount float64) int64 {
	return int64(math.Floor(amount*100 + 0.5))
}

// fromMinorUnits converts integer minor units back to a major-unit amount.
func fromMinorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// round2 rounds to two decimal places, half up.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// splitAmount divides a settled amount between the platform and the creator.
// The fee is rounded to the cent and the creator gets the remainder, so the
// two shares always sum to the amount exactly.
func splitAmount(amount, feeRate float64) (platformFee, creatorEarnings float64) {
	platformFee = round2(amount * feeRate)
	creatorEarnings = round2(amount - platformFee)

	return platformFee, creatorEarnings
}
