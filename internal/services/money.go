package services

import "math"

// All money is handled as int64 cents. External decimal values are
// converted at the boundary with round-half-up, and every percentage
// application rounds the same way so computed totals are reproducible.

// roundHalfUp rounds to the nearest integer with ties going away from zero.
func roundHalfUp(v float64) int64 {
	if v >= 0 {
		return int64(math.Floor(v + 0.5))
	}
	return -int64(math.Floor(-v + 0.5))
}

// ToCents converts a decimal amount to cents, rounding half-up at the
// second decimal place.
func ToCents(amount float64) int64 {
	return roundHalfUp(amount * 100)
}

// FromCents converts cents back to a decimal amount for API responses.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// PercentOf applies a percentage to a cent amount, rounding half-up.
func PercentOf(amountCents int64, percent float64) int64 {
	return roundHalfUp(float64(amountCents) * percent / 100)
}
