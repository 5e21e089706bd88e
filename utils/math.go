package utils

import "math"

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// SanitizeAmount coerces an amount into a usable monetary value.
// NaN and infinities become 0 so a bad field never poisons a total.
func SanitizeAmount(num float64) float64 {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0
	}
	return num
}

// FloorZero clamps a balance at zero; overpayment is absorbed, never
// surfaced as credit.
func FloorZero(num float64) float64 {
	return math.Max(0, num)
}
