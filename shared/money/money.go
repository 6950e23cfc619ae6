package money

import "math"

// Round rounds an amount to cents, half away from zero.
func Round(amount float64) float64 {
	return math.Round(amount*100) / 100
}
