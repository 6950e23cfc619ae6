package earnings

import (
	"petcare/internal/domains/catalog"
	"petcare/shared/money"
)

// HourlyRate pays every service without a flat rate.
const HourlyRate = 20.00

var flatRates = map[catalog.ServiceType]float64{
	catalog.WalkShort: 15.00,
	catalog.WalkLong:  25.00,
}

// Earnings returns what a walker is paid for one service. Walks pay a flat rate; everything else is
// pro-rated hourly, and a missing or non-positive duration pays nothing.
func Earnings(serviceType catalog.ServiceType, durationMinutes *int) float64 {
	if rate, ok := flatRates[serviceType]; ok {
		return rate
	}

	if durationMinutes == nil || *durationMinutes <= 0 {
		return 0
	}

	return money.Round(float64(*durationMinutes) / 60 * HourlyRate)
}
