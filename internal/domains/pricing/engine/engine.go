// Package engine prices pet-sitting stays night by night or day by day, adding a surcharge for
// holiday windows. It performs no I/O and returns the same quote for the same inputs.
package engine

import (
	"errors"
	"fmt"
	"petcare/internal/domains/catalog"
	"petcare/shared/holiday"
	"petcare/shared/money"
	"time"
)

// HolidaySurchargePerDog is added for every dog on each holiday-window night or day.
const HolidaySurchargePerDog = 10.00

// MaxStayDays caps the distance between the first and last date of a stay.
const MaxStayDays = 365

const dateLayout = time.DateOnly

var (
	ErrStayReversed = errors.New("end_date must not be before the start date")
	ErrStayTooLong  = fmt.Errorf("a stay cannot exceed %d days", MaxStayDays)
)

type LineItem struct {
	Date             string  `json:"date"`
	BasePrice        float64 `json:"base_price"`
	DogSurcharge     float64 `json:"dog_surcharge"`
	HolidaySurcharge float64 `json:"holiday_surcharge"`
	Subtotal         float64 `json:"subtotal"`
}

type Quote struct {
	ServiceType catalog.ServiceType `json:"service_type"`
	DogCount    int                 `json:"dog_count"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Unit        catalog.BillingUnit `json:"unit,omitempty"`
	Units       int                 `json:"units"`
	LineItems   []LineItem          `json:"line_items"`
	Total       float64             `json:"total"`
}

// Price quotes a stay. An empty endDate means a single night or day. Service types that are not
// pet-sitting, unparsable dates and a dog count below one all produce a zero quote, not an error.
func Price(serviceType catalog.ServiceType, dogCount int, startDate, endDate string) Quote {
	if endDate == "" {
		endDate = startDate
	}

	quote := Quote{
		ServiceType: serviceType,
		DogCount:    dogCount,
		StartDate:   startDate,
		EndDate:     endDate,
		LineItems:   []LineItem{},
	}

	service, ok := catalog.Lookup(serviceType)
	if !ok || !serviceType.IsPetSitting() || dogCount < 1 {
		return quote
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return quote
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return quote
	}

	span := daysBetween(start, end)

	var item func(day time.Time) LineItem

	switch serviceType {
	case catalog.PetSitOurLocation:
		quote.Units = max(1, span)
		item = func(day time.Time) LineItem { return facilityNight(service.BasePrice, dogCount, day) }
	case catalog.PetSitClientHome:
		quote.Units = max(1, span+1)
		item = func(day time.Time) LineItem { return clientHomeDay(service.BasePrice, dogCount, day) }
	}

	quote.Unit = service.Unit

	total := 0.0

	for i := range quote.Units {
		line := item(start.AddDate(0, 0, i))

		quote.LineItems = append(quote.LineItems, line)
		total += line.Subtotal
	}

	quote.Total = money.Round(total)

	return quote
}

// CheckStay rejects a stay that ends before it starts or runs longer than MaxStayDays. Dates that do
// not parse are left to Price, which zero-quotes them.
func CheckStay(startDate, endDate string) error {
	if endDate == "" {
		return nil
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil //nolint:nilerr
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil //nolint:nilerr
	}

	switch days := daysBetween(start, end); {
	case days < 0:
		return ErrStayReversed
	case days > MaxStayDays:
		return ErrStayTooLong
	}

	return nil
}

// facilityNight bills the first dog at base and every further dog at half of base.
func facilityNight(base float64, dogCount int, night time.Time) LineItem {
	line := LineItem{
		Date:      night.Format(dateLayout),
		BasePrice: money.Round(base),
	}

	if dogCount > 1 {
		line.DogSurcharge = money.Round(float64(dogCount-1) * base / 2)
	}

	line.HolidaySurcharge = holidaySurcharge(dogCount, night)
	line.Subtotal = money.Round(line.BasePrice + line.DogSurcharge + line.HolidaySurcharge)

	return line
}

// clientHomeDay bills every dog at the full base price.
func clientHomeDay(base float64, dogCount int, day time.Time) LineItem {
	line := LineItem{
		Date:             day.Format(dateLayout),
		BasePrice:        money.Round(base),
		DogSurcharge:     money.Round(float64(dogCount-1) * base),
		HolidaySurcharge: holidaySurcharge(dogCount, day),
	}

	line.Subtotal = money.Round(line.BasePrice + line.DogSurcharge + line.HolidaySurcharge)

	return line
}

func holidaySurcharge(dogCount int, day time.Time) float64 {
	if !holiday.IsHoliday(day) {
		return 0
	}

	return money.Round(HolidaySurchargePerDog * float64(dogCount))
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
