// Package holiday computes the US holidays that carry a pricing surcharge.
//
// Each holiday contributes a three day window (the day before, the day itself and the day after),
// so a year yields at most 18 surcharge dates.
package holiday

import (
	"slices"
	"time"
)

const (
	dateLayout   = time.DateOnly
	daysPerWeek  = 7
	windowRadius = 1
)

type Holiday struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// Holidays returns the six named holidays of year in calendar order.
func Holidays(year int) []Holiday {
	return []Holiday{
		{Name: "New Year's Day", Date: format(fixed(year, time.January, 1))},
		{Name: "Memorial Day", Date: format(lastWeekday(year, time.May, time.Monday))},
		{Name: "Independence Day", Date: format(fixed(year, time.July, 4))},
		{Name: "Labor Day", Date: format(nthWeekday(year, time.September, time.Monday, 1))},
		{Name: "Thanksgiving", Date: format(nthWeekday(year, time.November, time.Thursday, 4))},
		{Name: "Christmas Day", Date: format(fixed(year, time.December, 25))},
	}
}

// Dates returns the sorted, de-duplicated surcharge window dates of year as YYYY-MM-DD strings.
func Dates(year int) []string {
	dates := make([]string, 0, 3*len(Holidays(year)))

	for _, holiday := range Holidays(year) {
		day, _ := time.Parse(dateLayout, holiday.Date)

		for offset := -windowRadius; offset <= windowRadius; offset++ {
			dates = append(dates, format(day.AddDate(0, 0, offset)))
		}
	}

	slices.Sort(dates)

	return slices.Compact(dates)
}

// IsHoliday reports whether date falls in a surcharge window of its own calendar year.
func IsHoliday(date time.Time) bool {
	_, found := slices.BinarySearch(Dates(date.Year()), format(date))

	return found
}

func fixed(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func format(day time.Time) string {
	return day.Format(dateLayout)
}

// monthGrid lays the month out as Monday-first weeks; cells outside the month are zero.
func monthGrid(year int, month time.Month) [][daysPerWeek]int {
	first := fixed(year, month, 1)
	lastDay := first.AddDate(0, 1, -1).Day()

	// Monday is column 0.
	column := (int(first.Weekday()) + daysPerWeek - 1) % daysPerWeek

	var (
		weeks []([daysPerWeek]int)
		week  [daysPerWeek]int
	)

	for day := 1; day <= lastDay; day++ {
		week[column] = day
		column++

		if column == daysPerWeek {
			weeks = append(weeks, week)
			week = [daysPerWeek]int{}
			column = 0
		}
	}

	if column > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}

func weekdayColumn(weekday time.Weekday) int {
	return (int(weekday) + daysPerWeek - 1) % daysPerWeek
}

func lastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	weeks := monthGrid(year, month)
	column := weekdayColumn(weekday)

	for i := len(weeks) - 1; i >= 0; i-- {
		if day := weeks[i][column]; day != 0 {
			return fixed(year, month, day)
		}
	}

	return time.Time{}
}

func nthWeekday(year int, month time.Month, weekday time.Weekday, nth int) time.Time {
	column := weekdayColumn(weekday)
	seen := 0

	for _, week := range monthGrid(year, month) {
		if week[column] == 0 {
			continue
		}

		seen++
		if seen == nth {
			return fixed(year, month, week[column])
		}
	}

	return time.Time{}
}
