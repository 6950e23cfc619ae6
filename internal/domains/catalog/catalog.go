// Package catalog holds the closed set of services the business sells.
package catalog

import "slices"

type ServiceType string

const (
	WalkShort         ServiceType = "walk_short"
	WalkLong          ServiceType = "walk_long"
	PetSitClientHome  ServiceType = "petsit_client_home"
	PetSitOurLocation ServiceType = "petsit_our_location"
	Transport         ServiceType = "transport"
	Concierge         ServiceType = "concierge"
)

type BillingUnit string

const (
	UnitVisit BillingUnit = "visit"
	UnitDay   BillingUnit = "day"
	UnitNight BillingUnit = "night"
)

type Service struct {
	Type            ServiceType `json:"type"`
	Label           string      `json:"label"`
	BasePrice       float64     `json:"base_price"`
	DurationMinutes int         `json:"duration_minutes,omitempty"`
	Unit            BillingUnit `json:"unit"`
}

var services = []Service{
	{Type: WalkShort, Label: "30-minute walk", BasePrice: 25.00, DurationMinutes: 30, Unit: UnitVisit},
	{Type: WalkLong, Label: "60-minute walk", BasePrice: 35.00, DurationMinutes: 60, Unit: UnitVisit},
	{Type: PetSitClientHome, Label: "Client's-home visit", BasePrice: 60.00, Unit: UnitDay},
	{Type: PetSitOurLocation, Label: "Facility boarding", BasePrice: 50.00, Unit: UnitNight},
	{Type: Transport, Label: "Pet transport", BasePrice: 40.00, DurationMinutes: 60, Unit: UnitVisit},
	{Type: Concierge, Label: "Concierge errand", BasePrice: 45.00, DurationMinutes: 60, Unit: UnitVisit},
}

// Lookup returns the catalog entry for t.
func Lookup(t ServiceType) (Service, bool) {
	idx := slices.IndexFunc(services, func(s Service) bool { return s.Type == t })
	if idx < 0 {
		return Service{}, false
	}

	return services[idx], true
}

// ParseServiceType accepts only service types listed in the catalog.
func ParseServiceType(value string) (ServiceType, bool) {
	_, ok := Lookup(ServiceType(value))

	return ServiceType(value), ok
}

func (t ServiceType) Valid() bool {
	_, ok := Lookup(t)

	return ok
}

// IsPetSitting reports whether t is billed per day or night over a date range.
func (t ServiceType) IsPetSitting() bool {
	return t == PetSitClientHome || t == PetSitOurLocation
}

// RequiresTime reports whether t is booked into a time-of-day slot.
func (t ServiceType) RequiresTime() bool {
	return t.Valid() && !t.IsPetSitting()
}

func (t ServiceType) String() string {
	return string(t)
}
