package dto

import (
	"net/http"
	"petcare/shared/holiday"
	"petcare/shared/timezone"
	"strconv"
)

const (
	ParamServiceType = "service_type"
	ParamDogCount    = "dog_count"
	ParamStartDate   = "start_date"
	ParamEndDate     = "end_date"
	ParamYear        = "year"
)

type QuoteRequest struct {
	ServiceType string `json:"service_type" validate:"required,oneof=petsit_client_home petsit_our_location"`
	DogCount    int    `json:"dog_count"    validate:"required,min=1,max=20"`
	StartDate   string `json:"start_date"   validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date"     validate:"omitempty,datetime=2006-01-02"`
}

// FromRequest reads the quote arguments from the query string. A non-numeric dog_count is left at
// zero so validation rejects it.
func (q *QuoteRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	q.ServiceType = query.Get(ParamServiceType)
	q.StartDate = query.Get(ParamStartDate)
	q.EndDate = query.Get(ParamEndDate)

	if dogCount, err := strconv.Atoi(query.Get(ParamDogCount)); err == nil {
		q.DogCount = dogCount
	}
}

type HolidaysRequest struct {
	Year int `json:"year" validate:"required,min=1900,max=2200"`
}

// FromRequest reads year from the query string, defaulting to the current year when it is absent.
func (h *HolidaysRequest) FromRequest(r *http.Request) {
	year := r.URL.Query().Get(ParamYear)
	if year == "" {
		h.Year = timezone.Now().Year()

		return
	}

	if parsed, err := strconv.Atoi(year); err == nil {
		h.Year = parsed
	}
}

type HolidaysResponse struct {
	Year     int               `json:"year"`
	Holidays []holiday.Holiday `json:"holidays"`
	Dates    []string          `json:"dates"`
}
