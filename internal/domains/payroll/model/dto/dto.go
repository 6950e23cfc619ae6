package dto

import (
	"net/http"
	"petcare/internal/domains/catalog"
	"petcare/internal/domains/payroll/model"
	"petcare/shared/constant"
	"petcare/shared/money"
	"strconv"
)

const (
	ParamWalkerID        = "walker_id"
	ParamFrom            = "from"
	ParamTo              = "to"
	ParamServiceType     = "service_type"
	ParamDurationMinutes = "duration_minutes"
)

type TimesheetRequest struct {
	WalkerID string `json:"walker_id" validate:"omitempty,uuid"`
	From     string `json:"from"      validate:"required,datetime=2006-01-02"`
	To       string `json:"to"        validate:"required,datetime=2006-01-02"`
}

func (t *TimesheetRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	t.WalkerID = query.Get(ParamWalkerID)
	t.From = query.Get(ParamFrom)
	t.To = query.Get(ParamTo)
}

type EarningResponse struct {
	AppointmentID   string              `json:"appointment_id"`
	ServiceType     catalog.ServiceType `json:"service_type"`
	WorkDate        string              `json:"work_date"`
	DurationMinutes *int                `json:"duration_minutes"`
	Amount          float64             `json:"amount"`
}

type TimesheetResponse struct {
	WalkerID     string            `json:"walker_id"`
	From         string            `json:"from"`
	To           string            `json:"to"`
	Entries      []EarningResponse `json:"entries"`
	TotalMinutes int               `json:"total_minutes"`
	TotalAmount  float64           `json:"total_amount"`
}

func (t *TimesheetResponse) FromModels(models []model.WalkerEarning) {
	t.Entries = make([]EarningResponse, len(models))

	total := 0.0

	for i, m := range models {
		t.Entries[i] = EarningResponse{
			AppointmentID:   m.AppointmentID,
			ServiceType:     m.ServiceType,
			WorkDate:        m.WorkDate.Format(constant.DateOnlyFormat),
			DurationMinutes: m.DurationMinutes,
			Amount:          m.Amount,
		}

		total += m.Amount

		if m.DurationMinutes != nil {
			t.TotalMinutes += *m.DurationMinutes
		}
	}

	t.TotalAmount = money.Round(total)
}

type EarningsRequest struct {
	ServiceType     string `json:"service_type"     validate:"required,oneof=walk_short walk_long petsit_client_home petsit_our_location transport concierge"`
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,min=0,max=10080"`
}

func (e *EarningsRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	e.ServiceType = query.Get(ParamServiceType)

	if minutes, err := strconv.Atoi(query.Get(ParamDurationMinutes)); err == nil {
		e.DurationMinutes = &minutes
	}
}

type EarningsResponse struct {
	ServiceType     catalog.ServiceType `json:"service_type"`
	DurationMinutes *int                `json:"duration_minutes"`
	Amount          float64             `json:"amount"`
}
