package model

import (
	"petcare/internal/domains/catalog"
	"petcare/shared/model"
	"time"
)

const (
	TableName  = "walker_earnings"
	EntityName = "walker earning"

	FieldID              = "id"
	FieldAppointmentID   = "appointment_id"
	FieldWalkerID        = "walker_id"
	FieldServiceType     = "service_type"
	FieldWorkDate        = "work_date"
	FieldDurationMinutes = "duration_minutes"
	FieldAmount          = "amount"
)

// WalkerEarning is what a walker was paid for one completed appointment.
type WalkerEarning struct {
	ID              string              `db:"id"`
	AppointmentID   string              `db:"appointment_id"`
	WalkerID        string              `db:"walker_id"`
	ServiceType     catalog.ServiceType `db:"service_type"`
	WorkDate        time.Time           `db:"work_date"`
	DurationMinutes *int                `db:"duration_minutes"`
	Amount          float64             `db:"amount"`
	model.Metadata
}
