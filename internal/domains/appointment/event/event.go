// Package event defines the appointment lifecycle messages published to Kafka.
package event

import (
	"petcare/internal/domains/appointment/model"
	"petcare/internal/domains/catalog"
	"petcare/shared/constant"
	"time"
)

type Type string

const (
	TypeCreated   Type = "appointment.created"
	TypeUpdated   Type = "appointment.updated"
	TypeCancelled Type = "appointment.cancelled"
	TypeCompleted Type = "appointment.completed"
)

type Appointment struct {
	Type            Type                `json:"type"`
	ID              string              `json:"id"`
	ClientID        string              `json:"client_id"`
	WalkerID        *string             `json:"walker_id,omitempty"`
	ServiceType     catalog.ServiceType `json:"service_type"`
	ScheduledDate   string              `json:"scheduled_date"`
	ScheduledTime   *string             `json:"scheduled_time,omitempty"`
	Status          model.Status        `json:"status"`
	PriceTotal      float64             `json:"price_total"`
	DistanceMeters  float64             `json:"distance_meters"`
	DurationMinutes *int                `json:"duration_minutes,omitempty"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	OccurredAt      time.Time           `json:"occurred_at"`
}

func New(eventType Type, appointment model.Appointment, occurredAt time.Time) Appointment {
	return Appointment{
		Type:            eventType,
		ID:              appointment.ID,
		ClientID:        appointment.ClientID,
		WalkerID:        appointment.WalkerID,
		ServiceType:     appointment.ServiceType,
		ScheduledDate:   appointment.ScheduledDate.Format(constant.DateOnlyFormat),
		ScheduledTime:   appointment.ScheduledTime,
		Status:          appointment.Status,
		PriceTotal:      appointment.PriceTotal,
		DistanceMeters:  appointment.DistanceMeters,
		DurationMinutes: appointment.DurationMinutes,
		CompletedAt:     appointment.CompletedAt,
		OccurredAt:      occurredAt,
	}
}
