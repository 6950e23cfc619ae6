package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"petcare/internal/domains/catalog"
	"petcare/shared/geo"
	"petcare/shared/model"
	"slices"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID              = "id"
	FieldClientID        = "client_id"
	FieldWalkerID        = "walker_id"
	FieldPetIDs          = "pet_ids"
	FieldServiceType     = "service_type"
	FieldScheduledDate   = "scheduled_date"
	FieldScheduledTime   = "scheduled_time"
	FieldEndDate         = "end_date"
	FieldStatus          = "status"
	FieldNotes           = "notes"
	FieldPriceTotal      = "price_total"
	FieldRoute           = "route"
	FieldDistanceMeters  = "distance_meters"
	FieldIsTracking      = "is_tracking"
	FieldStartedAt       = "started_at"
	FieldCompletedAt     = "completed_at"
	FieldDurationMinutes = "duration_minutes"
	FieldRouteArchiveURL = "route_archive_url"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusScheduled:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether the status machine allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Route is the GPS trail of a walk, stored as a JSONB array.
type Route []geo.Point

func (r Route) Value() (driver.Value, error) {
	if r == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal([]geo.Point(r))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal route: %w", err)
	}

	return data, nil
}

func (r *Route) Scan(src any) error {
	var data []byte

	switch value := src.(type) {
	case nil:
		*r = Route{}

		return nil
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return errors.New("unsupported route column type")
	}

	var points []geo.Point
	if err := json.Unmarshal(data, &points); err != nil {
		return fmt.Errorf("failed to unmarshal route: %w", err)
	}

	*r = points

	return nil
}

type Appointment struct {
	ID              string              `db:"id"`
	ClientID        string              `db:"client_id"`
	WalkerID        *string             `db:"walker_id"`
	PetIDs          pq.StringArray      `db:"pet_ids"`
	ServiceType     catalog.ServiceType `db:"service_type"`
	ScheduledDate   time.Time           `db:"scheduled_date"`
	ScheduledTime   *string             `db:"scheduled_time"`
	EndDate         *time.Time          `db:"end_date"`
	Status          Status              `db:"status"`
	Notes           string              `db:"notes"`
	PriceTotal      float64             `db:"price_total"`
	Route           Route               `db:"route"`
	DistanceMeters  float64             `db:"distance_meters"`
	IsTracking      bool                `db:"is_tracking"`
	StartedAt       *time.Time          `db:"started_at"`
	CompletedAt     *time.Time          `db:"completed_at"`
	DurationMinutes *int                `db:"duration_minutes"`
	RouteArchiveURL *string             `db:"route_archive_url"`
	model.Metadata
}

func (a Appointment) DogCount() int {
	return len(a.PetIDs)
}

func (a Appointment) HasWalker(walkerID string) bool {
	return a.WalkerID != nil && *a.WalkerID == walkerID
}
