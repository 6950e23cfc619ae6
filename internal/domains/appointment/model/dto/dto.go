package dto

import (
	"petcare/internal/domains/appointment/model"
	"petcare/internal/domains/catalog"
	"petcare/shared"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/failure"
	"petcare/shared/geo"
	gModel "petcare/shared/model"
	"petcare/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ClientID      string   `json:"client_id"      validate:"omitempty,uuid"`
	WalkerID      *string  `json:"walker_id"      validate:"omitempty,uuid"`
	PetIDs        []string `json:"pet_ids"        validate:"required,min=1,unique,dive,uuid"`
	ServiceType   string   `json:"service_type"   validate:"required,oneof=walk_short walk_long petsit_client_home petsit_our_location transport concierge"`
	ScheduledDate string   `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	ScheduledTime *string  `json:"scheduled_time" validate:"omitempty,timeofday"`
	EndDate       *string  `json:"end_date"       validate:"omitempty,datetime=2006-01-02"`
	Notes         string   `json:"notes"          validate:"max=1000"`
}

// ToModel builds a scheduled appointment; dates are assumed already validated.
func (c *CreateAppointmentRequest) ToModel(user, clientID string, priceTotal float64) model.Appointment {
	now := timezone.Now()
	serviceType := catalog.ServiceType(c.ServiceType)

	scheduledDate, _ := time.Parse(constant.DateOnlyFormat, c.ScheduledDate)

	appointment := model.Appointment{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		WalkerID:      c.WalkerID,
		PetIDs:        c.PetIDs,
		ServiceType:   serviceType,
		ScheduledDate: scheduledDate,
		Status:        model.StatusScheduled,
		Notes:         c.Notes,
		PriceTotal:    priceTotal,
		Route:         model.Route{},
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if serviceType.RequiresTime() {
		appointment.ScheduledTime = c.ScheduledTime
	}

	if serviceType.IsPetSitting() && c.EndDate != nil {
		endDate, _ := time.Parse(constant.DateOnlyFormat, *c.EndDate)
		appointment.EndDate = &endDate
	}

	return appointment
}

type UpdateAppointmentRequest struct {
	WalkerID      *string `json:"walker_id"      validate:"omitempty,uuid"`
	ScheduledDate *string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	ScheduledTime *string `json:"scheduled_time" validate:"omitempty,timeofday"`
	EndDate       *string `json:"end_date"       validate:"omitempty,datetime=2006-01-02"`
	Notes         *string `json:"notes"          validate:"omitempty,max=1000"`
}

func (u *UpdateAppointmentRequest) Empty() bool {
	return u.WalkerID == nil && u.ScheduledDate == nil && u.ScheduledTime == nil && u.EndDate == nil && u.Notes == nil
}

// MovesSlot reports whether the update changes anything the scheduler checks.
func (u *UpdateAppointmentRequest) MovesSlot() bool {
	return u.WalkerID != nil || u.ScheduledDate != nil || u.ScheduledTime != nil
}

// Apply returns a copy of current with the update's fields set.
func (u *UpdateAppointmentRequest) Apply(current model.Appointment) model.Appointment {
	next := current

	if u.WalkerID != nil {
		next.WalkerID = u.WalkerID
	}

	if u.ScheduledDate != nil {
		next.ScheduledDate, _ = time.Parse(constant.DateOnlyFormat, *u.ScheduledDate)
	}

	if u.ScheduledTime != nil && current.ServiceType.RequiresTime() {
		next.ScheduledTime = u.ScheduledTime
	}

	if u.EndDate != nil && current.ServiceType.IsPetSitting() {
		endDate, _ := time.Parse(constant.DateOnlyFormat, *u.EndDate)
		next.EndDate = &endDate
	}

	if u.Notes != nil {
		next.Notes = *u.Notes
	}

	return next
}

type TrackingPointRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

func (t *TrackingPointRequest) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: *t.Latitude, Longitude: *t.Longitude}
}

type StopTrackingRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// Final returns the last sample, or nil when none was sent. Sending only one half is rejected.
func (s *StopTrackingRequest) Final() (*geo.Coordinate, error) {
	if s.Latitude == nil && s.Longitude == nil {
		return nil, nil
	}

	if s.Latitude == nil || s.Longitude == nil {
		return nil, failure.BadRequestFromString("latitude and longitude must be sent together")
	}

	return &geo.Coordinate{Latitude: *s.Latitude, Longitude: *s.Longitude}, nil
}

type AppointmentResponse struct {
	ID              string              `json:"id"`
	ClientID        string              `json:"client_id"`
	WalkerID        *string             `json:"walker_id"`
	PetIDs          []string            `json:"pet_ids"`
	DogCount        int                 `json:"dog_count"`
	ServiceType     catalog.ServiceType `json:"service_type"`
	ScheduledDate   string              `json:"scheduled_date"`
	ScheduledTime   *string             `json:"scheduled_time"`
	EndDate         *string             `json:"end_date"`
	Status          model.Status        `json:"status"`
	Notes           string              `json:"notes"`
	PriceTotal      float64             `json:"price_total"`
	DistanceMeters  float64             `json:"distance_meters"`
	IsTracking      bool                `json:"is_tracking"`
	StartedAt       *string             `json:"started_at"`
	CompletedAt     *string             `json:"completed_at"`
	DurationMinutes *int                `json:"duration_minutes"`
	RouteArchiveURL *string             `json:"route_archive_url"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(m model.Appointment) {
	r.ID = m.ID
	r.ClientID = m.ClientID
	r.WalkerID = m.WalkerID
	r.PetIDs = []string(m.PetIDs)
	r.DogCount = m.DogCount()
	r.ServiceType = m.ServiceType
	r.ScheduledDate = m.ScheduledDate.Format(constant.DateOnlyFormat)
	r.ScheduledTime = m.ScheduledTime
	r.EndDate = formatDate(m.EndDate)
	r.Status = m.Status
	r.Notes = m.Notes
	r.PriceTotal = m.PriceTotal
	r.DistanceMeters = geo.Round(m.DistanceMeters)
	r.IsTracking = m.IsTracking
	r.StartedAt = formatTime(m.StartedAt)
	r.CompletedAt = formatTime(m.CompletedAt)
	r.DurationMinutes = m.DurationMinutes
	r.RouteArchiveURL = m.RouteArchiveURL
	r.Metadata.FromModel(m.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

type TrackingResponse struct {
	AppointmentID   string       `json:"appointment_id"`
	Status          model.Status `json:"status"`
	IsTracking      bool         `json:"is_tracking"`
	Points          int          `json:"points"`
	LastPoint       *geo.Point   `json:"last_point,omitempty"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationMinutes *int         `json:"duration_minutes,omitempty"`
	RouteArchiveURL *string      `json:"route_archive_url,omitempty"`
}

func (r *TrackingResponse) FromModel(m model.Appointment) {
	r.AppointmentID = m.ID
	r.Status = m.Status
	r.IsTracking = m.IsTracking
	r.Points = len(m.Route)
	r.DistanceMeters = geo.Round(m.DistanceMeters)
	r.DurationMinutes = m.DurationMinutes
	r.RouteArchiveURL = m.RouteArchiveURL

	if len(m.Route) > 0 {
		last := m.Route[len(m.Route)-1]
		r.LastPoint = &last
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(constant.DateOnlyFormat)

	return &formatted
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
