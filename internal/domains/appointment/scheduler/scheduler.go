// Package scheduler enforces slot capacity and walker exclusivity before an appointment is placed.
//
// Callers run Validate and the write that follows inside one transaction holding the slot lock, so
// the count cannot go stale between the check and the insert.
package scheduler

import (
	"context"
	"fmt"
	"net/http"
	"petcare/internal/domains/appointment/model"
	gDto "petcare/shared/dto"
	"petcare/shared/failure"
)

// SlotCapacity is the number of live appointments a (date, time) slot can hold.
const SlotCapacity = 3

const argExcludeID = "exclude_id"

var (
	ErrSlotFull     = &failure.Failure{Code: http.StatusConflict, Message: "time slot full"}
	ErrWalkerBooked = &failure.Failure{Code: http.StatusConflict, Message: "walker already booked"}
)

type Counter interface {
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

// Placement is where an appointment is about to land. ID is empty for a new appointment.
type Placement struct {
	ID       string
	WalkerID *string
	Date     string
	Time     *string
	Status   model.Status
}

func (p Placement) checked() bool {
	return p.Time != nil && *p.Time != "" && p.Status != model.StatusCancelled
}

// Validate rejects a placement with ErrSlotFull when the slot already holds SlotCapacity live
// appointments, or ErrWalkerBooked when the walker has another live appointment in the slot.
// Appointments without a time of day and cancelled placements are never rejected.
func Validate(ctx context.Context, counter Counter, placement Placement) error {
	if !placement.checked() {
		return nil
	}

	taken, err := counter.Count(ctx, SlotFilter(placement))
	if err != nil {
		return fmt.Errorf("failed to count slot appointments: %w", err)
	}

	if taken >= SlotCapacity {
		return ErrSlotFull
	}

	if placement.WalkerID == nil || *placement.WalkerID == "" {
		return nil
	}

	booked, err := counter.Count(ctx, WalkerFilter(placement))
	if err != nil {
		return fmt.Errorf("failed to count walker appointments: %w", err)
	}

	if booked > 0 {
		return ErrWalkerBooked
	}

	return nil
}

// SlotFilter matches live appointments in the placement's slot, other than the placement itself.
func SlotFilter(placement Placement) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldScheduledDate,
			Value:    placement.Date,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldScheduledTime,
			Value:    *placement.Time,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Value:    model.StatusCancelled,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		},
	}

	if placement.ID != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  argExcludeID,
			Field:    model.FieldID,
			Value:    placement.ID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// WalkerFilter narrows SlotFilter to the placement's walker.
func WalkerFilter(placement Placement) gDto.FilterGroup {
	group := SlotFilter(placement)

	group.Filters = append(group.Filters, gDto.Filter{
		Field:    model.FieldWalkerID,
		Value:    *placement.WalkerID,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return group
}
