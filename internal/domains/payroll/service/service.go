package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Payroll=MockPayrollService

import (
	"context"
	"fmt"
	"petcare/config"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/internal/domains/appointment/event"
	"petcare/internal/domains/catalog"
	"petcare/internal/domains/payroll/earnings"
	"petcare/internal/domains/payroll/model"
	"petcare/internal/domains/payroll/model/dto"
	"petcare/internal/domains/payroll/repository"
	"petcare/shared"
	"petcare/shared/cache"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/failure"
	gModel "petcare/shared/model"
	"petcare/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheTimesheet = "payroll:timesheet"

	argWorkDateFrom = "work_date_from"
	argWorkDateTo   = "work_date_to"

	systemUser = "payroll-worker"
)

type Payroll interface {
	RecordCompletion(ctx context.Context, evt event.Appointment) error
	Timesheet(ctx context.Context, req dto.TimesheetRequest) (dto.TimesheetResponse, error)
	Calculate(ctx context.Context, req dto.EarningsRequest) (dto.EarningsResponse, error)
}

type serviceImpl struct {
	repo  repository.Payroll
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Payroll, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Payroll {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// RecordCompletion books the walker's earning for a completed appointment. Redelivered events are
// skipped, so it is safe to call more than once per appointment.
func (s *serviceImpl) RecordCompletion(ctx context.Context, evt event.Appointment) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payroll.RecordCompletion")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if evt.Type != event.TypeCompleted {
		return nil
	}

	if evt.WalkerID == nil || *evt.WalkerID == constant.Empty {
		log.Warn().Str("appointment_id", evt.ID).Msg("completed appointment has no walker, skipping earning")

		return nil
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(evt.ID, model.FieldAppointmentID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check walker earning")

		return fmt.Errorf("failed to check walker earning: %w", err)
	}

	if exist {
		log.Debug().Str("appointment_id", evt.ID).Msg("walker earning already recorded")

		return nil
	}

	workDate, err := time.Parse(constant.DateOnlyFormat, evt.ScheduledDate)
	if err != nil {
		return fmt.Errorf("invalid scheduled date %q: %w", evt.ScheduledDate, err)
	}

	duration := workedMinutes(evt)
	now := timezone.Now()

	earning := model.WalkerEarning{
		ID:              uuid.NewString(),
		AppointmentID:   evt.ID,
		WalkerID:        *evt.WalkerID,
		ServiceType:     evt.ServiceType,
		WorkDate:        workDate,
		DurationMinutes: duration,
		Amount:          earnings.Earnings(evt.ServiceType, duration),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  systemUser,
			ModifiedBy: systemUser,
		},
	}

	if err = s.repo.Insert(ctx, earning); err != nil {
		if postgres.IsUniqueViolation(err) {
			log.Debug().Str("appointment_id", evt.ID).Msg("walker earning recorded concurrently")

			return nil
		}

		log.Error().Err(err).Msg("failed to insert walker earning")

		return fmt.Errorf("failed to insert walker earning: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, shared.BuildCacheKey(cacheTimesheet, earning.WalkerID))

	log.Info().
		Str("appointment_id", evt.ID).
		Str("walker_id", earning.WalkerID).
		Float64("amount", earning.Amount).
		Msg("walker earning recorded")

	return nil
}

// Timesheet lists a walker's earnings between two dates inclusive. Walkers only see their own.
func (s *serviceImpl) Timesheet(ctx context.Context, req dto.TimesheetRequest) (res dto.TimesheetResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payroll.Timesheet")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	walkerID := req.WalkerID

	switch {
	case role != constant.RoleAdmin && walkerID == constant.Empty:
		walkerID = userID
	case role != constant.RoleAdmin && walkerID != userID:
		return res, failure.ResourceRestrictedError
	case walkerID == constant.Empty:
		return res, failure.BadRequestFromString("walker_id is required") // nolint:wrapcheck
	}

	if req.To < req.From {
		return res, failure.BadRequestFromString("to must not be before from") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheTimesheet, walkerID, req.From, req.To)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for timesheet")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldWalkerID, Value: walkerID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: argWorkDateFrom, Field: model.FieldWorkDate, Value: req.From, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			gDto.Filter{ArgName: argWorkDateTo, Field: model.FieldWorkDate, Value: req.To, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	params := gDto.QueryParams{SortBy: model.FieldWorkDate, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get walker earnings")

		return res, fmt.Errorf("failed to get walker earnings: %w", err)
	}

	res.WalkerID = walkerID
	res.From = req.From
	res.To = req.To
	res.FromModels(models)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save timesheet to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Calculate(ctx context.Context, req dto.EarningsRequest) (res dto.EarningsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payroll.Calculate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	serviceType, ok := catalog.ParseServiceType(req.ServiceType)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown service_type %q", req.ServiceType)) // nolint:wrapcheck
	}

	res.ServiceType = serviceType
	res.DurationMinutes = req.DurationMinutes
	res.Amount = earnings.Earnings(serviceType, req.DurationMinutes)

	return res, nil
}

// workedMinutes prefers the tracked duration and falls back to the catalog duration.
func workedMinutes(evt event.Appointment) *int {
	if evt.DurationMinutes != nil {
		return evt.DurationMinutes
	}

	service, ok := catalog.Lookup(evt.ServiceType)
	if !ok || service.DurationMinutes == 0 {
		return nil
	}

	minutes := service.DurationMinutes

	return &minutes
}
