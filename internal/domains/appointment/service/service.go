package service

import (
	"context"
	"errors"
	"fmt"
	"petcare/config"
	"petcare/infras/kafka"
	"petcare/infras/otel"
	"petcare/infras/postgres"
	"petcare/infras/s3"
	"petcare/internal/domains/appointment/event"
	"petcare/internal/domains/appointment/model"
	"petcare/internal/domains/appointment/model/dto"
	"petcare/internal/domains/appointment/repository"
	"petcare/internal/domains/appointment/scheduler"
	"petcare/internal/domains/appointment/tracking"
	"petcare/internal/domains/catalog"
	petRepo "petcare/internal/domains/pet/repository"
	"petcare/internal/domains/pricing/engine"
	userModel "petcare/internal/domains/user/model"
	userRepo "petcare/internal/domains/user/repository"
	"petcare/shared"
	"petcare/shared/cache"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/failure"
	"petcare/shared/geo"
	"petcare/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAppointment    = "appointment:get"
	cacheGetAllAppointment = "appointment:gets"

	routeArchiveDirectory = "walks"
	routeArchiveExtension = ".geojson"

	argScopeUserID = "scope_user_id"
)

var (
	errNotEditable   = failure.Conflict("only scheduled appointments can be edited")
	errNotTracking   = failure.Conflict(tracking.ErrNotTracking.Error())
	errNotFound      = failure.NotFound("appointment not found")
	errPetsNotOwned  = failure.BadRequestFromString("pets must be active and belong to the client")
	errWalkerUnknown = failure.BadRequestFromString("walker not found")
)

type Appointment interface {
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAppointmentsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAppointmentsResponse, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) error
	Cancel(ctx context.Context, id string) error
	StartTracking(ctx context.Context, id string, req dto.TrackingPointRequest) (dto.TrackingResponse, error)
	AddTrackingPoint(ctx context.Context, id string, req dto.TrackingPointRequest) (dto.TrackingResponse, error)
	StopTracking(ctx context.Context, id string, req dto.StopTrackingRequest) (dto.TrackingResponse, error)
}

type serviceImpl struct {
	repo     repository.Appointment
	petRepo  petRepo.Pet
	userRepo userRepo.User
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
	s3       s3.S3
}

func New(
	repo repository.Appointment,
	petRepo petRepo.Pet,
	userRepo userRepo.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
	s3 s3.S3,
) Appointment {
	return &serviceImpl{
		repo:     repo,
		petRepo:  petRepo,
		userRepo: userRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafka,
		s3:       s3,
	}
}

type actor struct {
	id   string
	role string
}

func actorFrom(ctx context.Context) actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return actor{id: id, role: role}
}

func (a actor) isAdmin() bool {
	return a.role == constant.RoleAdmin
}

func (a actor) canView(clientID string, walkerID *string) bool {
	return a.isAdmin() || clientID == a.id || (walkerID != nil && *walkerID == a.id)
}

func (a actor) canManage(appointment model.Appointment) bool {
	return a.isAdmin() || appointment.ClientID == a.id
}

func (a actor) canTrack(appointment model.Appointment) bool {
	return a.isAdmin() || appointment.HasWalker(a.id)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := actorFrom(ctx)

	clientID := user.id
	if user.isAdmin() {
		if req.ClientID == constant.Empty {
			return res, failure.BadRequestFromString("client_id is required") // nolint:wrapcheck
		}

		clientID = req.ClientID
	} else if req.ClientID != constant.Empty && req.ClientID != user.id {
		return res, failure.ResourceRestrictedError
	}

	serviceType, ok := catalog.ParseServiceType(req.ServiceType)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown service_type %q", req.ServiceType)) // nolint:wrapcheck
	}

	if serviceType.RequiresTime() && req.ScheduledTime == nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("scheduled_time is required for %s", serviceType)) // nolint:wrapcheck
	}

	if serviceType.IsPetSitting() {
		if err = validateStay(req.ScheduledDate, req.EndDate); err != nil {
			return res, err
		}
	}

	if err = s.checkPets(ctx, clientID, req.PetIDs); err != nil {
		return res, err
	}

	if err = s.checkWalker(ctx, req.WalkerID); err != nil {
		return res, err
	}

	appointment := req.ToModel(user.id, clientID, priceFor(serviceType, len(req.PetIDs), req.ScheduledDate, req.EndDate))

	err = s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		if err := lockAndValidate(ctx, tx, appointment); err != nil {
			return err
		}

		return tx.Insert(ctx, appointment)
	})
	if err != nil {
		return res, s.storeError(err, "failed to create appointment")
	}

	s.invalidate(ctx, appointment.ID)
	s.publish(ctx, event.TypeCreated, appointment)

	res.FromModel(appointment)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := actorFrom(ctx)
	if !user.isAdmin() {
		filter = scopeToActor(user, filter)
	}

	return s.list(ctx, req, filter)
}

// GetMine lists the caller's own appointments: assignments for walkers, bookings for everyone else.
func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, req, scopeToActor(actorFrom(ctx), filter))
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAppointmentsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAppointment, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := actorFrom(ctx)
	cacheKey := shared.BuildCacheKey(cacheGetAppointment, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get appointment")

			return res, fmt.Errorf("failed to get appointment: %w", err)
		}

		if appointment.ID == constant.Empty {
			return res, errNotFound
		}

		res.FromModel(appointment)

		go func(res dto.AppointmentResponse) {
			if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save appointment to cache")
			}
		}(res)
	}

	if !user.canView(res.ClientID, res.WalkerID) {
		return dto.AppointmentResponse{}, failure.ResourceRestrictedError
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Empty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user := actorFrom(ctx)

	if req.WalkerID != nil && !user.isAdmin() {
		return failure.Forbidden("only admins can assign walkers") // nolint:wrapcheck
	}

	if err = s.checkWalker(ctx, req.WalkerID); err != nil {
		return err
	}

	var next model.Appointment

	err = s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		current, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return errNotFound
		}

		if !user.canManage(current) {
			return failure.ResourceRestrictedError
		}

		if current.Status != model.StatusScheduled {
			return errNotEditable
		}

		next = req.Apply(current)
		next.ModifiedAt = timezone.Now()
		next.ModifiedBy = user.id

		if next.ServiceType.IsPetSitting() {
			start := next.ScheduledDate.Format(constant.DateOnlyFormat)
			end := formatDate(next.EndDate)

			if err := validateStay(start, end); err != nil {
				return err
			}

			next.PriceTotal = priceFor(next.ServiceType, next.DogCount(), start, end)
		}

		if req.MovesSlot() {
			if err := lockAndValidate(ctx, tx, next); err != nil {
				return err
			}
		}

		return tx.Update(ctx, changes(next), shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		return s.storeError(err, "failed to update appointment")
	}

	s.invalidate(ctx, id)
	s.publish(ctx, event.TypeUpdated, next)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := actorFrom(ctx)

	var cancelled model.Appointment

	err = s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		current, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return errNotFound
		}

		if !user.canManage(current) {
			return failure.ResourceRestrictedError
		}

		if !current.Status.CanTransitionTo(model.StatusCancelled) {
			return failure.Conflict(fmt.Sprintf("appointment cannot be cancelled once %s", current.Status))
		}

		cancelled = current
		cancelled.Status = model.StatusCancelled
		cancelled.IsTracking = false

		return tx.Update(ctx, map[string]any{
			model.FieldStatus:        cancelled.Status,
			model.FieldIsTracking:    false,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user.id,
		}, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		return s.storeError(err, "failed to cancel appointment")
	}

	s.invalidate(ctx, id)
	s.publish(ctx, event.TypeCancelled, cancelled)

	return nil
}

func (s *serviceImpl) StartTracking(ctx context.Context, id string, req dto.TrackingPointRequest) (res dto.TrackingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.StartTracking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	point := req.Coordinate()

	started, err := s.track(ctx, id, func(current model.Appointment) (map[string]any, model.Appointment, error) {
		if !current.Status.CanTransitionTo(model.StatusInProgress) {
			return nil, current, failure.Conflict(fmt.Sprintf("tracking cannot start once %s", current.Status))
		}

		session := tracking.Start(point.Latitude, point.Longitude, timezone.Now())

		next := current
		next.Status = model.StatusInProgress
		next.IsTracking = session.IsTracking
		next.Route = session.Route
		next.DistanceMeters = session.DistanceMeters
		next.StartedAt = &session.StartedAt

		return map[string]any{
			model.FieldStatus:         next.Status,
			model.FieldIsTracking:     next.IsTracking,
			model.FieldRoute:          next.Route,
			model.FieldDistanceMeters: next.DistanceMeters,
			model.FieldStartedAt:      session.StartedAt,
		}, next, nil
	})
	if err != nil {
		return res, err
	}

	res.FromModel(started)

	return res, nil
}

func (s *serviceImpl) AddTrackingPoint(ctx context.Context, id string, req dto.TrackingPointRequest) (res dto.TrackingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.AddTrackingPoint")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	point := req.Coordinate()

	updated, err := s.track(ctx, id, func(current model.Appointment) (map[string]any, model.Appointment, error) {
		session := resume(current)

		if err := session.AddPoint(point.Latitude, point.Longitude, timezone.Now()); err != nil {
			return nil, current, errNotTracking
		}

		next := current
		next.Route = session.Route
		next.DistanceMeters = session.DistanceMeters

		return map[string]any{
			model.FieldRoute:          next.Route,
			model.FieldDistanceMeters: next.DistanceMeters,
		}, next, nil
	})
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) StopTracking(ctx context.Context, id string, req dto.StopTrackingRequest) (res dto.TrackingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.StopTracking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	final, err := req.Final()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	completed, err := s.track(ctx, id, func(current model.Appointment) (map[string]any, model.Appointment, error) {
		session := resume(current)

		if err := session.Stop(final, timezone.Now()); err != nil {
			return nil, current, errNotTracking
		}

		next := current
		next.Status = model.StatusCompleted
		next.IsTracking = session.IsTracking
		next.Route = session.Route
		next.DistanceMeters = session.DistanceMeters
		next.CompletedAt = session.CompletedAt
		next.DurationMinutes = session.DurationMinutes

		return map[string]any{
			model.FieldStatus:          next.Status,
			model.FieldIsTracking:      next.IsTracking,
			model.FieldRoute:           next.Route,
			model.FieldDistanceMeters:  next.DistanceMeters,
			model.FieldCompletedAt:     *next.CompletedAt,
			model.FieldDurationMinutes: *next.DurationMinutes,
		}, next, nil
	})
	if err != nil {
		return res, err
	}

	completed.RouteArchiveURL = s.archiveRoute(ctx, completed)

	s.publish(ctx, event.TypeCompleted, completed)

	res.FromModel(completed)

	return res, nil
}

type trackFunc func(current model.Appointment) (map[string]any, model.Appointment, error)

// track loads the appointment under a row lock, checks the caller may drive its tracking, and
// persists whatever fn changes.
func (s *serviceImpl) track(ctx context.Context, id string, fn trackFunc) (model.Appointment, error) {
	user := actorFrom(ctx)

	var next model.Appointment

	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		current, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return errNotFound
		}

		if !user.canTrack(current) {
			return failure.ResourceRestrictedError
		}

		fields, updated, err := fn(current)
		if err != nil {
			return err
		}

		fields[constant.FieldModifiedAt] = timezone.Now()
		fields[constant.FieldModifiedBy] = user.id
		next = updated

		return tx.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		return next, s.storeError(err, "failed to update tracking")
	}

	s.invalidate(ctx, id)

	return next, nil
}

// archiveRoute uploads the finished route as GeoJSON. Failures are logged and leave the URL unset.
func (s *serviceImpl) archiveRoute(ctx context.Context, appointment model.Appointment) *string {
	data, err := geo.GeoJSON(appointment.Route, map[string]any{
		"appointment_id":   appointment.ID,
		"distance_meters":  geo.Round(appointment.DistanceMeters),
		"duration_minutes": appointment.DurationMinutes,
	})
	if err != nil {
		log.Error().Err(err).Str("appointment_id", appointment.ID).Msg("failed to encode route")

		return nil
	}

	fileName := appointment.ID + routeArchiveExtension

	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, routeArchiveDirectory, fileName, constant.ContentTypeGeoJSON, data)
	if err != nil {
		log.Error().Err(err).Str("appointment_id", appointment.ID).Msg("failed to archive route")

		return nil
	}

	err = s.repo.Update(ctx, map[string]any{model.FieldRouteArchiveURL: url}, shared.FilterByID(appointment.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("appointment_id", appointment.ID).Msg("failed to store route archive url")

		if err := s.s3.DeleteFile(ctx, constant.Empty, routeArchiveDirectory, fileName); err != nil {
			log.Error().Err(err).Str("appointment_id", appointment.ID).Msg("failed to remove orphaned route archive")
		}

		return nil
	}

	s.invalidate(ctx, appointment.ID)

	return &url
}

func (s *serviceImpl) checkPets(ctx context.Context, clientID string, petIDs []string) error {
	owned, err := s.petRepo.Count(ctx, petRepo.OwnedBy(clientID, petIDs))
	if err != nil {
		log.Error().Err(err).Msg("failed to count client pets")

		return fmt.Errorf("failed to count client pets: %w", err)
	}

	if owned != len(petIDs) {
		return errPetsNotOwned
	}

	return nil
}

func (s *serviceImpl) checkWalker(ctx context.Context, walkerID *string) error {
	if walkerID == nil {
		return nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: userModel.FieldID, Value: *walkerID, Operator: gDto.FilterOperatorEq, Table: userModel.TableName},
			gDto.Filter{Field: userModel.FieldRole, Value: constant.RoleWalker, Operator: gDto.FilterOperatorEq, Table: userModel.TableName},
			gDto.Filter{Field: userModel.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: userModel.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	exist, err := s.userRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check walker")

		return fmt.Errorf("failed to check walker: %w", err)
	}

	if !exist {
		return errWalkerUnknown
	}

	return nil
}

// storeError passes user-facing failures through and maps the walker slot index to ErrWalkerBooked.
func (s *serviceImpl) storeError(err error, msg string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	if postgres.IsUniqueViolation(err) {
		return scheduler.ErrWalkerBooked
	}

	log.Error().Err(err).Msg(msg)

	return fmt.Errorf("%s: %w", msg, err)
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAppointment, id)); err != nil {
			log.Error().Err(err).Str("appointment_id", id).Msg("failed to invalidate appointment cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
	}()
}

func (s *serviceImpl) publish(ctx context.Context, eventType event.Type, appointment model.Appointment) {
	message := kafka.Message{
		Key:     appointment.ID,
		Value:   event.New(eventType, appointment, timezone.Now()),
		Headers: map[string]string{kafka.HeaderEventType: string(eventType)},
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Appointment, message); err != nil {
		log.Error().Err(err).Str("event", string(eventType)).Str("appointment_id", appointment.ID).Msg("failed to publish appointment event")
	}
}

func lockAndValidate(ctx context.Context, tx repository.Tx, appointment model.Appointment) error {
	placement := scheduler.Placement{
		ID:       appointment.ID,
		WalkerID: appointment.WalkerID,
		Date:     appointment.ScheduledDate.Format(constant.DateOnlyFormat),
		Time:     appointment.ScheduledTime,
		Status:   appointment.Status,
	}

	if placement.Time == nil {
		return nil
	}

	if err := tx.LockSlot(ctx, placement.Date, *placement.Time); err != nil {
		return err //nolint:wrapcheck
	}

	return scheduler.Validate(ctx, tx, placement) //nolint:wrapcheck
}

func scopeToActor(user actor, filter gDto.FilterGroup) gDto.FilterGroup {
	field := model.FieldClientID
	if user.role == constant.RoleWalker {
		field = model.FieldWalkerID
	}

	own := gDto.Filter{
		ArgName:  argScopeUserID,
		Field:    field,
		Value:    user.id,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	}

	if len(filter.Filters) == 0 {
		return gDto.FilterGroup{Filters: []any{own}, Operator: gDto.FilterGroupOperatorAnd}
	}

	return gDto.FilterGroup{Filters: []any{filter, own}, Operator: gDto.FilterGroupOperatorAnd}
}

// priceFor quotes pet-sitting stays with the pricing engine and bills everything else one visit.
func priceFor(serviceType catalog.ServiceType, dogCount int, startDate string, endDate *string) float64 {
	if serviceType.IsPetSitting() {
		end := constant.Empty
		if endDate != nil {
			end = *endDate
		}

		return engine.Price(serviceType, dogCount, startDate, end).Total
	}

	service, _ := catalog.Lookup(serviceType)

	return service.BasePrice
}

func validateStay(startDate string, endDate *string) error {
	if endDate == nil {
		return nil
	}

	return failure.BadRequest(engine.CheckStay(startDate, *endDate)) // nolint:wrapcheck
}

func resume(current model.Appointment) *tracking.Session {
	var startedAt time.Time
	if current.StartedAt != nil {
		startedAt = *current.StartedAt
	}

	return tracking.Resume(current.Route, current.DistanceMeters, current.IsTracking, startedAt)
}

func changes(next model.Appointment) map[string]any {
	return map[string]any{
		model.FieldWalkerID:      next.WalkerID,
		model.FieldScheduledDate: next.ScheduledDate,
		model.FieldScheduledTime: next.ScheduledTime,
		model.FieldEndDate:       next.EndDate,
		model.FieldNotes:         next.Notes,
		model.FieldPriceTotal:    next.PriceTotal,
		constant.FieldModifiedAt: next.ModifiedAt,
		constant.FieldModifiedBy: next.ModifiedBy,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(constant.DateOnlyFormat)

	return &formatted
}
