package appointment

import (
	"net/http"
	"petcare/infras/otel"
	"petcare/internal/domains/appointment/model"
	"petcare/internal/domains/appointment/model/dto"
	"petcare/internal/domains/appointment/service"
	"petcare/shared/constant"
	gDto "petcare/shared/dto"
	"petcare/shared/failure"
	"petcare/shared/validator"
	"petcare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const paramID = "id"

type Handler struct {
	service service.Appointment
	otel    otel.Otel
}

func New(service service.Appointment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAppointment)
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Get("/mine", handler.GetMyAppointments)
		routerGroup.Get("/{id}", handler.GetAppointmentByID)
		routerGroup.Patch("/{id}", handler.UpdateAppointment)
		routerGroup.Post("/{id}/cancel", handler.CancelAppointment)
		routerGroup.Post("/{id}/tracking/start", handler.StartTracking)
		routerGroup.Post("/{id}/tracking/points", handler.AddTrackingPoint)
		routerGroup.Post("/{id}/tracking/stop", handler.StopTracking)
	})
}

// CreateAppointment handles the creation of a new appointment.
// @Summary Create an appointment
// @Description Book a walk, pet-sitting stay or other service. Admins book on behalf of a client by setting client_id.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Data[dto.AppointmentResponse] "Appointment created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error "Slot full or walker already booked"
// @Failure 500 {object} response.Error
// @Router /v1/appointments [post]
// @Security BearerAuth
func (handler *Handler) CreateAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAppointment")
	defer scope.End()

	req := dto.CreateAppointmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "validate request body")

		return
	}

	appointment, err := handler.service.Create(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "create appointment")

		return
	}

	scope.AddEvent("Appointment created " + appointment.ID)

	response.WithJSON(writer, http.StatusCreated, appointment)
}

// GetAppointments retrieves appointments visible to the caller.
// @Summary Get appointments
// @Description Admins see every appointment; clients see their own and walkers see those assigned to them.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (scheduled, in_progress, completed, cancelled)"
// @Param walker_id query string false "Filter by walker ID"
// @Param client_id query string false "Filter by client ID"
// @Param scheduled_date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse] "List of appointments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request)

	filterGroup, err := filterFromQuery(request, model.FieldStatus, model.FieldWalkerID, model.FieldClientID, model.FieldScheduledDate)
	if err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	appointments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(writer, scope, err, "get appointments")

		return
	}

	response.WithJSON(writer, http.StatusOK, appointments)
}

// GetMyAppointments retrieves the caller's own appointments.
// @Summary Get my appointments
// @Description Clients get the appointments they booked; walkers get the appointments assigned to them.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (scheduled, in_progress, completed, cancelled)"
// @Param scheduled_date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse] "List of the caller's appointments"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyAppointments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyAppointments")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.Fail(writer, scope, failure.Unauthorized("unauthorized"), "resolve caller")

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request)

	filterGroup, err := filterFromQuery(request, model.FieldStatus, model.FieldScheduledDate)
	if err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	appointments, err := handler.service.GetMine(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(writer, scope, err, "get user appointments")

		return
	}

	scope.AddEvent("Appointments retrieved for user " + userID)

	response.WithJSON(writer, http.StatusOK, appointments)
}

// GetAppointmentByID retrieves an appointment by its ID.
// @Summary Get an appointment by ID
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Data[dto.AppointmentResponse] "Appointment details"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	id, err := pathID(request)
	if err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	appointment, err := handler.service.Get(ctx, id)
	if err != nil {
		response.Fail(writer, scope, err, "get appointment")

		return
	}

	response.WithJSON(writer, http.StatusOK, appointment)
}

// UpdateAppointment reschedules, reassigns or annotates a scheduled appointment.
// @Summary Update an appointment
// @Description Only scheduled appointments can be edited and only admins may change the walker.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Update Appointment Request"
// @Success 200 {object} response.Message "Appointment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAppointment")
	defer scope.End()

	id, err := pathID(request)
	if err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	req := dto.UpdateAppointmentRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "validate request body")

		return
	}

	if err = handler.service.Update(ctx, req, id); err != nil {
		response.Fail(writer, scope, err, "update appointment")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Appointment updated successfully")
}

// CancelAppointment cancels an appointment that has not finished.
// @Summary Cancel an appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Appointment cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAppointment")
	defer scope.End()

	id, err := pathID(request)
	if err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	if err = handler.service.Cancel(ctx, id); err != nil {
		response.Fail(writer, scope, err, "cancel appointment")

		return
	}

	response.WithMessage(writer, http.StatusOK, "Appointment cancelled successfully")
}

// StartTracking starts GPS tracking with the walker's first position.
// @Summary Start tracking a walk
// @Tags Tracking
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.TrackingPointRequest true "First position"
// @Success 200 {object} response.Data[dto.TrackingResponse] "Tracking state"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/tracking/start [post]
// @Security BearerAuth
func (handler *Handler) StartTracking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartTracking")
	defer scope.End()

	id, err := pathID(request)
	if err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	req := dto.TrackingPointRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	tracking, err := handler.service.StartTracking(ctx, id, req)
	if err != nil {
		response.Fail(writer, scope, err, "start tracking")

		return
	}

	response.WithJSON(writer, http.StatusOK, tracking)
}

// AddTrackingPoint appends a GPS sample to an active walk.
// @Summary Add a tracking point
// @Tags Tracking
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.TrackingPointRequest true "Current position"
// @Success 200 {object} response.Data[dto.TrackingResponse] "Tracking state"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Tracking is not active"
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/tracking/points [post]
// @Security BearerAuth
func (handler *Handler) AddTrackingPoint(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddTrackingPoint")
	defer scope.End()

	id, err := pathID(request)
	if err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	req := dto.TrackingPointRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	tracking, err := handler.service.AddTrackingPoint(ctx, id, req)
	if err != nil {
		response.Fail(writer, scope, err, "add tracking point")

		return
	}

	response.WithJSON(writer, http.StatusOK, tracking)
}

// StopTracking ends the walk, optionally with a final position, and completes the appointment.
// @Summary Stop tracking a walk
// @Tags Tracking
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.StopTrackingRequest false "Final position"
// @Success 200 {object} response.Data[dto.TrackingResponse] "Final tracking state"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Tracking is not active"
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/tracking/stop [post]
// @Security BearerAuth
func (handler *Handler) StopTracking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StopTracking")
	defer scope.End()

	id, err := pathID(request)
	if err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	req := dto.StopTrackingRequest{}

	if request.ContentLength != 0 {
		if err = validator.Validate(request.Body, &req); err != nil {
			response.Fail(writer, scope, err, "read request")

			return
		}
	}

	tracking, err := handler.service.StopTracking(ctx, id, req)
	if err != nil {
		response.Fail(writer, scope, err, "stop tracking")

		return
	}

	response.WithJSON(writer, http.StatusOK, tracking)
}

func pathID(request *http.Request) (string, error) {
	id := chi.URLParam(request, paramID)

	if _, err := uuid.Parse(id); err != nil {
		return "", failure.BadRequestFromString("id must be a valid UUID") // nolint:wrapcheck
	}

	return id, nil
}

// filterFromQuery turns the named query parameters into equality filters. Id and date values are
// checked so malformed input is a 400 rather than a database cast error.
func filterFromQuery(request *http.Request, fields ...string) (gDto.FilterGroup, error) {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	query := request.URL.Query()

	for _, field := range fields {
		value := query.Get(field)
		if value == "" {
			continue
		}

		switch field {
		case model.FieldWalkerID, model.FieldClientID:
			if _, err := uuid.Parse(value); err != nil {
				return filterGroup, failure.BadRequestFromString(field + " must be a valid UUID") // nolint:wrapcheck
			}
		case model.FieldScheduledDate:
			if err := validator.ValidateVar(value, "datetime=2006-01-02"); err != nil {
				return filterGroup, failure.BadRequestFromString(field + " must be a date formatted as 2006-01-02") // nolint:wrapcheck
			}
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}
