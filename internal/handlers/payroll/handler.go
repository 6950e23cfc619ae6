package payroll

import (
	"net/http"
	"petcare/infras/otel"
	"petcare/internal/domains/payroll/model/dto"
	"petcare/internal/domains/payroll/service"
	"petcare/shared/constant"
	"petcare/shared/validator"
	"petcare/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Payroll
	otel    otel.Otel
}

func New(service service.Payroll, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payroll", func(routerGroup chi.Router) {
		routerGroup.Get("/timesheet", handler.GetTimesheet)
		routerGroup.Get("/earnings", handler.GetEarnings)
	})
}

// GetTimesheet lists a walker's recorded earnings over a date range.
// @Summary Get a walker timesheet
// @Description Walkers get their own timesheet; admins must pass walker_id.
// @Tags Payroll
// @Accept json
// @Produce json
// @Param walker_id query string false "Walker ID (admins only)"
// @Param from query string true "First work date (YYYY-MM-DD)"
// @Param to query string true "Last work date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.TimesheetResponse] "Timesheet rows and totals"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payroll/timesheet [get]
// @Security BearerAuth
func (handler *Handler) GetTimesheet(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimesheet")
	defer scope.End()

	req := dto.TimesheetRequest{}
	req.FromRequest(request)

	if err := validator.ValidateStruct(&req); err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	timesheet, err := handler.service.Timesheet(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "get timesheet")

		return
	}

	response.WithJSON(writer, http.StatusOK, timesheet)
}

// GetEarnings calculates what a walker earns for one service.
// @Summary Calculate earnings
// @Description Walks pay a flat rate; every other service pays hourly for its duration.
// @Tags Payroll
// @Accept json
// @Produce json
// @Param service_type query string true "Service type"
// @Param duration_minutes query int false "Duration in minutes"
// @Success 200 {object} response.Data[dto.EarningsResponse] "Earnings"
// @Failure 400 {object} response.Error
// @Router /v1/payroll/earnings [get]
// @Security BearerAuth
func (handler *Handler) GetEarnings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEarnings")
	defer scope.End()

	req := dto.EarningsRequest{}
	req.FromRequest(request)

	if err := validator.ValidateStruct(&req); err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	earnings, err := handler.service.Calculate(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "calculate earnings")

		return
	}

	response.WithJSON(writer, http.StatusOK, earnings)
}
