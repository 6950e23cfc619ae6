package pricing

import (
	"net/http"
	"petcare/infras/otel"
	"petcare/internal/domains/pricing/model/dto"
	"petcare/internal/domains/pricing/service"
	"petcare/shared/constant"
	"petcare/shared/validator"
	"petcare/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pricing", func(routerGroup chi.Router) {
		routerGroup.Get("/quote", handler.GetQuote)
	})

	router.Get("/holidays", handler.GetHolidays)
}

// GetQuote prices a pet-sitting stay.
// @Summary Quote a pet-sitting stay
// @Description Nightly (our location) or daily (client's home) pricing with a per-dog holiday surcharge.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param service_type query string true "petsit_client_home or petsit_our_location"
// @Param dog_count query int true "Number of dogs"
// @Param start_date query string true "First day of the stay (YYYY-MM-DD)"
// @Param end_date query string false "Last day of the stay (YYYY-MM-DD)"
// @Success 200 {object} response.Data[engine.Quote] "Quote with line items"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/quote [get]
// @Security BearerAuth
func (handler *Handler) GetQuote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	req := dto.QuoteRequest{}
	req.FromRequest(request)

	if err := validator.ValidateStruct(&req); err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "quote stay")

		return
	}

	response.WithJSON(writer, http.StatusOK, quote)
}

// GetHolidays lists the surcharge holidays of a year.
// @Summary Get surcharge holidays
// @Description The six named holidays and every date in their three day surcharge windows.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param year query int false "Calendar year, defaults to the current year"
// @Success 200 {object} response.Data[dto.HolidaysResponse] "Holidays and surcharge dates"
// @Failure 400 {object} response.Error
// @Router /v1/holidays [get]
// @Security BearerAuth
func (handler *Handler) GetHolidays(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHolidays")
	defer scope.End()

	req := dto.HolidaysRequest{}
	req.FromRequest(request)

	if err := validator.ValidateStruct(&req); err != nil {
		response.Fail(writer, scope, err, "read request")

		return
	}

	holidays, err := handler.service.Holidays(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "list holidays")

		return
	}

	response.WithJSON(writer, http.StatusOK, holidays)
}
