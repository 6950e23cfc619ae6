package user

import (
	"net/http"
	"petcare/infras/otel"
	"petcare/internal/domains/user/service"
	"petcare/shared/constant"
	"petcare/shared/failure"
	"petcare/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/me", handler.GetMe)
	})

	router.Get("/walkers", handler.GetWalkers)
}

// GetMe returns the authenticated user's profile.
// @Summary Get my profile
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "User profile"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetMe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMe")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		response.Fail(writer, scope, failure.Unauthorized("unauthorized"), "resolve caller")

		return
	}

	user, err := handler.service.Get(ctx, userID)
	if err != nil {
		response.Fail(writer, scope, err, "get user")

		return
	}

	response.WithJSON(writer, http.StatusOK, user)
}

// GetWalkers lists active walkers with their calendar colors.
// @Summary Get walkers
// @Description Walkers without a stored color are shown with one picked from the palette.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetWalkersResponse] "Active walkers"
// @Failure 500 {object} response.Error
// @Router /v1/walkers [get]
// @Security BearerAuth
func (handler *Handler) GetWalkers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWalkers")
	defer scope.End()

	walkers, err := handler.service.GetWalkers(ctx)
	if err != nil {
		response.Fail(writer, scope, err, "get walkers")

		return
	}

	response.WithJSON(writer, http.StatusOK, walkers)
}
