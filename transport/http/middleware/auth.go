package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"petcare/config"
	"petcare/infras/jwt"
	"petcare/infras/otel"
	"petcare/permissions"
	"petcare/shared/constant"
	"petcare/shared/failure"
	"petcare/transport/http/response"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type internalCallKey struct{}

const (
	errMsgMissingHeader = "missing authorization header"
	errMsgBadHeader     = "invalid authorization header format"
	errMsgExpired       = "token has expired"
	errMsgInvalidToken  = "invalid token"
	errMsgInvalidClaims = "invalid token claims"
	errMsgForbidden     = "you don't have the required permissions"
	errMsgBadAPIKey     = "invalid api key"
)

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole is mounted as APIKey, then Auth, then RBAC on every /v1 route.
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func isInternalCall(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCallKey{}).(bool)

	return internal
}

// routePermission resolves the chi pattern for the request, e.g. /v1/appointments/{id}/cancel.
func (m *authRoleImpl) routePermission(request *http.Request) (string, permissions.Permission, bool) {
	pattern := chi.RouteContext(request.Context()).Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)

	if m.permission == nil {
		return pattern, permissions.Permission{}, false
	}

	permission, found := m.permission.FindPermissions(pattern, request.Method)

	return pattern, permission, found
}

func reject(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	scope.End()

	response.WithError(writer, err)
}

func tokenFailure(err error) error {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return failure.Unauthorized(errMsgExpired)
	case errors.Is(err, jwt.ErrInvalidClaim):
		return failure.Unauthorized(errMsgInvalidClaims)
	default:
		return failure.Unauthorized(errMsgInvalidToken)
	}
}

// Auth validates the bearer access token and stores the caller's id, email, role and token id in the context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		pattern, permission, _ := m.routePermission(request)

		if isInternalCall(ctx) || permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"http.route":  pattern,
			"http.method": request.Method,
		})

		header := request.Header.Get(constant.RequestHeaderAuthorization)
		if header == "" {
			reject(writer, scope, failure.Unauthorized(errMsgMissingHeader))

			return
		}

		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			reject(writer, scope, failure.Unauthorized(errMsgBadHeader))

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, token, jwt.AccessToken)
		if err != nil {
			reject(writer, scope, tokenFailure(err))

			return
		}

		if claims.UserID == "" || claims.Role == "" || claims.Email == "" {
			log.Warn().Str("user_id", claims.UserID).Msg("access token is missing required claims")
			reject(writer, scope, failure.Unauthorized(errMsgInvalidClaims))

			return
		}

		scope.SetAttribute("user.role", claims.Role)
		scope.End()

		ctx = context.WithValue(request.Context(), constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC allows a request only when its route is listed and the caller's role is among the
// listed roles. Unlisted routes are denied.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")

		if isInternalCall(ctx) || (m.permission != nil && m.permission.Skip) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		pattern, permission, found := m.routePermission(request)

		if found && permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !found || !slices.Contains(permission.Permissions, role) {
			scope.SetAttributes(map[string]any{
				"http.route":    pattern,
				"user.role":     role,
				"allowed_roles": permission.Permissions,
			})
			reject(writer, scope, failure.Forbidden(errMsgForbidden))

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// APIKey marks requests carrying the internal X-API-Key as service calls that bypass Auth and RBAC.
// A wrong key is rejected outright. Requests without the header continue as client calls.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		key := request.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		expected := m.cfg.App.APIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			reject(writer, scope, failure.Forbidden(errMsgBadAPIKey))

			return
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, internalCallKey{}, true)))
	})
}
