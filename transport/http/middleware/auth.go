package middleware

import (
	"context"
	"errors"
	"net/http"

	"quickcourt/infras/jwt"
	"quickcourt/infras/otel"
	"quickcourt/permissions"
	"quickcourt/shared/constant"
	"quickcourt/shared/failure"
	"quickcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth resolves the caller from a bearer token.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
	}
}

func (m *authImpl) isPublic(request *http.Request) bool {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return false
	}

	path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)

	return m.permission.IsPublic(path, request.Method)
}

func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrMissingHeader):
		return "Missing authorization header"
	case errors.Is(err, jwt.ErrMalformedAuth):
		return "Invalid authorization header format"
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Token validation failed"
	}
}

func (m *authImpl) identify(request *http.Request) (*jwt.Claims, error) {
	tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return m.jwtService.Validate(tokenString) //nolint:wrapcheck
}

// Auth requires a valid token on protected routes. On public routes a valid
// token still identifies the caller; a bad one is ignored.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		public := m.isPublic(request)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.method":     request.Method,
			"auth.public":     public,
		})

		claims, err := m.identify(request)
		if err != nil {
			if public {
				scope.End()
				next.ServeHTTP(writer, request)

				return
			}

			failed := failure.Unauthorized(unauthorizedMessage(err))
			log.Debug().Err(err).Str("path", request.URL.Path).Msg("request rejected by auth middleware")

			scope.TraceError(failed)
			scope.End()
			response.WithError(writer, failed)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserName, claims.Name)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)

		scope.SetAttribute("user.id", claims.UserID)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
