package middleware

import (
	"context"
	"net/http"
	"strings"

	"tasker/infras/otel"
	sessionService "tasker/internal/domains/session/service"
	"tasker/shared/constant"
	"tasker/shared/failure"
	"tasker/transport/http/response"
)

const bearerPrefix = "Bearer "

// Auth authenticates requests with a session bearer token.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	sessions sessionService.Session
	otel     otel.Otel
}

func NewAuthMiddleware(sessions sessionService.Session, otel otel.Otel) Auth {
	return &authImpl{
		sessions: sessions,
		otel:     otel,
	}
}

// Auth resolves the bearer token to a user and stores the user ID on the
// request context. Requests without a valid session never reach the handler.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		token, err := extractBearerToken(authHeader)
		if err != nil {
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		userID, err := m.sessions.Validate(ctx, token)
		if err != nil {
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, userID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func extractBearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", failure.Unauthorized("Invalid authorization header format") //nolint:wrapcheck
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", failure.Unauthorized("Invalid authorization header format") //nolint:wrapcheck
	}

	return token, nil
}
