package middleware

import (
	"strings"

	"cashless/internal/delivery/api/response"
	deliverycontext "cashless/internal/delivery/context"
	"cashless/internal/domain/entity"
	"cashless/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
}

// AuthMiddleware resolves the long session in the Authorization header to an actor.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{sessions: params.Sessions}
}

// Authenticate rejects the request unless it carries a live long session.
// Every failure renders the same 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c)
		}

		account, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetSession(c, account, token)

		return next(c)
	}
}

// RequireRole admits actors holding at least required. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := deliverycontext.GetActor(c)
			if !ok {
				return response.Unauthorized(c)
			}
			if !actor.Role.AtLeast(required) {
				return response.Forbidden(c)
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

	return token, token != ""
}
