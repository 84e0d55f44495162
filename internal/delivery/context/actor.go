package context

import (
	"cashless/internal/domain/entity"
	"cashless/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SetSession stores the authenticated account and the session token that proved it.
func SetSession(c echo.Context, account *entity.Account, token string) {
	c.Set(string(KeyActor), usecase.ActorOf(account))
	c.Set(string(KeyToken), token)
}

// GetActor returns the authenticated actor. ok is false on public routes.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(string(KeyActor)).(usecase.Actor)

	return actor, ok
}

// GetSessionToken returns the long session token of the request, or "".
func GetSessionToken(c echo.Context) string {
	token, _ := c.Get(string(KeyToken)).(string)

	return token
}
