// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"net/http"

	"cashless/internal/delivery/api/response"
	deliverycontext "cashless/internal/delivery/context"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate fills req from the request and runs the validator. The
// returned error is already rendered when non-nil.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "The request body could not be parsed")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

func actorOf(c echo.Context) (usecase.Actor, bool) {
	return deliverycontext.GetActor(c)
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrBadRequest.WithDetails("invalid " + name)
	}

	return id, nil
}
