// Package api exposes the request pipeline over HTTP. Every endpoint binds a
// request, sends it through the mediator, and translates the result envelope
// to a status code: success 200, validation failure 400, not found 404,
// concurrent modification 409.
package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite/internal/app"
)

// envelope is the JSON body of every API response.
type envelope struct {
	Succeeded bool             `json:"succeeded"`
	Data      any              `json:"data,omitempty"`
	Errors    []app.FieldError `json:"errors,omitempty"`
}

func respond[T any](c echo.Context, result app.Result[T]) error {
	switch {
	case result.IsSuccess():
		return c.JSON(http.StatusOK, envelope{Succeeded: true, Data: result.Value()})
	case result.IsNotFound():
		return c.JSON(http.StatusNotFound, envelope{Errors: result.Errors()})
	default:
		return c.JSON(http.StatusBadRequest, envelope{Errors: result.Errors()})
	}
}

// send dispatches req and writes the outcome. Infrastructure errors bubble
// to the echo error handler; a commit conflict maps to 409.
func send[Req any, Res any](c echo.Context, m *app.Mediator, req Req) error {
	result, err := app.Send[Req, Res](c.Request().Context(), m, req)
	if err != nil {
		if errors.Is(err, app.ErrConflict) {
			return echo.NewHTTPError(http.StatusConflict, "the resource was modified concurrently, retry the request")
		}
		return err
	}
	return respond(c, result)
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
