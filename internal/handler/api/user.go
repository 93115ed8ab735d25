package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite/internal/app"
	"github.com/shoplite/shoplite/internal/app/user"
)

// UserHandler serves registration, login and email confirmation.
type UserHandler struct {
	mediator *app.Mediator
}

func NewUserHandler(mediator *app.Mediator) *UserHandler {
	return &UserHandler{mediator: mediator}
}

// Register handles POST /users/register.
func (h *UserHandler) Register(c echo.Context) error {
	var cmd user.RegisterUser
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return send[user.RegisterUser, bool](c, h.mediator, cmd)
}

// Login handles POST /users/login.
func (h *UserHandler) Login(c echo.Context) error {
	var q user.PasswordLogin
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return send[user.PasswordLogin, user.LoginResult](c, h.mediator, q)
}

// ConfirmEmail handles POST /users/:id/confirm-email.
func (h *UserHandler) ConfirmEmail(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return send[user.ConfirmUserEmail, bool](c, h.mediator, user.ConfirmUserEmail{UserID: id})
}
