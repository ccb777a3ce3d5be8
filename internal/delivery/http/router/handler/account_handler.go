// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "ashcosmetic/internal/delivery/context"
	"ashcosmetic/internal/delivery/http/cookie"
	"ashcosmetic/internal/delivery/http/response"
	"ashcosmetic/internal/delivery/http/validator"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest binds both urlencoded forms and JSON bodies.
type registerRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Confirm  string `json:"confirm" form:"confirm" validate:"required"`
}

type signinRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	cookie *cookie.SessionCookie
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, sessionCookie *cookie.SessionCookie, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		cookie: sessionCookie,
		logger: logger,
	}
}

// Register handles POST /submit.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req, domainerrors.ErrValidationFailed); err != nil {
		return err
	}

	_, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Confirm:  req.Confirm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Registration successful!")
}

// Login handles POST /signin and issues the session cookie.
func (h *AccountHandler) Login(c echo.Context) error {
	var req signinRequest
	if err := bindAndValidate(c, &req, domainerrors.ErrCredentialsRequired); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Set(c, output.Token, output.ExpiresAt)

	return response.Success(c, "Login successful!")
}

// CurrentUser handles GET /user. Every failure, including a store error, reads as logged out.
func (h *AccountHandler) CurrentUser(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.uc.CurrentUser(ctx, h.cookie.Token(c))
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to load current user", slog.Any("error", err))

		return c.JSON(http.StatusOK, response.CurrentUser{LoggedIn: false})
	}
	if user == nil {
		return c.JSON(http.StatusOK, response.CurrentUser{LoggedIn: false})
	}

	return c.JSON(http.StatusOK, response.CurrentUser{LoggedIn: true, User: response.FromUser(user)})
}

// Logout handles POST /logout. The cookie is cleared even when the store call fails.
func (h *AccountHandler) Logout(c echo.Context) error {
	token := h.cookie.Token(c)
	h.cookie.Clear(c)

	if err := h.uc.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Logged out")
}

// bindAndValidate maps binding and required-field failures to the given domain error.
func bindAndValidate(c echo.Context, req any, failure *domainerrors.BaseError) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(failure.WithDetails(err.Error()))
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(failure.WithDetails("missing: " + strings.Join(validator.FailedFields(err), ", ")))
	}

	return nil
}
