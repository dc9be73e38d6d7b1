package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stitchfit/marketplace/internal/logging"
	"github.com/stitchfit/marketplace/internal/models"
	"github.com/stitchfit/marketplace/internal/service"
	"github.com/stitchfit/marketplace/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) RegisterSeller(c echo.Context) error {
	return h.register(c, models.RoleSeller)
}

func (h *AuthHTTP) RegisterCustomer(c echo.Context) error {
	return h.register(c, models.RoleCustomer)
}

func (h *AuthHTTP) register(c echo.Context, role models.Role) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register", "role", string(role))

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	resp, err := h.Svc.Register(ctx, req, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			l.Warn("register_error", "status", 409, "reason", "duplicate email", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "Email already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("register_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("register_success", "user_id", resp.UserID)
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	resp, err := h.Svc.Login(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("login_error", "status", 401, "reason", "bad credentials")
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password.")
		}
		l.Error("login_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("login_success", "user_id", resp.UserID)
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHTTP) ForgotPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.forgot_password")

	var req transport.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("forgot_password_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("forgot_password_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	if err := h.Svc.ForgotPassword(ctx, req); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("forgot_password_error", "status", 400, "reason", "email missing", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Email not found")
		case errors.Is(err, service.ErrExternal):
			l.Warn("forgot_password_error", "status", 400, "reason", "mail failed", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Failed to send the code")
		case errors.Is(err, service.ErrValidation):
			l.Warn("forgot_password_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("forgot_password_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("forgot_password_success")
	return c.JSON(http.StatusOK, map[string]string{"message": "Reset code sent"})
}

func (h *AuthHTTP) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.reset_password")

	var req transport.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("reset_password_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("reset_password_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	if err := h.Svc.ResetPassword(ctx, req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("reset_password_error", "status", 400, "reason", "rejected", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("reset_password_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("reset_password_success")
	return c.JSON(http.StatusOK, map[string]string{"message": "Password was reset"})
}

// Logout is stateless: the token simply stops being presented. The endpoint
// exists so clients have an explicit signal to drop it.
func (h *AuthHTTP) Logout(c echo.Context) error {
	logging.FromContext(c.Request().Context()).
		With("handler", "auth.logout").
		Info("logout_success")
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
