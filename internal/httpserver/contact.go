package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stitchfit/marketplace/internal/logging"
	"github.com/stitchfit/marketplace/internal/service"
	"github.com/stitchfit/marketplace/internal/transport"
)

type ContactHTTP struct {
	Svc *service.ContactService
}

func (h *ContactHTTP) ContactSeller(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contact.contact_seller")

	var req transport.ContactSellerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("contact_seller_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("contact_seller_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	if err := h.Svc.ContactSeller(ctx, req); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("contact_seller_error", "status", 400, "reason", "product missing", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Product does not exist")
		case errors.Is(err, service.ErrExternal):
			l.Warn("contact_seller_error", "status", 400, "reason", "mail failed", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Failed to send email")
		}
		l.Error("contact_seller_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("contact_seller_success", "product_id", req.ProductID)
	return c.JSON(http.StatusOK, map[string]string{"message": "Email was sent to the seller"})
}
