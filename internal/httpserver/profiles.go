package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stitchfit/marketplace/internal/logging"
	"github.com/stitchfit/marketplace/internal/service"
	"github.com/stitchfit/marketplace/internal/transport"
)

type ProfileHTTP struct {
	Svc *service.PartyService
}

func (h *ProfileHTTP) GetSeller(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.get_seller")

	idParam := c.Param("id")
	sellerID, err := uuid.Parse(idParam)
	if err != nil {
		l.Warn("get_seller_error", "status", 400, "reason", "invalid seller id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Seller by Id %s not found.", idParam))
	}

	view, err := h.Svc.GetSeller(ctx, sellerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_seller_error", "status", 400, "reason", "not found", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Seller by Id %s not found.", idParam))
		}
		l.Error("get_seller_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, view)
}

func (h *ProfileHTTP) UpdateSeller(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.update_seller")

	idParam := c.Param("id")
	sellerID, err := uuid.Parse(idParam)
	if err != nil {
		l.Warn("update_seller_error", "status", 400, "reason", "invalid seller id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Seller by Id %s not found.", idParam))
	}

	var req transport.SellerProfileUpdate
	if err := c.Bind(&req); err != nil {
		l.Warn("update_seller_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("update_seller_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	if err := h.Svc.UpdateSeller(ctx, sellerID, req); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_seller_error", "status", 400, "reason", "not found", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Seller by Id %s not found.", idParam))
		}
		l.Error("update_seller_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("update_seller_success", "seller_id", sellerID)
	return c.JSON(http.StatusOK, map[string]string{"message": "Seller information was changed."})
}

func (h *ProfileHTTP) GetSellers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.get_sellers")

	views, err := h.Svc.ListSellers(ctx)
	if err != nil {
		l.Error("get_sellers_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if len(views) == 0 {
		l.Warn("get_sellers_error", "status", 400, "reason", "no sellers")
		return echo.NewHTTPError(http.StatusBadRequest, "There are no sellers.")
	}

	return c.JSON(http.StatusOK, views)
}

func (h *ProfileHTTP) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.get_customer")

	idParam := c.Param("id")
	customerID, err := uuid.Parse(idParam)
	if err != nil {
		l.Warn("get_customer_error", "status", 400, "reason", "invalid customer id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Customer by Id %s not found.", idParam))
	}

	view, err := h.Svc.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_customer_error", "status", 400, "reason", "not found", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Customer by Id %s not found.", idParam))
		}
		l.Error("get_customer_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, view)
}

func (h *ProfileHTTP) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.update_customer")

	idParam := c.Param("id")
	customerID, err := uuid.Parse(idParam)
	if err != nil {
		l.Warn("update_customer_error", "status", 400, "reason", "invalid customer id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Customer by Id %s not found.", idParam))
	}

	var req transport.CustomerProfileUpdate
	if err := c.Bind(&req); err != nil {
		l.Warn("update_customer_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("update_customer_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	if err := h.Svc.UpdateCustomer(ctx, customerID, req); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_customer_error", "status", 400, "reason", "not found", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Customer by Id %s not found.", idParam))
		}
		l.Error("update_customer_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("update_customer_success", "customer_id", customerID)
	return c.JSON(http.StatusOK, map[string]string{"message": "Customer information was changed."})
}

func (h *ProfileHTTP) GetCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.get_customers")

	views, err := h.Svc.ListCustomers(ctx)
	if err != nil {
		l.Error("get_customers_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if len(views) == 0 {
		l.Warn("get_customers_error", "status", 400, "reason", "no customers")
		return echo.NewHTTPError(http.StatusBadRequest, "There are no customers.")
	}

	return c.JSON(http.StatusOK, views)
}
