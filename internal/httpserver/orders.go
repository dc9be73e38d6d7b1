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

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place_order")

	var req transport.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("place_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Order creation failed, check the order details.")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("place_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Order creation failed, check the order details.")
	}

	view, err := h.Svc.PlaceOrder(ctx, req)
	if err != nil {
		var nf *service.NotFoundError
		if errors.As(err, &nf) {
			msg := fmt.Sprintf("%s with ID %s not found.", nf.Entity, nf.ID)
			l.Warn("place_order_error", "status", 400, "reason", "missing entity", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, msg)
		}
		l.Error("place_order_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Order creation failed, check the order details.")
	}

	l.Info("place_order_success", "order_id", view.ID)
	return c.JSON(http.StatusOK, view)
}

func (h *OrderHTTP) ChangeOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.change_order_status")

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		l.Warn("change_order_status_error", "status", 400, "reason", "invalid order id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to change order status")
	}
	status := c.QueryParam("orderStatus")

	if err := h.Svc.ChangeStatus(ctx, orderID, status); err != nil {
		l.Warn("change_order_status_error", "status", 400, "reason", "rejected", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to change order status")
	}

	l.Info("change_order_status_success", "order_id", orderID, "order_status", status)
	return c.JSON(http.StatusOK, map[string]string{"message": "Order Status was changed successfully"})
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	idParam := c.Param("orderId")
	orderID, err := uuid.Parse(idParam)
	if err != nil {
		l.Warn("get_order_error", "status", 400, "reason", "invalid order id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Order with ID %s not found.", idParam))
	}

	view, err := h.Svc.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_order_error", "status", 400, "reason", "not found", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Order with ID %s not found.", idParam))
		}
		l.Error("get_order_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, view)
}

func (h *OrderHTTP) OrdersBySeller(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.orders_by_seller")

	sellerID, err := uuid.Parse(c.Param("sellerId"))
	if err != nil {
		l.Warn("orders_by_seller_error", "status", 400, "reason", "invalid seller id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Seller not found")
	}

	views, err := h.Svc.OrdersBySeller(ctx, sellerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("orders_by_seller_error", "status", 400, "reason", "seller missing", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Seller not found")
		}
		l.Error("orders_by_seller_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if len(views) == 0 {
		l.Warn("orders_by_seller_error", "status", 400, "reason", "no orders")
		return echo.NewHTTPError(http.StatusBadRequest, "No orders found for the specified seller.")
	}

	return c.JSON(http.StatusOK, views)
}

func (h *OrderHTTP) OrdersByCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.orders_by_customer")

	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		l.Warn("orders_by_customer_error", "status", 400, "reason", "invalid customer id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Customer not found")
	}

	views, err := h.Svc.OrdersByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("orders_by_customer_error", "status", 400, "reason", "customer missing", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "Customer not found")
		}
		l.Error("orders_by_customer_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if len(views) == 0 {
		l.Warn("orders_by_customer_error", "status", 400, "reason", "no orders")
		return echo.NewHTTPError(http.StatusBadRequest, "No orders found for the specified customer.")
	}

	return c.JSON(http.StatusOK, views)
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	views, err := h.Svc.AllOrders(ctx)
	if err != nil {
		l.Error("get_orders_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if len(views) == 0 {
		l.Warn("get_orders_error", "status", 400, "reason", "no orders")
		return echo.NewHTTPError(http.StatusBadRequest, "No orders found.")
	}

	return c.JSON(http.StatusOK, views)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete_order")

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_order_error", "status", 404, "reason", "invalid order id", "error", err)
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	}

	if err := h.Svc.DeleteOrder(ctx, orderID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_order_error", "status", 404, "reason", "not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		}
		l.Error("delete_order_error", "status", 500, "reason", "internal error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("delete_order_success", "order_id", orderID)
	return c.JSON(http.StatusOK, map[string]string{"message": "Order was successfully deleted"})
}
