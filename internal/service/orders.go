package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stitchfit/marketplace/internal/events"
	"github.com/stitchfit/marketplace/internal/models"
	"github.com/stitchfit/marketplace/internal/repo"
	"github.com/stitchfit/marketplace/internal/transport"
)

type OrderService struct {
	repo     *repo.GormRepo
	producer *events.Producer
}

func NewOrderService(r *repo.GormRepo, p *events.Producer) *OrderService {
	return &OrderService{repo: r, producer: p}
}

// PlaceOrder creates the order from the (customer, seller, product) tuple.
// The repo validates all three and inserts in one transaction; the price and
// date it records are final.
func (svc *OrderService) PlaceOrder(ctx context.Context, req transport.PlaceOrderRequest) (*transport.OrderView, error) {
	order, err := svc.repo.CreateOrder(ctx, req.CustomerID, req.SellerID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrCustomerNotFound):
			return nil, notFound("Customer", req.CustomerID.String())
		case errors.Is(err, repo.ErrSellerNotFound):
			return nil, notFound("Seller", req.SellerID.String())
		case errors.Is(err, repo.ErrProductNotFound):
			return nil, notFound("Product", req.ProductID.String())
		}
		return nil, fmt.Errorf("place order: %w", err)
	}

	full, err := svc.repo.GetOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("load placed order: %w", err)
	}

	svc.producer.PublishAsync(ctx, events.TopicOrderEvents, order.ID.String(), map[string]any{
		"type":        "order_placed",
		"order_id":    order.ID,
		"customer_id": order.CustomerID,
		"seller_id":   order.SellerID,
		"product_id":  order.ProductID,
		"total_price": order.TotalPrice,
	})

	view := projectOrder(full)
	return &view, nil
}

// ChangeStatus moves the order to the requested status. The vocabulary is
// closed; the transition policy lives in OrderStatus.CanTransitionTo.
func (svc *OrderService) ChangeStatus(ctx context.Context, orderID uuid.UUID, statusStr string) error {
	next, err := models.ParseOrderStatus(statusStr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	current, err := svc.repo.GetOrderStatus(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			return notFound("Order", orderID.String())
		}
		return fmt.Errorf("load order status: %w", err)
	}

	if !current.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move order from %s to %s", ErrValidation, current, next)
	}

	if err := svc.repo.UpdateOrderStatus(ctx, orderID, next); err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			return notFound("Order", orderID.String())
		}
		return fmt.Errorf("update order status: %w", err)
	}

	svc.producer.PublishAsync(ctx, events.TopicOrderEvents, orderID.String(), map[string]any{
		"type":     "order_status_changed",
		"order_id": orderID,
		"from":     current,
		"to":       next,
	})
	return nil
}

func (svc *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*transport.OrderView, error) {
	order, err := svc.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			return nil, notFound("Order", orderID.String())
		}
		return nil, fmt.Errorf("load order: %w", err)
	}
	view := projectOrder(order)
	return &view, nil
}

func (svc *OrderService) OrdersBySeller(ctx context.Context, sellerID uuid.UUID) ([]transport.OrderView, error) {
	exists, err := svc.repo.SellerExists(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("check seller: %w", err)
	}
	if !exists {
		return nil, notFound("Seller", sellerID.String())
	}

	orders, err := svc.repo.ListOrdersBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list seller orders: %w", err)
	}
	return projectOrders(orders), nil
}

func (svc *OrderService) OrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]transport.OrderView, error) {
	exists, err := svc.repo.CustomerExists(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if !exists {
		return nil, notFound("Customer", customerID.String())
	}

	orders, err := svc.repo.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}
	return projectOrders(orders), nil
}

func (svc *OrderService) AllOrders(ctx context.Context) ([]transport.OrderView, error) {
	orders, err := svc.repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return projectOrders(orders), nil
}

func (svc *OrderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if err := svc.repo.DeleteOrder(ctx, orderID); err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			return notFound("Order", orderID.String())
		}
		return fmt.Errorf("delete order: %w", err)
	}

	svc.producer.PublishAsync(ctx, events.TopicOrderEvents, orderID.String(), map[string]any{
		"type":     "order_deleted",
		"order_id": orderID,
	})
	return nil
}

// projectOrder assembles the denormalized view: the frozen snapshot fields
// plus customer, seller and product display data joined live.
func projectOrder(o *models.Order) transport.OrderView {
	view := transport.OrderView{
		ID:          o.ID,
		OrderStatus: string(o.OrderStatus),
		Snapshot: transport.OrderSnapshot{
			TotalPrice: o.TotalPrice,
			OrderDate:  o.OrderDate,
		},
	}
	if o.Customer != nil {
		view.Customer = transport.OrderCustomerView{
			UserID:      o.Customer.UserID,
			Email:       o.Customer.Email,
			FullName:    o.Customer.FullName,
			PhoneNumber: o.Customer.PhoneNumber,
			Address:     o.Customer.Address,
			Zip:         o.Customer.Zip,
			City:        o.Customer.City,
		}
	}
	if o.Seller != nil {
		view.Seller = transport.OrderSellerView{
			UserID:      o.Seller.UserID,
			Email:       o.Seller.Email,
			Name:        o.Seller.Name,
			Description: o.Seller.Description,
		}
	}
	if o.Product != nil {
		view.Product = transport.NewProductView(o.Product)
	}
	return view
}

func projectOrders(orders []models.Order) []transport.OrderView {
	views := make([]transport.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, projectOrder(&orders[i]))
	}
	return views
}
