package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/stitchfit/marketplace/internal/models"
	"github.com/stitchfit/marketplace/internal/transport"
)

func TestPlaceOrderSnapshotsPrice(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	orders := NewOrderService(r, nil)
	ctx := context.Background()

	seller := seedSeller(t, r, "seller@shop.test")
	customer := seedCustomer(t, r, "customer@shop.test")
	product := seedProduct(t, catalog, seller.UserID, 10.00)

	view, err := orders.PlaceOrder(ctx, transport.PlaceOrderRequest{
		CustomerID: customer.UserID,
		SellerID:   seller.UserID,
		ProductID:  product.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 10.00, view.Snapshot.TotalPrice)
	require.Equal(t, string(models.StatusPending), view.OrderStatus)
	require.False(t, view.Snapshot.OrderDate.IsZero())

	// raising the catalog price must not touch the placed order
	_, err = catalog.EditProduct(ctx, product.ID, transport.EditProductRequest{
		Name:        product.Name,
		Description: product.Description,
		Price:       25.00,
		Material:    product.Material,
		Color:       product.Color,
		Measurements: []transport.MeasurementSpec{
			{MeasurementType: "Chest", Value: 98},
		},
	})
	require.NoError(t, err)

	reloaded, err := orders.GetOrder(ctx, view.ID)
	require.NoError(t, err)
	require.Equal(t, 10.00, reloaded.Snapshot.TotalPrice)
	require.Equal(t, 25.00, reloaded.Product.Price)
}

func TestPlaceOrderExistenceGate(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	orders := NewOrderService(r, nil)
	ctx := context.Background()

	seller := seedSeller(t, r, "seller@shop.test")
	customer := seedCustomer(t, r, "customer@shop.test")
	product := seedProduct(t, catalog, seller.UserID, 42.00)

	cases := []struct {
		name   string
		req    transport.PlaceOrderRequest
		entity string
	}{
		{"missing customer", transport.PlaceOrderRequest{CustomerID: uuid.New(), SellerID: seller.UserID, ProductID: product.ID}, "Customer"},
		{"missing seller", transport.PlaceOrderRequest{CustomerID: customer.UserID, SellerID: uuid.New(), ProductID: product.ID}, "Seller"},
		{"missing product", transport.PlaceOrderRequest{CustomerID: customer.UserID, SellerID: seller.UserID, ProductID: uuid.New()}, "Product"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := orders.PlaceOrder(ctx, tc.req)
			require.ErrorIs(t, err, ErrNotFound)

			var nf *NotFoundError
			require.ErrorAs(t, err, &nf)
			require.Equal(t, tc.entity, nf.Entity)
		})
	}

	// none of the failed attempts may have left a row behind
	all, err := orders.AllOrders(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestChangeStatusRepeatable(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	orders := NewOrderService(r, nil)
	ctx := context.Background()

	seller := seedSeller(t, r, "seller@shop.test")
	customer := seedCustomer(t, r, "customer@shop.test")
	product := seedProduct(t, catalog, seller.UserID, 15.00)

	view, err := orders.PlaceOrder(ctx, transport.PlaceOrderRequest{
		CustomerID: customer.UserID,
		SellerID:   seller.UserID,
		ProductID:  product.ID,
	})
	require.NoError(t, err)

	require.NoError(t, orders.ChangeStatus(ctx, view.ID, "Processing"))
	require.NoError(t, orders.ChangeStatus(ctx, view.ID, "Processing"))

	reloaded, err := orders.GetOrder(ctx, view.ID)
	require.NoError(t, err)
	require.Equal(t, "Processing", reloaded.OrderStatus)

	// moving backwards is allowed too, corrections are a seller workflow
	require.NoError(t, orders.ChangeStatus(ctx, view.ID, "Pending"))
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	orders := NewOrderService(r, nil)
	ctx := context.Background()

	seller := seedSeller(t, r, "seller@shop.test")
	customer := seedCustomer(t, r, "customer@shop.test")
	product := seedProduct(t, catalog, seller.UserID, 15.00)

	view, err := orders.PlaceOrder(ctx, transport.PlaceOrderRequest{
		CustomerID: customer.UserID,
		SellerID:   seller.UserID,
		ProductID:  product.ID,
	})
	require.NoError(t, err)

	err = orders.ChangeStatus(ctx, view.ID, "Teleported")
	require.ErrorIs(t, err, ErrValidation)

	reloaded, err := orders.GetOrder(ctx, view.ID)
	require.NoError(t, err)
	require.Equal(t, "Pending", reloaded.OrderStatus)
}

func TestOrderViewJoinsLiveData(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	orders := NewOrderService(r, nil)
	party := NewPartyService(r)
	ctx := context.Background()

	seller := seedSeller(t, r, "seller@shop.test")
	customer := seedCustomer(t, r, "customer@shop.test")
	product := seedProduct(t, catalog, seller.UserID, 30.00)

	require.NoError(t, party.UpdateCustomer(ctx, customer.UserID, transport.CustomerProfileUpdate{
		FullName:    "Alex Martin",
		PhoneNumber: "555-0134",
		Address:     "12 Mill Lane",
		Zip:         "60601",
		City:        "Chicago",
	}))
	require.NoError(t, party.UpdateSeller(ctx, seller.UserID, transport.SellerProfileUpdate{
		Name:        "Mill Lane Tailors",
		Description: "Bespoke wool tailoring since 2019",
	}))

	view, err := orders.PlaceOrder(ctx, transport.PlaceOrderRequest{
		CustomerID: customer.UserID,
		SellerID:   seller.UserID,
		ProductID:  product.ID,
	})
	require.NoError(t, err)

	require.Equal(t, "customer@shop.test", view.Customer.Email)
	require.Equal(t, "Alex Martin", view.Customer.FullName)
	require.Equal(t, "Chicago", view.Customer.City)
	require.Equal(t, "seller@shop.test", view.Seller.Email)
	require.Equal(t, "Mill Lane Tailors", view.Seller.Name)
	require.Equal(t, "Bespoke wool tailoring since 2019", view.Seller.Description)
	require.Equal(t, "Tailored Jacket", view.Product.Name)
	require.Len(t, view.Product.Measurements, 1)
	require.Equal(t, "Chest", view.Product.Measurements[0].MeasurementType)
}

func TestOrdersBySeller(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	orders := NewOrderService(r, nil)
	ctx := context.Background()

	seller := seedSeller(t, r, "seller@shop.test")
	idle := seedSeller(t, r, "idle@shop.test")
	customer := seedCustomer(t, r, "customer@shop.test")
	product := seedProduct(t, catalog, seller.UserID, 55.00)

	_, err := orders.PlaceOrder(ctx, transport.PlaceOrderRequest{
		CustomerID: customer.UserID,
		SellerID:   seller.UserID,
		ProductID:  product.ID,
	})
	require.NoError(t, err)

	views, err := orders.OrdersBySeller(ctx, seller.UserID)
	require.NoError(t, err)
	require.Len(t, views, 1)

	empty, err := orders.OrdersBySeller(ctx, idle.UserID)
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = orders.OrdersBySeller(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOrdersByCustomer(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	orders := NewOrderService(r, nil)
	ctx := context.Background()

	seller := seedSeller(t, r, "seller@shop.test")
	customer := seedCustomer(t, r, "customer@shop.test")
	product := seedProduct(t, catalog, seller.UserID, 55.00)

	_, err := orders.PlaceOrder(ctx, transport.PlaceOrderRequest{
		CustomerID: customer.UserID,
		SellerID:   seller.UserID,
		ProductID:  product.ID,
	})
	require.NoError(t, err)

	views, err := orders.OrdersByCustomer(ctx, customer.UserID)
	require.NoError(t, err)
	require.Len(t, views, 1)

	_, err = orders.OrdersByCustomer(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrder(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	orders := NewOrderService(r, nil)
	ctx := context.Background()

	seller := seedSeller(t, r, "seller@shop.test")
	customer := seedCustomer(t, r, "customer@shop.test")
	product := seedProduct(t, catalog, seller.UserID, 19.99)

	view, err := orders.PlaceOrder(ctx, transport.PlaceOrderRequest{
		CustomerID: customer.UserID,
		SellerID:   seller.UserID,
		ProductID:  product.ID,
	})
	require.NoError(t, err)

	require.NoError(t, orders.DeleteOrder(ctx, view.ID))

	_, err = orders.GetOrder(ctx, view.ID)
	require.ErrorIs(t, err, ErrNotFound)

	err = orders.DeleteOrder(ctx, view.ID)
	require.True(t, errors.Is(err, ErrNotFound))
}
