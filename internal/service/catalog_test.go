package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/stitchfit/marketplace/internal/transport"
)

func TestCreateProductRoundTrip(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	ctx := context.Background()

	seller := seedSeller(t, r, "seller@shop.test")

	req := transport.CreateProductRequest{
		Name:        "Linen Shirt",
		Description: "Summer shirt, relaxed fit",
		Price:       49.50,
		Material:    "Linen",
		Color:       "White",
		Measurements: []transport.MeasurementSpec{
			{MeasurementType: "Collar", Value: 41},
			{MeasurementType: "SleeveLength", Value: 64},
		},
	}
	created, err := catalog.CreateProduct(ctx, seller.UserID, req)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, seller.Email, created.SellerEmail)

	got, err := catalog.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, req.Name, got.Name)
	require.Equal(t, req.Description, got.Description)
	require.Equal(t, req.Price, got.Price)
	require.Equal(t, req.Material, got.Material)
	require.Equal(t, req.Color, got.Color)
	require.ElementsMatch(t, req.Measurements, got.Measurements)
}

func TestCreateProductRequiresSeller(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)

	_, err := catalog.CreateProduct(context.Background(), uuid.New(), transport.CreateProductRequest{
		Name:     "Orphan",
		Price:    5,
		Material: "Cotton",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProductRejectsUnknownMaterial(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)

	seller := seedSeller(t, r, "seller@shop.test")
	_, err := catalog.CreateProduct(context.Background(), seller.UserID, transport.CreateProductRequest{
		Name:     "Mystery Fabric Coat",
		Price:    80,
		Material: "Vibranium",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestEditProductReplacesMeasurements(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	ctx := context.Background()

	seller := seedSeller(t, r, "seller@shop.test")
	created := seedProduct(t, catalog, seller.UserID, 120.00) // one measurement

	edit := transport.EditProductRequest{
		Name:        "Tailored Jacket",
		Description: "Wool jacket cut to measure",
		Price:       120.00,
		Material:    "Wool",
		Color:       "Navy",
		Measurements: []transport.MeasurementSpec{
			{MeasurementType: "Chest", Value: 100},
			{MeasurementType: "Waist", Value: 86},
			{MeasurementType: "SleeveLength", Value: 65},
		},
	}
	updated, err := catalog.EditProduct(ctx, created.ID, edit)
	require.NoError(t, err)
	require.Len(t, updated.Measurements, 3)

	got, err := catalog.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Measurements, 3)
	require.ElementsMatch(t, edit.Measurements, got.Measurements)

	// shrinking the list deletes, never merges
	edit.Measurements = edit.Measurements[:1]
	_, err = catalog.EditProduct(ctx, created.ID, edit)
	require.NoError(t, err)

	got, err = catalog.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Measurements, 1)
}

func TestEditMissingProduct(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)

	_, err := catalog.EditProduct(context.Background(), uuid.New(), transport.EditProductRequest{
		Name:     "Ghost",
		Price:    1,
		Material: "Silk",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProductRemovesMeasurements(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	ctx := context.Background()

	seller := seedSeller(t, r, "seller@shop.test")
	created := seedProduct(t, catalog, seller.UserID, 75.00)

	require.NoError(t, catalog.DeleteProduct(ctx, created.ID))

	_, err := catalog.GetProduct(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	err = catalog.DeleteProduct(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListProducts(t *testing.T) {
	r := newTestRepo(t)
	catalog := NewCatalogService(r, nil, nil)
	ctx := context.Background()

	views, err := catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Empty(t, views)

	seller := seedSeller(t, r, "seller@shop.test")
	seedProduct(t, catalog, seller.UserID, 10)
	seedProduct(t, catalog, seller.UserID, 20)

	views, err = catalog.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
}
