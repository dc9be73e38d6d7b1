package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stitchfit/marketplace/internal/events"
	"github.com/stitchfit/marketplace/internal/logging"
	"github.com/stitchfit/marketplace/internal/models"
	"github.com/stitchfit/marketplace/internal/repo"
	"github.com/stitchfit/marketplace/internal/search"
	"github.com/stitchfit/marketplace/internal/transport"
	"github.com/stitchfit/marketplace/internal/util"
)

type CatalogService struct {
	repo     *repo.GormRepo
	index    *search.Index
	producer *events.Producer
}

func NewCatalogService(r *repo.GormRepo, ix *search.Index, p *events.Producer) *CatalogService {
	return &CatalogService{repo: r, index: ix, producer: p}
}

// CreateProduct attaches a new product to the seller. The product and every
// measurement spec get fresh UUIDs; the seller email is denormalized onto
// the product row.
func (svc *CatalogService) CreateProduct(ctx context.Context, sellerID uuid.UUID, req transport.CreateProductRequest) (*transport.ProductView, error) {
	seller, err := svc.repo.GetSeller(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repo.ErrSellerNotFound) {
			return nil, notFound("Seller", sellerID.String())
		}
		return nil, fmt.Errorf("load seller: %w", err)
	}

	material, err := models.ParseMaterial(req.Material)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	productID := uuid.New()
	prod := &models.Product{
		ID:           productID,
		SellerID:     seller.UserID,
		SellerEmail:  seller.Email,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Material:     material,
		Color:        req.Color,
		Measurements: buildMeasurements(productID, req.Measurements),
	}

	created, err := svc.repo.CreateProduct(ctx, prod)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	svc.indexProduct(ctx, created)
	svc.producer.PublishAsync(ctx, events.TopicProductEvents, created.ID.String(), map[string]any{
		"type":       "product_created",
		"product_id": created.ID,
		"seller_id":  created.SellerID,
		"name":       created.Name,
	})

	view := transport.NewProductView(created)
	return &view, nil
}

// EditProduct overwrites the product's scalar fields and replaces the full
// measurement set. Sending fewer measurements than before deletes the rest.
func (svc *CatalogService) EditProduct(ctx context.Context, productID uuid.UUID, req transport.EditProductRequest) (*transport.ProductView, error) {
	material, err := models.ParseMaterial(req.Material)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	prod := &models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Material:     material,
		Color:        req.Color,
		Measurements: buildMeasurements(productID, req.Measurements),
	}

	updated, err := svc.repo.ReplaceProduct(ctx, productID, prod)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return nil, notFound("Product", productID.String())
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	svc.indexProduct(ctx, updated)
	svc.producer.PublishAsync(ctx, events.TopicProductEvents, updated.ID.String(), map[string]any{
		"type":       "product_updated",
		"product_id": updated.ID,
		"name":       updated.Name,
	})

	view := transport.NewProductView(updated)
	return &view, nil
}

func (svc *CatalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*transport.ProductView, error) {
	prod, err := svc.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return nil, notFound("Product", productID.String())
		}
		return nil, fmt.Errorf("load product: %w", err)
	}
	view := transport.NewProductView(prod)
	return &view, nil
}

func (svc *CatalogService) ListProducts(ctx context.Context) ([]transport.ProductView, error) {
	prods, err := svc.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	views := make([]transport.ProductView, 0, len(prods))
	for i := range prods {
		views = append(views, transport.NewProductView(&prods[i]))
	}
	return views, nil
}

func (svc *CatalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if err := svc.repo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return notFound("Product", productID.String())
		}
		return fmt.Errorf("delete product: %w", err)
	}

	if err := svc.index.DeleteProduct(ctx, productID); err != nil {
		logging.FromContext(ctx).Warn("search_delete_error", "product_id", productID, "error", err)
	}
	svc.producer.PublishAsync(ctx, events.TopicProductEvents, productID.String(), map[string]any{
		"type":       "product_deleted",
		"product_id": productID,
	})
	return nil
}

func (svc *CatalogService) Search(ctx context.Context, query string, page, size int) (*transport.SearchResponse, error) {
	from, limit := util.Calculate(page, size)

	total, prods, err := svc.index.Search(ctx, query, from, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternal, err)
	}

	views := make([]transport.ProductView, 0, len(prods))
	for i := range prods {
		views = append(views, transport.NewProductView(&prods[i]))
	}
	return &transport.SearchResponse{
		Total:    int(total),
		Page:     page,
		Size:     limit,
		Products: views,
	}, nil
}

// indexProduct keeps the search index best-effort; a failed index write
// never fails the request.
func (svc *CatalogService) indexProduct(ctx context.Context, prod *models.Product) {
	if err := svc.index.IndexProduct(ctx, prod); err != nil {
		logging.FromContext(ctx).Warn("search_index_error", "product_id", prod.ID, "error", err)
	}
}

func buildMeasurements(productID uuid.UUID, specs []transport.MeasurementSpec) []models.ProductMeasurement {
	ms := make([]models.ProductMeasurement, 0, len(specs))
	for _, s := range specs {
		ms = append(ms, models.ProductMeasurement{
			ID:              uuid.New(),
			ProductID:       productID,
			MeasurementType: s.MeasurementType,
			Value:           s.Value,
		})
	}
	return ms
}
