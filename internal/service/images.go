package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/stitchfit/marketplace/internal/blob"
	"github.com/stitchfit/marketplace/internal/repo"
)

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ImageService manages the single image attached to a product.
type ImageService struct {
	repo  *repo.GormRepo
	store *blob.Store
}

func NewImageService(r *repo.GormRepo, s *blob.Store) *ImageService {
	return &ImageService{repo: r, store: s}
}

// Upload stores the image and records its URL. A product can hold only one
// image; uploading over an existing one is a conflict.
func (svc *ImageService) Upload(ctx context.Context, productID uuid.UUID, filename string, r io.Reader) (string, error) {
	contentType, err := imageContentType(filename)
	if err != nil {
		return "", err
	}

	product, err := svc.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return "", notFound("Product", productID.String())
		}
		return "", fmt.Errorf("load product: %w", err)
	}
	if product.ImageURL != "" {
		return "", fmt.Errorf("%w: image already exists", ErrConflict)
	}

	url, err := svc.storeAndRecord(ctx, productID, filename, contentType, r)
	if err != nil {
		return "", err
	}
	return url, nil
}

// Replace swaps the product image: the old blob is removed first, then the
// new one is stored under a fresh key.
func (svc *ImageService) Replace(ctx context.Context, productID uuid.UUID, filename string, r io.Reader) (string, error) {
	contentType, err := imageContentType(filename)
	if err != nil {
		return "", err
	}

	product, err := svc.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return "", notFound("Product", productID.String())
		}
		return "", fmt.Errorf("load product: %w", err)
	}

	if product.ImageURL != "" {
		if _, err := svc.store.Delete(ctx, svc.store.KeyFromURL(product.ImageURL)); err != nil {
			return "", fmt.Errorf("%w: %v", ErrExternal, err)
		}
	}

	url, err := svc.storeAndRecord(ctx, productID, filename, contentType, r)
	if err != nil {
		return "", err
	}
	return url, nil
}

func (svc *ImageService) GetURL(ctx context.Context, productID uuid.UUID) (string, error) {
	product, err := svc.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return "", notFound("Product", productID.String())
		}
		return "", fmt.Errorf("load product: %w", err)
	}
	if product.ImageURL == "" {
		return "", notFound("Image", productID.String())
	}
	return product.ImageURL, nil
}

// Delete removes the blob and clears the URL. Deleting a blob that is
// already gone is not an error; the URL is cleared either way.
func (svc *ImageService) Delete(ctx context.Context, productID uuid.UUID) (bool, error) {
	product, err := svc.repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return false, notFound("Product", productID.String())
		}
		return false, fmt.Errorf("load product: %w", err)
	}
	if product.ImageURL == "" {
		return false, notFound("Image", productID.String())
	}

	removed, err := svc.store.Delete(ctx, svc.store.KeyFromURL(product.ImageURL))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrExternal, err)
	}
	if err := svc.repo.SetProductImageURL(ctx, productID, ""); err != nil {
		return removed, fmt.Errorf("clear image url: %w", err)
	}
	return removed, nil
}

func (svc *ImageService) storeAndRecord(ctx context.Context, productID uuid.UUID, filename, contentType string, r io.Reader) (string, error) {
	key := productID.String() + strings.ToLower(filepath.Ext(filename))
	url, err := svc.store.Store(ctx, key, contentType, r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExternal, err)
	}
	if err := svc.repo.SetProductImageURL(ctx, productID, url); err != nil {
		return "", fmt.Errorf("save image url: %w", err)
	}
	return url, nil
}

func imageContentType(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct, ok := imageContentTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", ErrValidation, ext)
	}
	return ct, nil
}
