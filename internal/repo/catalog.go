package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchfit/marketplace/internal/models"
)

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).
		Preload("Measurements").
		Where("id = ?", id).
		First(&product).Error
	if errIsNotFound(err) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Preload("Measurements").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ReplaceProduct overwrites the scalar fields and swaps the complete
// measurement set: delete-all-then-insert, never a merge. Callers must send
// the full measurement list on every edit.
func (r *GormRepo) ReplaceProduct(ctx context.Context, id uuid.UUID, prod *models.Product) (*models.Product, error) {
	var updated models.Product
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			if errIsNotFound(err) {
				return ErrProductNotFound
			}
			return err
		}

		existing.Name = prod.Name
		existing.Description = prod.Description
		existing.Price = prod.Price
		existing.Material = prod.Material
		existing.Color = prod.Color

		if err := tx.Omit("Measurements").Save(&existing).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", id).Delete(&models.ProductMeasurement{}).Error; err != nil {
			return err
		}
		if len(prod.Measurements) > 0 {
			if err := tx.Create(&prod.Measurements).Error; err != nil {
				return err
			}
		}

		existing.Measurements = prod.Measurements
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *GormRepo) SetProductImageURL(ctx context.Context, id uuid.UUID, url string) error {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		Update("image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductMeasurement{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}
