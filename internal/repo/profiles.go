package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/stitchfit/marketplace/internal/models"
)

func (r *GormRepo) GetSeller(ctx context.Context, id uuid.UUID) (*models.SellerProfile, error) {
	var seller models.SellerProfile
	err := r.DB.WithContext(ctx).
		Preload("Products").
		Where("user_id = ?", id).
		First(&seller).Error
	if errIsNotFound(err) {
		return nil, ErrSellerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *GormRepo) SellerExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.SellerProfile{}).
		Where("user_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *GormRepo) GetSellerByEmail(ctx context.Context, email string) (*models.SellerProfile, error) {
	var seller models.SellerProfile
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&seller).Error
	if errIsNotFound(err) {
		return nil, ErrSellerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *GormRepo) ListSellers(ctx context.Context) ([]models.SellerProfile, error) {
	var sellers []models.SellerProfile
	if err := r.DB.WithContext(ctx).Preload("Products").Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

func (r *GormRepo) UpdateSeller(ctx context.Context, id uuid.UUID, name, description string) error {
	res := r.DB.WithContext(ctx).Model(&models.SellerProfile{}).
		Where("user_id = ?", id).
		Updates(map[string]any{"name": name, "description": description})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSellerNotFound
	}
	return nil
}

func (r *GormRepo) GetCustomer(ctx context.Context, id uuid.UUID) (*models.CustomerProfile, error) {
	var customer models.CustomerProfile
	err := r.DB.WithContext(ctx).Where("user_id = ?", id).First(&customer).Error
	if errIsNotFound(err) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormRepo) CustomerExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.CustomerProfile{}).
		Where("user_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *GormRepo) GetCustomerByEmail(ctx context.Context, email string) (*models.CustomerProfile, error) {
	var customer models.CustomerProfile
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&customer).Error
	if errIsNotFound(err) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormRepo) ListCustomers(ctx context.Context) ([]models.CustomerProfile, error) {
	var customers []models.CustomerProfile
	if err := r.DB.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *GormRepo) UpdateCustomer(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&models.CustomerProfile{}).
		Where("user_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
