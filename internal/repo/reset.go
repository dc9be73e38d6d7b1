package repo

import (
	"context"

	"github.com/stitchfit/marketplace/internal/models"
)

func (r *GormRepo) CreatePasswordReset(ctx context.Context, reset *models.PasswordReset) error {
	return r.DB.WithContext(ctx).Create(reset).Error
}

func (r *GormRepo) GetPasswordReset(ctx context.Context, email, code string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.DB.WithContext(ctx).
		Where("email = ? AND code = ? AND is_valid = ?", email, code, true).
		First(&reset).Error
	if errIsNotFound(err) {
		return nil, ErrResetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *GormRepo) DeletePasswordReset(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.PasswordReset{}, id).Error
}
