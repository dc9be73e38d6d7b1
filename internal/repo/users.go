package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchfit/marketplace/internal/models"
)

// CreateUserWithProfile inserts the user and its role profile in one
// transaction. Email uniqueness is enforced here with FirstOrCreate against
// the unique index, so two concurrent registrations cannot both win: the
// loser's insert trips the index and comes back as ErrEmailTaken.
func (r *GormRepo) CreateUserWithProfile(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("email = ?", u.Email).FirstOrCreate(u)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEmailTaken
		}

		switch u.Role {
		case models.RoleSeller:
			return tx.Create(&models.SellerProfile{
				UserID: u.UserID,
				Email:  u.Email,
			}).Error
		case models.RoleCustomer:
			return tx.Create(&models.CustomerProfile{
				UserID: u.UserID,
				Email:  u.Email,
			}).Error
		}
		return nil
	})
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByUserID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ?", userID).
		Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("user_id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.SellerProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.CustomerProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func errIsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
