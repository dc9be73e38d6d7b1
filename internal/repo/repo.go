package repo

import (
	"errors"

	"gorm.io/gorm"
)

// Storage-level sentinels. Services wrap these into their own taxonomy.
var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrResetNotFound    = errors.New("password reset not found")
)

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
