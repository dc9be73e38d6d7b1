package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchfit/marketplace/internal/models"
)

// CreateOrder validates the customer/seller/product tuple and inserts the
// order inside a single transaction, so none of the three can disappear
// between the existence check and the insert. TotalPrice is snapshotted from
// the product's current price at this moment; later catalog edits never
// touch it.
func (r *GormRepo) CreateOrder(ctx context.Context, customerID, sellerID, productID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.CustomerProfile
		if err := tx.Where("user_id = ?", customerID).First(&customer).Error; err != nil {
			if errIsNotFound(err) {
				return ErrCustomerNotFound
			}
			return err
		}

		var seller models.SellerProfile
		if err := tx.Where("user_id = ?", sellerID).First(&seller).Error; err != nil {
			if errIsNotFound(err) {
				return ErrSellerNotFound
			}
			return err
		}

		var product models.Product
		if err := tx.Where("id = ?", productID).First(&product).Error; err != nil {
			if errIsNotFound(err) {
				return ErrProductNotFound
			}
			return err
		}

		order = models.Order{
			ID:          uuid.New(),
			CustomerID:  customer.UserID,
			SellerID:    seller.UserID,
			ProductID:   product.ID,
			TotalPrice:  product.Price,
			OrderDate:   time.Now().UTC(),
			OrderStatus: models.StatusPending,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Customer").
		Preload("Seller").
		Preload("Product.Measurements").
		Where("id = ?", id).
		First(&order).Error
	if errIsNotFound(err) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrdersBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Customer").
		Preload("Seller").
		Preload("Product.Measurements").
		Where("seller_id = ?", sellerID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Customer").
		Preload("Seller").
		Preload("Product.Measurements").
		Where("customer_id = ?", customerID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Customer").
		Preload("Seller").
		Preload("Product.Measurements").
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrderStatus(ctx context.Context, id uuid.UUID) (models.OrderStatus, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Select("order_status").Where("id = ?", id).First(&order).Error
	if errIsNotFound(err) {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", err
	}
	return order.OrderStatus, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("order_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *GormRepo) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
