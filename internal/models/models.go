package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticable principal. The numeric ID is storage-only;
// every cross-entity reference uses the stable UserID UUID.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type SellerProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email       string    `gorm:"not null" json:"email"`
	Name        string    `json:"name"`
	Description string    `json:"description"`

	Products []Product `gorm:"foreignKey:SellerID;references:UserID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	Orders   []Order   `gorm:"foreignKey:SellerID;references:UserID" json:"orders,omitempty"`
}

type CustomerProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email       string    `gorm:"not null" json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	Zip         string    `json:"zip"`
	City        string    `json:"city"`
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID    uuid.UUID `gorm:"type:uuid;index;not null" json:"seller_id"`
	SellerEmail string    `gorm:"not null" json:"seller_email"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    string    `json:"image_url"`
	Material    Material  `gorm:"not null" json:"material"`
	Color       string    `json:"color"`

	Measurements []ProductMeasurement `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"measurements"`
}

// ProductMeasurement is a measurement the seller asks the customer to
// supply when ordering, e.g. "Chest" or "SleeveLength". Value holds the
// seller's template value, not a customer's.
type ProductMeasurement struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID       uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	MeasurementType string    `gorm:"not null" json:"measurement_type"`
	Value           float64   `gorm:"not null" json:"value"`
}

// Order references customer, seller and product by UUID. TotalPrice and
// OrderDate are frozen at creation; only OrderStatus mutates afterwards.
type Order struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID  uuid.UUID   `gorm:"type:uuid;index;not null" json:"customer_id"`
	SellerID    uuid.UUID   `gorm:"type:uuid;index;not null" json:"seller_id"`
	ProductID   uuid.UUID   `gorm:"type:uuid;index;not null" json:"product_id"`
	TotalPrice  float64     `gorm:"not null" json:"total_price"`
	OrderDate   time.Time   `gorm:"not null" json:"order_date"`
	OrderStatus OrderStatus `gorm:"not null" json:"order_status"`

	Customer *CustomerProfile `gorm:"foreignKey:CustomerID;references:UserID" json:"-"`
	Seller   *SellerProfile   `gorm:"foreignKey:SellerID;references:UserID" json:"-"`
	Product  *Product         `gorm:"foreignKey:ProductID;references:ID" json:"-"`
}

// PasswordReset is consumed on successful reset or on expiry detection.
type PasswordReset struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Email       string    `gorm:"index;not null" json:"email"`
	Code        string    `gorm:"not null" json:"-"`
	NewPassword string    `json:"-"`
	DateExpires time.Time `gorm:"not null" json:"date_expires"`
	IsValid     bool      `gorm:"default:true" json:"is_valid"`
}
