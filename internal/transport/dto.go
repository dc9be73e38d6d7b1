package transport

import (
	"time"

	"github.com/google/uuid"

	"github.com/stitchfit/marketplace/internal/models"
)

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=12"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=12"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=10"`
}

// MeasurementSpec is one entry the seller defines on a product; Value is the
// seller's template measurement in centimeters.
type MeasurementSpec struct {
	MeasurementType string  `json:"measurement_type" validate:"required,min=1,max=50,alphanum"`
	Value           float64 `json:"value" validate:"required,gt=0,lte=1000"`
}

type CreateProductRequest struct {
	Name         string            `json:"name" validate:"required,min=1,max=100"`
	Description  string            `json:"description" validate:"max=1000"`
	Price        float64           `json:"price" validate:"required,gt=0"`
	Material     string            `json:"material" validate:"required,material"`
	Color        string            `json:"color" validate:"max=50"`
	Measurements []MeasurementSpec `json:"measurements" validate:"dive"`
}

type EditProductRequest struct {
	Name         string            `json:"name" validate:"required,min=1,max=100"`
	Description  string            `json:"description" validate:"max=1000"`
	Price        float64           `json:"price" validate:"required,gt=0"`
	Material     string            `json:"material" validate:"required,material"`
	Color        string            `json:"color" validate:"max=50"`
	Measurements []MeasurementSpec `json:"measurements" validate:"dive"`
}

type ProductView struct {
	ID           uuid.UUID         `json:"id"`
	SellerID     uuid.UUID         `json:"seller_id"`
	SellerEmail  string            `json:"seller_email"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Price        float64           `json:"price"`
	ImageURL     string            `json:"image_url"`
	Material     string            `json:"material"`
	Color        string            `json:"color"`
	Measurements []MeasurementSpec `json:"measurements"`
}

type PlaceOrderRequest struct {
	CustomerID uuid.UUID `json:"customer_id" validate:"required"`
	SellerID   uuid.UUID `json:"seller_id" validate:"required"`
	ProductID  uuid.UUID `json:"product_id" validate:"required"`
}

// OrderSnapshot holds the fields frozen when the order was placed. Everything
// else in OrderView is joined live at read time.
type OrderSnapshot struct {
	TotalPrice float64   `json:"total_price"`
	OrderDate  time.Time `json:"order_date"`
}

type OrderCustomerView struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	Zip         string    `json:"zip"`
	City        string    `json:"city"`
}

type OrderSellerView struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type OrderView struct {
	ID          uuid.UUID         `json:"id"`
	OrderStatus string            `json:"order_status"`
	Snapshot    OrderSnapshot     `json:"snapshot"`
	Customer    OrderCustomerView `json:"customer"`
	Seller      OrderSellerView   `json:"seller"`
	Product     ProductView       `json:"product"`
}

type SellerView struct {
	UserID      uuid.UUID     `json:"user_id"`
	Email       string        `json:"email"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Products    []ProductView `json:"products"`
}

type SellerProfileUpdate struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

type CustomerView struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	Zip         string    `json:"zip"`
	City        string    `json:"city"`
}

type CustomerProfileUpdate struct {
	FullName    string `json:"full_name" validate:"required,min=1,max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=30"`
	Address     string `json:"address" validate:"max=200"`
	Zip         string `json:"zip" validate:"max=12"`
	City        string `json:"city" validate:"max=100"`
}

type ContactSellerRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	CustomerEmail string    `json:"customer_email" validate:"required,email"`
	Message       string    `json:"message" validate:"required,min=1,max=2000"`
}

type SearchResponse struct {
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	Size     int           `json:"size"`
	Products []ProductView `json:"products"`
}

func NewMeasurementSpecs(ms []models.ProductMeasurement) []MeasurementSpec {
	specs := make([]MeasurementSpec, 0, len(ms))
	for _, m := range ms {
		specs = append(specs, MeasurementSpec{
			MeasurementType: m.MeasurementType,
			Value:           m.Value,
		})
	}
	return specs
}

func NewProductView(p *models.Product) ProductView {
	return ProductView{
		ID:           p.ID,
		SellerID:     p.SellerID,
		SellerEmail:  p.SellerEmail,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		Material:     string(p.Material),
		Color:        p.Color,
		Measurements: NewMeasurementSpecs(p.Measurements),
	}
}
