package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/stitchfit/marketplace/internal/models"
	"github.com/stitchfit/marketplace/internal/repo"
	"github.com/stitchfit/marketplace/internal/transport"
)

// PartyService serves the seller and customer directory.
type PartyService struct {
	repo *repo.GormRepo
}

func NewPartyService(r *repo.GormRepo) *PartyService {
	return &PartyService{repo: r}
}

func (svc *PartyService) GetSeller(ctx context.Context, id uuid.UUID) (*transport.SellerView, error) {
	seller, err := svc.repo.GetSeller(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrSellerNotFound) {
			return nil, notFound("Seller", id.String())
		}
		return nil, fmt.Errorf("load seller: %w", err)
	}
	view := projectSeller(seller)
	return &view, nil
}

func (svc *PartyService) ListSellers(ctx context.Context) ([]transport.SellerView, error) {
	sellers, err := svc.repo.ListSellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	views := make([]transport.SellerView, 0, len(sellers))
	for i := range sellers {
		views = append(views, projectSeller(&sellers[i]))
	}
	return views, nil
}

func (svc *PartyService) UpdateSeller(ctx context.Context, id uuid.UUID, req transport.SellerProfileUpdate) error {
	err := svc.repo.UpdateSeller(ctx, id, req.Name, req.Description)
	if errors.Is(err, repo.ErrSellerNotFound) {
		return notFound("Seller", id.String())
	}
	if err != nil {
		return fmt.Errorf("update seller: %w", err)
	}
	return nil
}

func (svc *PartyService) GetCustomer(ctx context.Context, id uuid.UUID) (*transport.CustomerView, error) {
	customer, err := svc.repo.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrCustomerNotFound) {
			return nil, notFound("Customer", id.String())
		}
		return nil, fmt.Errorf("load customer: %w", err)
	}
	view := projectCustomer(customer)
	return &view, nil
}

func (svc *PartyService) ListCustomers(ctx context.Context) ([]transport.CustomerView, error) {
	customers, err := svc.repo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	views := make([]transport.CustomerView, 0, len(customers))
	for i := range customers {
		views = append(views, projectCustomer(&customers[i]))
	}
	return views, nil
}

func (svc *PartyService) UpdateCustomer(ctx context.Context, id uuid.UUID, req transport.CustomerProfileUpdate) error {
	fields := map[string]any{
		"full_name":    req.FullName,
		"phone_number": req.PhoneNumber,
		"address":      req.Address,
		"zip":          req.Zip,
		"city":         req.City,
	}
	err := svc.repo.UpdateCustomer(ctx, id, fields)
	if errors.Is(err, repo.ErrCustomerNotFound) {
		return notFound("Customer", id.String())
	}
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func projectSeller(s *models.SellerProfile) transport.SellerView {
	products := make([]transport.ProductView, 0, len(s.Products))
	for i := range s.Products {
		products = append(products, transport.NewProductView(&s.Products[i]))
	}
	return transport.SellerView{
		UserID:      s.UserID,
		Email:       s.Email,
		Name:        s.Name,
		Description: s.Description,
		Products:    products,
	}
}

func projectCustomer(c *models.CustomerProfile) transport.CustomerView {
	return transport.CustomerView{
		UserID:      c.UserID,
		Email:       c.Email,
		FullName:    c.FullName,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		Zip:         c.Zip,
		City:        c.City,
	}
}
