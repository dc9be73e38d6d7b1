package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stitchfit/marketplace/internal/db"
	"github.com/stitchfit/marketplace/internal/hash"
	"github.com/stitchfit/marketplace/internal/models"
	"github.com/stitchfit/marketplace/internal/repo"
	"github.com/stitchfit/marketplace/internal/transport"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))
	return repo.New(gdb)
}

type fakeMailer struct {
	sent []sentMail
	fail bool
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.fail {
		return fmt.Errorf("smtp unreachable")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func seedSeller(t *testing.T, r *repo.GormRepo, email string) *models.SellerProfile {
	t.Helper()
	hashed, err := hash.HashPassword("Passw0rdA")
	require.NoError(t, err)
	user := &models.User{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleSeller,
	}
	require.NoError(t, r.CreateUserWithProfile(context.Background(), user))
	seller, err := r.GetSeller(context.Background(), user.UserID)
	require.NoError(t, err)
	return seller
}

func seedCustomer(t *testing.T, r *repo.GormRepo, email string) *models.CustomerProfile {
	t.Helper()
	hashed, err := hash.HashPassword("Passw0rdA")
	require.NoError(t, err)
	user := &models.User{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleCustomer,
	}
	require.NoError(t, r.CreateUserWithProfile(context.Background(), user))
	customer, err := r.GetCustomer(context.Background(), user.UserID)
	require.NoError(t, err)
	return customer
}

func seedProduct(t *testing.T, svc *CatalogService, sellerID uuid.UUID, price float64) *transport.ProductView {
	t.Helper()
	view, err := svc.CreateProduct(context.Background(), sellerID, transport.CreateProductRequest{
		Name:        "Tailored Jacket",
		Description: "Wool jacket cut to measure",
		Price:       price,
		Material:    "Wool",
		Color:       "Navy",
		Measurements: []transport.MeasurementSpec{
			{MeasurementType: "Chest", Value: 98},
		},
	})
	require.NoError(t, err)
	return view
}
