package httpserver

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stitchfit/marketplace/internal/db"
	"github.com/stitchfit/marketplace/internal/hash"
	"github.com/stitchfit/marketplace/internal/models"
	"github.com/stitchfit/marketplace/internal/repo"
	"github.com/stitchfit/marketplace/internal/service"
	"github.com/stitchfit/marketplace/internal/transport"
)

type testEnv struct {
	echo    *echo.Echo
	repo    *repo.GormRepo
	orders  *service.OrderService
	catalog *service.CatalogService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))

	r := repo.New(gdb)
	e := echo.New()
	e.Validator = NewValidator()

	return &testEnv{
		echo:    e,
		repo:    r,
		orders:  service.NewOrderService(r, nil),
		catalog: service.NewCatalogService(r, nil, nil),
	}
}

func (env *testEnv) seedSeller(t *testing.T, email string) *models.SellerProfile {
	t.Helper()
	hashed, err := hash.HashPassword("Passw0rdA")
	require.NoError(t, err)
	user := &models.User{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleSeller,
	}
	require.NoError(t, env.repo.CreateUserWithProfile(context.Background(), user))
	seller, err := env.repo.GetSeller(context.Background(), user.UserID)
	require.NoError(t, err)
	return seller
}

func (env *testEnv) seedCustomer(t *testing.T, email string) *models.CustomerProfile {
	t.Helper()
	hashed, err := hash.HashPassword("Passw0rdA")
	require.NoError(t, err)
	user := &models.User{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleCustomer,
	}
	require.NoError(t, env.repo.CreateUserWithProfile(context.Background(), user))
	customer, err := env.repo.GetCustomer(context.Background(), user.UserID)
	require.NoError(t, err)
	return customer
}

func (env *testEnv) seedProduct(t *testing.T, sellerID uuid.UUID, price float64) *transport.ProductView {
	t.Helper()
	view, err := env.catalog.CreateProduct(context.Background(), sellerID, transport.CreateProductRequest{
		Name:        "Denim Jacket",
		Description: "Classic cut",
		Price:       price,
		Material:    "Denim",
		Color:       "Blue",
		Measurements: []transport.MeasurementSpec{
			{MeasurementType: "Chest", Value: 102},
		},
	})
	require.NoError(t, err)
	return view
}

func requireHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
	require.Equal(t, message, he.Message)
}
