package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stitchfit/marketplace/internal/db"
	"github.com/stitchfit/marketplace/internal/models"
)

func newUsersTestRepo(t *testing.T) *GormRepo {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gdb))
	return New(gdb)
}

func TestCreateUserWithProfileRejectsTakenEmail(t *testing.T) {
	r := newUsersTestRepo(t)
	ctx := context.Background()

	first := &models.User{
		UserID:       uuid.New(),
		Email:        "taken@shop.test",
		PasswordHash: "hash-a",
		Role:         models.RoleCustomer,
	}
	require.NoError(t, r.CreateUserWithProfile(ctx, first))

	second := &models.User{
		UserID:       uuid.New(),
		Email:        "taken@shop.test",
		PasswordHash: "hash-b",
		Role:         models.RoleSeller,
	}
	require.ErrorIs(t, r.CreateUserWithProfile(ctx, second), ErrEmailTaken)
}

func TestConcurrentRegistrationLoserGetsEmailTaken(t *testing.T) {
	r := newUsersTestRepo(t)
	ctx := context.Background()

	// A rival registration lands between the uniqueness lookup and the
	// insert, so the insert itself trips the unique index on email.
	var raced bool
	err := r.DB.Callback().Create().Before("gorm:create").Register("rival_registration", func(tx *gorm.DB) {
		if raced {
			return
		}
		if _, ok := tx.Statement.Dest.(*models.User); !ok {
			return
		}
		raced = true
		rival := &models.User{
			UserID:       uuid.New(),
			Email:        "raced@shop.test",
			PasswordHash: "hash-a",
			Role:         models.RoleCustomer,
		}
		if err := tx.Session(&gorm.Session{NewDB: true}).Create(rival).Error; err != nil {
			t.Errorf("rival insert: %v", err)
		}
	})
	require.NoError(t, err)

	loser := &models.User{
		UserID:       uuid.New(),
		Email:        "raced@shop.test",
		PasswordHash: "hash-b",
		Role:         models.RoleCustomer,
	}
	require.ErrorIs(t, r.CreateUserWithProfile(ctx, loser), ErrEmailTaken)
}
