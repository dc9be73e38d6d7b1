package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/stitchfit/marketplace/internal/models"
)

func TestSignAndParse(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	token, err := Sign(secret, userID, "seller@shop.test", models.RoleSeller)
	require.NoError(t, err)

	claims, err := ClaimsFromToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, userID.String(), claims.Subject)
	require.Equal(t, "seller@shop.test", claims.Email)
	require.Equal(t, "Seller", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Sign([]byte("secret-a"), uuid.New(), "x@shop.test", models.RoleCustomer)
	require.NoError(t, err)

	_, err = ClaimsFromToken(token, []byte("secret-b"))
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ClaimsFromToken("not.a.token", []byte("secret"))
	require.Error(t, err)
}
