package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses() {
		parsed, err := ParseOrderStatus(string(s))
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	for _, bad := range []string{"", "pending", "Unknown", "PENDING"} {
		_, err := ParseOrderStatus(bad)
		require.Error(t, err, bad)
	}
}

func TestCanTransitionTo(t *testing.T) {
	// every pair of known statuses is allowed, including self and backwards
	for _, from := range OrderStatuses() {
		for _, to := range OrderStatuses() {
			require.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	require.False(t, StatusPending.CanTransitionTo("Refunded"))
	require.False(t, StatusDelivered.CanTransitionTo(""))
}

func TestParseMaterial(t *testing.T) {
	for _, m := range Materials() {
		parsed, err := ParseMaterial(string(m))
		require.NoError(t, err)
		require.Equal(t, m, parsed)
	}

	_, err := ParseMaterial("cotton")
	require.Error(t, err)
}

func TestParseRole(t *testing.T) {
	for _, r := range []string{"Seller", "Customer", "Admin"} {
		parsed, err := ParseRole(r)
		require.NoError(t, err)
		require.Equal(t, Role(r), parsed)
	}

	_, err := ParseRole("seller")
	require.Error(t, err)
}
