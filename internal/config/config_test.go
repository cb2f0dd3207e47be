package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("API_URL")
	os.Unsetenv("ORDERS_TABLE")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/api/v1", cfg.BasePath)
	require.Equal(t, "orders", cfg.OrdersTable)
	require.Equal(t, "order_items", cfg.OrderItemsTable)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "abc")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "too short")
}
