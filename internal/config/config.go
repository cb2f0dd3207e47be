package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every process-level setting. All values come from the
// environment (optionally seeded from a .env file); nothing is hard-coded,
// in particular the token signing secret.
type Config struct {
	BasePath string // route prefix, e.g. /api/v1
	Port     string

	OrdersTable     string
	OrderItemsTable string
	ProductsTable   string
	CategoriesTable string
	UsersTable      string

	JWTSecret string

	RedisAddr  string // optional; empty disables the product cache
	UploadsDir string
}

// Load reads the environment and validates the settings the server cannot
// run without. A missing JWT secret is a startup error, never a fallback.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BasePath:        getEnv("API_URL", "/api/v1"),
		Port:            getEnv("PORT", "8080"),
		OrdersTable:     getEnv("ORDERS_TABLE", "orders"),
		OrderItemsTable: getEnv("ORDER_ITEMS_TABLE", "order_items"),
		ProductsTable:   getEnv("PRODUCTS_TABLE", "products"),
		CategoriesTable: getEnv("CATEGORIES_TABLE", "categories"),
		UsersTable:      getEnv("USERS_TABLE", "users"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		UploadsDir:      getEnv("UPLOADS_DIR", "public/uploads"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET too short (%d bytes, want >= 16)", len(c.JWTSecret))
	}
	for name, v := range map[string]string{
		"ORDERS_TABLE":      c.OrdersTable,
		"ORDER_ITEMS_TABLE": c.OrderItemsTable,
		"PRODUCTS_TABLE":    c.ProductsTable,
		"CATEGORIES_TABLE":  c.CategoriesTable,
		"USERS_TABLE":       c.UsersTable,
	} {
		if v == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
