package validation

import (
	"testing"
)

func TestCreateOrderRequest_Valid(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		OrderItems: []OrderItemRequest{
			{Product: "prod-1", Quantity: 2},
			{Product: "prod-2", Quantity: 1},
		},
		ShippingAddress1: "1 Main Street",
		City:             "Springfield",
		User:             "user-1",
	}

	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestCreateOrderRequest_EmptyItems(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		OrderItems:       []OrderItemRequest{},
		ShippingAddress1: "1 Main Street",
		User:             "user-1",
	}

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for empty orderItems, got nil")
	}
}

func TestCreateOrderRequest_ZeroQuantity(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		OrderItems:       []OrderItemRequest{{Product: "prod-1", Quantity: 0}},
		ShippingAddress1: "1 Main Street",
		User:             "user-1",
	}

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for quantity < 1, got nil")
	}
}

func TestCreateOrderRequest_MissingFields(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		// ShippingAddress1 and User missing
		OrderItems: []OrderItemRequest{{Product: "prod-1", Quantity: 1}},
	}

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation errors for missing required fields, got nil")
	}
}

func TestLoginRequest_BadEmail(t *testing.T) {
	v := New()

	req := LoginRequest{Email: "not-an-email", Password: "secret"}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for malformed email, got nil")
	}
}
