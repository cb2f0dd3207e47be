package orders

import (
	"time"

	"github.com/imrishuroy/go-eshop-backend/internal/catalog"
)

// Well-known status values. The status field is an open string; these are
// the ones the storefront uses.
const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// OrderItem is one line of an order: a product reference plus a quantity.
// Items belong to exactly one order and are never mutated after creation.
type OrderItem struct {
	ID        string `json:"id" dynamodbav:"order_item_id"` // PK
	ProductID string `json:"product" dynamodbav:"product_id"`
	Quantity  int    `json:"quantity" dynamodbav:"quantity"`

	// Product carries the expanded record on reads; never persisted here.
	Product *catalog.Product `json:"productDetail,omitempty" dynamodbav:"-"`
}

// Order is the item stored in the orders table. TotalPrice is a snapshot
// computed at creation time and is never recomputed on read.
type Order struct {
	ID               string    `json:"id" dynamodbav:"order_id"` // PK
	OrderItemIDs     []string  `json:"orderItems" dynamodbav:"order_item_ids"`
	ShippingAddress1 string    `json:"shippingAddress1" dynamodbav:"shipping_address1"`
	ShippingAddress2 string    `json:"shippingAddress2,omitempty" dynamodbav:"shipping_address2,omitempty"`
	City             string    `json:"city,omitempty" dynamodbav:"city,omitempty"`
	Zip              string    `json:"zip,omitempty" dynamodbav:"zip,omitempty"`
	Country          string    `json:"country,omitempty" dynamodbav:"country,omitempty"`
	Phone            string    `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Status           string    `json:"status" dynamodbav:"status"`
	TotalPrice       float64   `json:"totalPrice" dynamodbav:"total_price"`
	UserID           string    `json:"user" dynamodbav:"user_id"` // GSI user-index
	DateOrdered      time.Time `json:"dateOrdered" dynamodbav:"date_ordered"`

	// Read-side expansions; never persisted.
	Items    []OrderItem `json:"items,omitempty" dynamodbav:"-"`
	UserName string      `json:"userName,omitempty" dynamodbav:"-"`
}
