package orders

import "errors"

var (
	// ErrOrderNotFound is returned when an order id does not resolve.
	ErrOrderNotFound = errors.New("order not found")

	// ErrProductNotFound is returned when a line item references a product
	// that does not exist at pricing time.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyOrder rejects submissions with no line items.
	ErrEmptyOrder = errors.New("order has no items")
)
