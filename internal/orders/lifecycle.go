package orders

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Lifecycle handles status transitions and cascading deletion. The order
// exclusively owns its items, so deleting the order deletes every item.
type Lifecycle struct {
	orders *Store
	items  *ItemStore
	log    *zap.Logger
}

func NewLifecycle(orders *Store, items *ItemStore, log *zap.Logger) *Lifecycle {
	return &Lifecycle{orders: orders, items: items, log: log}
}

// UpdateStatus sets the status on an order and returns the updated record.
// The status value is not validated against a fixed set.
func (l *Lifecycle) UpdateStatus(ctx context.Context, orderID, newStatus string) (*Order, error) {
	return l.orders.UpdateStatus(ctx, orderID, newStatus)
}

// Delete removes the order and then each of its items. Item deletions are
// attempted for every id even after a failure; the failures are aggregated
// into the returned error so partial cleanup is never silent.
func (l *Lifecycle) Delete(ctx context.Context, orderID string) error {
	order, err := l.orders.Delete(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	var itemErrs []error
	for _, itemID := range order.OrderItemIDs {
		if err := l.items.Delete(ctx, itemID); err != nil {
			l.log.Error("cascade delete of order item failed",
				zap.String("order_id", orderID),
				zap.String("order_item_id", itemID),
				zap.Error(err),
			)
			itemErrs = append(itemErrs, fmt.Errorf("item %s: %w", itemID, err))
		}
	}
	if len(itemErrs) > 0 {
		return fmt.Errorf("order %s deleted but %d item(s) remain: %w",
			orderID, len(itemErrs), errors.Join(itemErrs...))
	}
	return nil
}
