package orders

import "context"

// SalesAggregator computes derived statistics over the full order set.
type SalesAggregator struct {
	orders *Store
}

func NewSalesAggregator(orders *Store) *SalesAggregator {
	return &SalesAggregator{orders: orders}
}

// Count returns the total number of persisted orders.
func (a *SalesAggregator) Count(ctx context.Context) (int, error) {
	return a.orders.Count(ctx)
}

// TotalSales returns the sum of totalPrice across all orders. With zero
// orders the total is 0, not an error.
func (a *SalesAggregator) TotalSales(ctx context.Context) (float64, error) {
	return a.orders.TotalSales(ctx)
}
