package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateStatus_ChangesOnlyStatus(t *testing.T) {
	f := newFixture(t)
	f.seedOrder(t, Order{
		ID:          "order-1",
		Status:      StatusPending,
		TotalPrice:  42.0,
		UserID:      "user-1",
		DateOrdered: dateAt(1),
	}, OrderItem{ID: "item-1", ProductID: "prod-1", Quantity: 1})

	updated, err := f.lifecycle.UpdateStatus(context.Background(), "order-1", StatusShipped)
	require.NoError(t, err)
	require.Equal(t, StatusShipped, updated.Status)
	require.Equal(t, 42.0, updated.TotalPrice)
	require.Equal(t, []string{"item-1"}, updated.OrderItemIDs)

	stored, err := f.orders.Get(context.Background(), "order-1")
	require.NoError(t, err)
	require.Equal(t, StatusShipped, stored.Status)
	require.Equal(t, 42.0, stored.TotalPrice)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.lifecycle.UpdateStatus(context.Background(), "order-missing", StatusShipped)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDelete_CascadesToItems(t *testing.T) {
	f := newFixture(t)
	f.seedOrder(t, Order{ID: "order-1", UserID: "user-1", DateOrdered: dateAt(1)},
		OrderItem{ID: "item-1", ProductID: "prod-1", Quantity: 1},
		OrderItem{ID: "item-2", ProductID: "prod-2", Quantity: 2},
		OrderItem{ID: "item-3", ProductID: "prod-3", Quantity: 3},
	)

	err := f.lifecycle.Delete(context.Background(), "order-1")
	require.NoError(t, err)

	require.Empty(t, f.dynamo.Tables[ordersTbl])
	require.Empty(t, f.dynamo.Tables[itemsTbl])

	_, err = f.query.GetByID(context.Background(), "order-1")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.lifecycle.Delete(context.Background(), "order-missing")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDelete_ItemFailureIsSurfaced(t *testing.T) {
	f := newFixture(t)
	f.seedOrder(t, Order{ID: "order-1", UserID: "user-1", DateOrdered: dateAt(1)},
		OrderItem{ID: "item-1", ProductID: "prod-1", Quantity: 1},
		OrderItem{ID: "item-2", ProductID: "prod-2", Quantity: 1},
	)
	f.dynamo.DeleteErr = func(table, pk string) error {
		if table == itemsTbl && pk == "item-2" {
			return errors.New("store unavailable")
		}
		return nil
	}

	err := f.lifecycle.Delete(context.Background(), "order-1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "item-2")

	// order itself is gone, the surviving item is reported not swallowed
	require.Empty(t, f.dynamo.Tables[ordersTbl])
	require.Len(t, f.dynamo.Tables[itemsTbl], 1)
}
