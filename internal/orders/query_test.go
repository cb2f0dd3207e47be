package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetByID_FullExpansion(t *testing.T) {
	f := newFixture(t)
	f.seedCategory(t, "cat-1", "Electronics")
	f.seedProduct(t, "prod-1", 10.0, "cat-1")
	f.seedUser(t, "user-1", "Alice")
	f.seedOrder(t, Order{ID: "order-1", UserID: "user-1", DateOrdered: dateAt(1)},
		OrderItem{ID: "item-1", ProductID: "prod-1", Quantity: 2},
	)

	order, err := f.query.GetByID(context.Background(), "order-1")
	require.NoError(t, err)
	require.Equal(t, "Alice", order.UserName)
	require.Len(t, order.Items, 1)

	item := order.Items[0]
	require.Equal(t, 2, item.Quantity)
	require.NotNil(t, item.Product)
	require.Equal(t, "prod-1", item.Product.ID)
	require.NotNil(t, item.Product.Category)
	require.Equal(t, "Electronics", item.Product.Category.Name)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.query.GetByID(context.Background(), "order-missing")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListAll_NewestFirstWithUserNames(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "user-1", "Alice")
	f.seedUser(t, "user-2", "Bob")
	f.seedOrder(t, Order{ID: "order-a", UserID: "user-1", DateOrdered: dateAt(1)})
	f.seedOrder(t, Order{ID: "order-b", UserID: "user-2", DateOrdered: dateAt(3)})
	f.seedOrder(t, Order{ID: "order-c", UserID: "user-1", DateOrdered: dateAt(2)})

	orderList, err := f.query.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orderList, 3)
	require.Equal(t, []string{"order-b", "order-c", "order-a"},
		[]string{orderList[0].ID, orderList[1].ID, orderList[2].ID})
	require.Equal(t, "Bob", orderList[0].UserName)
	require.Equal(t, "Alice", orderList[2].UserName)

	// list view expands only the user, not the items
	require.Empty(t, orderList[0].Items)
}

func TestListAll_TiesFallBackToID(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "user-1", "Alice")
	f.seedOrder(t, Order{ID: "order-b", UserID: "user-1", DateOrdered: dateAt(1)})
	f.seedOrder(t, Order{ID: "order-a", UserID: "user-1", DateOrdered: dateAt(1)})

	orderList, err := f.query.ListAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, "order-a", orderList[0].ID)
	require.Equal(t, "order-b", orderList[1].ID)
}

func TestListByUser_FiltersAndExpands(t *testing.T) {
	f := newFixture(t)
	f.seedCategory(t, "cat-1", "Books")
	f.seedProduct(t, "prod-1", 8.0, "cat-1")
	f.seedUser(t, "user-1", "Alice")
	f.seedUser(t, "user-2", "Bob")
	f.seedOrder(t, Order{ID: "order-a", UserID: "user-1", DateOrdered: dateAt(1)},
		OrderItem{ID: "item-1", ProductID: "prod-1", Quantity: 1})
	f.seedOrder(t, Order{ID: "order-b", UserID: "user-2", DateOrdered: dateAt(2)})
	f.seedOrder(t, Order{ID: "order-c", UserID: "user-1", DateOrdered: dateAt(3)})

	orderList, err := f.query.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, orderList, 2)
	require.Equal(t, "order-c", orderList[0].ID)
	require.Equal(t, "order-a", orderList[1].ID)

	require.Len(t, orderList[1].Items, 1)
	require.NotNil(t, orderList[1].Items[0].Product)
	require.Equal(t, "Books", orderList[1].Items[0].Product.Category.Name)
}

func TestExpansionDoesNotMutateStoredOrder(t *testing.T) {
	f := newFixture(t)
	f.seedCategory(t, "cat-1", "Books")
	f.seedProduct(t, "prod-1", 8.0, "cat-1")
	f.seedUser(t, "user-1", "Alice")
	f.seedOrder(t, Order{ID: "order-1", UserID: "user-1", DateOrdered: dateAt(1)},
		OrderItem{ID: "item-1", ProductID: "prod-1", Quantity: 1})

	_, err := f.query.GetByID(context.Background(), "order-1")
	require.NoError(t, err)

	stored, err := f.orders.Get(context.Background(), "order-1")
	require.NoError(t, err)
	require.Empty(t, stored.Items)
	require.Empty(t, stored.UserName)
}
