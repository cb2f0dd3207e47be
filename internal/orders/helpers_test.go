package orders

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/imrishuroy/go-eshop-backend/internal/catalog"
	"github.com/imrishuroy/go-eshop-backend/internal/mocks"
	"github.com/imrishuroy/go-eshop-backend/internal/users"
)

const (
	ordersTbl     = "orders"
	itemsTbl      = "order_items"
	productsTbl   = "products"
	categoriesTbl = "categories"
	usersTbl      = "users"
)

type fixture struct {
	dynamo     *mocks.DynamoDB
	orders     *Store
	items      *ItemStore
	products   *catalog.ProductStore
	categories *catalog.CategoryStore
	users      *users.Store
	assembler  *Assembler
	query      *QueryService
	lifecycle  *Lifecycle
	sales      *SalesAggregator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dynamo := mocks.NewDynamoDB()
	log := zap.NewNop()

	f := &fixture{
		dynamo:     dynamo,
		orders:     NewStore(dynamo, ordersTbl),
		items:      NewItemStore(dynamo, itemsTbl),
		products:   catalog.NewProductStore(dynamo, productsTbl),
		categories: catalog.NewCategoryStore(dynamo, categoriesTbl),
		users:      users.NewStore(dynamo, usersTbl),
	}
	f.assembler = NewAssembler(f.orders, f.items, f.products, nil, log)
	f.query = NewQueryService(f.orders, f.items, f.products, f.categories, f.users)
	f.lifecycle = NewLifecycle(f.orders, f.items, log)
	f.sales = NewSalesAggregator(f.orders)
	return f
}

func (f *fixture) seedProduct(t *testing.T, id string, price float64, categoryID string) {
	t.Helper()
	err := f.products.Put(context.Background(), catalog.Product{
		ID:         id,
		Name:       "product " + id,
		Price:      price,
		CategoryID: categoryID,
	})
	if err != nil {
		t.Fatalf("seed product %s: %v", id, err)
	}
}

func (f *fixture) seedCategory(t *testing.T, id, name string) {
	t.Helper()
	if err := f.categories.Put(context.Background(), catalog.Category{ID: id, Name: name}); err != nil {
		t.Fatalf("seed category %s: %v", id, err)
	}
}

func (f *fixture) seedUser(t *testing.T, id, name string) {
	t.Helper()
	_, err := f.users.Register(context.Background(), users.User{
		ID:    id,
		Name:  name,
		Email: id + "@example.com",
	}, "password")
	if err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
}

func (f *fixture) seedOrder(t *testing.T, o Order, items ...OrderItem) {
	t.Helper()
	ctx := context.Background()
	for _, item := range items {
		if err := f.items.Put(ctx, item); err != nil {
			t.Fatalf("seed order item %s: %v", item.ID, err)
		}
		o.OrderItemIDs = append(o.OrderItemIDs, item.ID)
	}
	if err := f.orders.Put(ctx, o); err != nil {
		t.Fatalf("seed order %s: %v", o.ID, err)
	}
}

func dateAt(day int) time.Time {
	return time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC)
}
