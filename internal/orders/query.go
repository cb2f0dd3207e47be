package orders

import (
	"context"
	"fmt"
	"sort"

	"github.com/imrishuroy/go-eshop-backend/internal/catalog"
	"github.com/imrishuroy/go-eshop-backend/internal/users"
)

// CategorySource resolves a category reference for product expansion.
type CategorySource interface {
	Get(ctx context.Context, id string) (*catalog.Category, error)
}

// UserSource resolves a user reference for display-name expansion.
type UserSource interface {
	Get(ctx context.Context, id string) (*users.User, error)
}

// QueryService reads orders with nested expansion: order items to products to
// categories, and the user reference to a display name. Expansion never
// mutates stored records.
type QueryService struct {
	orders     *Store
	items      *ItemStore
	products   ProductSource
	categories CategorySource
	users      UserSource
}

func NewQueryService(orders *Store, items *ItemStore, products ProductSource, categories CategorySource, userSrc UserSource) *QueryService {
	return &QueryService{
		orders:     orders,
		items:      items,
		products:   products,
		categories: categories,
		users:      userSrc,
	}
}

// GetByID returns one order, fully expanded. ErrOrderNotFound when absent.
func (q *QueryService) GetByID(ctx context.Context, orderID string) (*Order, error) {
	order, err := q.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := q.expand(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListAll returns every order, newest first, with only the user reference
// expanded to a display name.
func (q *QueryService) ListAll(ctx context.Context) ([]Order, error) {
	orderList, err := q.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	for i := range orderList {
		o := &orderList[i]
		name, ok := names[o.UserID]
		if !ok {
			u, err := q.users.Get(ctx, o.UserID)
			if err != nil {
				return nil, fmt.Errorf("expand user %s: %w", o.UserID, err)
			}
			if u != nil {
				name = u.Name
			}
			names[o.UserID] = name
		}
		o.UserName = name
	}

	sortNewestFirst(orderList)
	return orderList, nil
}

// ListByUser returns one user's orders, newest first, fully expanded.
func (q *QueryService) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	orderList, err := q.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range orderList {
		if err := q.expand(ctx, &orderList[i]); err != nil {
			return nil, err
		}
	}
	sortNewestFirst(orderList)
	return orderList, nil
}

// expand fills the read-side fields: items with their products and
// categories, and the owning user's name. A dangling reference is left
// unexpanded rather than failing the read.
func (q *QueryService) expand(ctx context.Context, order *Order) error {
	order.Items = make([]OrderItem, 0, len(order.OrderItemIDs))
	for _, itemID := range order.OrderItemIDs {
		item, err := q.items.Get(ctx, itemID)
		if err != nil {
			return fmt.Errorf("expand order item %s: %w", itemID, err)
		}
		if item == nil {
			continue
		}

		product, err := q.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("expand product %s: %w", item.ProductID, err)
		}
		if product != nil {
			category, err := q.categories.Get(ctx, product.CategoryID)
			if err != nil {
				return fmt.Errorf("expand category %s: %w", product.CategoryID, err)
			}
			product.Category = category
			item.Product = product
		}

		order.Items = append(order.Items, *item)
	}

	u, err := q.users.Get(ctx, order.UserID)
	if err != nil {
		return fmt.Errorf("expand user %s: %w", order.UserID, err)
	}
	if u != nil {
		order.UserName = u.Name
	}
	return nil
}

// sortNewestFirst orders by dateOrdered descending; ties fall back to id so
// the ordering is deterministic.
func sortNewestFirst(orderList []Order) {
	sort.SliceStable(orderList, func(i, j int) bool {
		a, b := orderList[i], orderList[j]
		if !a.DateOrdered.Equal(b.DateOrdered) {
			return a.DateOrdered.After(b.DateOrdered)
		}
		return a.ID < b.ID
	})
}
