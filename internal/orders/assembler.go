package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/imrishuroy/go-eshop-backend/internal/catalog"
)

// ProductSource resolves a product reference. Returns (nil, nil) when the
// product does not exist.
type ProductSource interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

// MetricsPublisher receives order-creation datapoints. Implementations must
// tolerate being called from a goroutine after the request finished.
type MetricsPublisher interface {
	OrderCreated(ctx context.Context, totalPrice float64)
}

// LineItem is one submitted {productRef, quantity} pair.
type LineItem struct {
	ProductID string
	Quantity  int
}

// Submission is a cart-like order request: line items plus the shipping
// attributes of the order-to-be.
type Submission struct {
	Items            []LineItem
	ShippingAddress1 string
	ShippingAddress2 string
	City             string
	Zip              string
	Country          string
	Phone            string
	Status           string
	UserID           string
}

// Assembler turns a submission into persisted order items and one order
// record carrying the aggregate price.
type Assembler struct {
	orders   *Store
	items    *ItemStore
	products ProductSource
	metrics  MetricsPublisher
	log      *zap.Logger
	nowFunc  func() time.Time
}

func NewAssembler(orders *Store, items *ItemStore, products ProductSource, metrics MetricsPublisher, log *zap.Logger) *Assembler {
	return &Assembler{
		orders:   orders,
		items:    items,
		products: products,
		metrics:  metrics,
		log:      log,
		nowFunc:  time.Now,
	}
}

// Create runs the three-phase pipeline: persist the line items, price each
// one against the catalog, then persist the order with the summed total.
// Sibling items are written concurrently; pricing starts only once every
// item is durable, and the order is written only once every line is priced.
//
// There is no multi-record transaction. If pricing or the final write fails,
// Create compensates by deleting the items it already created so no
// unreferenced records are left behind.
func (a *Assembler) Create(ctx context.Context, sub Submission) (*Order, error) {
	if len(sub.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	// Phase 1: create one order item per submitted line, preserving input order.
	itemIDs := make([]string, len(sub.Items))
	g, gctx := errgroup.WithContext(ctx)
	for i, line := range sub.Items {
		itemIDs[i] = uuid.NewString()
		id, line := itemIDs[i], line
		g.Go(func() error {
			return a.items.Put(gctx, OrderItem{
				ID:        id,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
		})
	}
	if err := g.Wait(); err != nil {
		a.rollbackItems(ctx, itemIDs)
		return nil, fmt.Errorf("create order items: %w", err)
	}

	// Phase 2: re-read each persisted item and resolve its unit price.
	var totalPrice float64
	for _, id := range itemIDs {
		item, err := a.items.Get(ctx, id)
		if err != nil {
			a.rollbackItems(ctx, itemIDs)
			return nil, fmt.Errorf("read back order item %s: %w", id, err)
		}
		if item == nil {
			a.rollbackItems(ctx, itemIDs)
			return nil, fmt.Errorf("order item %s vanished before pricing", id)
		}

		product, err := a.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			a.rollbackItems(ctx, itemIDs)
			return nil, fmt.Errorf("resolve product %s: %w", item.ProductID, err)
		}
		if product == nil {
			a.rollbackItems(ctx, itemIDs)
			return nil, fmt.Errorf("product %s: %w", item.ProductID, ErrProductNotFound)
		}

		totalPrice += float64(item.Quantity) * product.Price
	}

	// Phase 3: persist the order with the snapshot total.
	status := sub.Status
	if status == "" {
		status = StatusPending
	}
	order := Order{
		ID:               uuid.NewString(),
		OrderItemIDs:     itemIDs,
		ShippingAddress1: sub.ShippingAddress1,
		ShippingAddress2: sub.ShippingAddress2,
		City:             sub.City,
		Zip:              sub.Zip,
		Country:          sub.Country,
		Phone:            sub.Phone,
		Status:           status,
		TotalPrice:       totalPrice,
		UserID:           sub.UserID,
		DateOrdered:      a.nowFunc(),
	}
	if err := a.orders.Put(ctx, order); err != nil {
		a.rollbackItems(ctx, itemIDs)
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if a.metrics != nil {
		go a.metrics.OrderCreated(context.WithoutCancel(ctx), totalPrice)
	}

	return &order, nil
}

// rollbackItems compensates a failed assembly by removing the items created
// so far. Best effort: a compensation failure is logged, not returned, since
// the original failure is what the caller needs to see.
func (a *Assembler) rollbackItems(ctx context.Context, itemIDs []string) {
	for _, id := range itemIDs {
		if id == "" {
			continue
		}
		if err := a.items.Delete(ctx, id); err != nil {
			a.log.Warn("order item compensation failed",
				zap.String("order_item_id", id),
				zap.Error(err),
			)
		}
	}
}
