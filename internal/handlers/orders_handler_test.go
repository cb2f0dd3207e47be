package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-eshop-backend/internal/catalog"
	"github.com/imrishuroy/go-eshop-backend/internal/mocks"
	"github.com/imrishuroy/go-eshop-backend/internal/orders"
	"github.com/imrishuroy/go-eshop-backend/internal/users"
)

type ordersEnv struct {
	router *gin.Engine
	dynamo *mocks.DynamoDB

	orderStore *orders.Store
	itemStore  *orders.ItemStore
	products   *catalog.ProductStore
	categories *catalog.CategoryStore
	users      *users.Store
}

func newOrdersEnv(t *testing.T) *ordersEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dynamo := mocks.NewDynamoDB()
	log := zap.NewNop()

	env := &ordersEnv{
		dynamo:     dynamo,
		orderStore: orders.NewStore(dynamo, "orders"),
		itemStore:  orders.NewItemStore(dynamo, "order_items"),
		products:   catalog.NewProductStore(dynamo, "products"),
		categories: catalog.NewCategoryStore(dynamo, "categories"),
		users:      users.NewStore(dynamo, "users"),
	}

	r := gin.New()
	RegisterOrdersRoutes(r.Group("/orders"), OrdersConfig{
		Assembler: orders.NewAssembler(env.orderStore, env.itemStore, env.products, nil, log),
		Query:     orders.NewQueryService(env.orderStore, env.itemStore, env.products, env.categories, env.users),
		Lifecycle: orders.NewLifecycle(env.orderStore, env.itemStore, log),
		Sales:     orders.NewSalesAggregator(env.orderStore),
		Log:       log,
	})
	env.router = r
	return env
}

func (e *ordersEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *ordersEnv) seedProduct(t *testing.T, id string, price float64) {
	t.Helper()
	err := e.products.Put(context.Background(), catalog.Product{ID: id, Name: id, Price: price, CategoryID: "cat-1"})
	require.NoError(t, err)
}

func (e *ordersEnv) createOrder(t *testing.T, items []map[string]interface{}, user string) orders.Order {
	t.Helper()
	w := e.do(t, http.MethodPost, "/orders", gin.H{
		"orderItems":       items,
		"shippingAddress1": "1 Main Street",
		"city":             "Springfield",
		"user":             user,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var o orders.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &o))
	return o
}

func TestCreateOrder_Success(t *testing.T) {
	env := newOrdersEnv(t)
	env.seedProduct(t, "prod-1", 10.0)
	env.seedProduct(t, "prod-2", 5.0)

	o := env.createOrder(t, []map[string]interface{}{
		{"product": "prod-1", "quantity": 2},
		{"product": "prod-2", "quantity": 3},
	}, "user-1")

	require.Equal(t, 35.0, o.TotalPrice)
	require.Len(t, o.OrderItemIDs, 2)
	require.Len(t, env.dynamo.Tables["order_items"], 2)
}

func TestCreateOrder_EmptyItemsRejected(t *testing.T) {
	env := newOrdersEnv(t)

	w := env.do(t, http.MethodPost, "/orders", gin.H{
		"orderItems":       []gin.H{},
		"shippingAddress1": "1 Main Street",
		"user":             "user-1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	env := newOrdersEnv(t)

	w := env.do(t, http.MethodPost, "/orders", gin.H{
		"orderItems":       []gin.H{{"product": "prod-missing", "quantity": 1}},
		"shippingAddress1": "1 Main Street",
		"user":             "user-1",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Order can't be created")
}

func TestGetOrder_NotFound(t *testing.T) {
	env := newOrdersEnv(t)

	w := env.do(t, http.MethodGet, "/orders/no-such-order", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "was not found")
}

func TestUpdateStatus(t *testing.T) {
	env := newOrdersEnv(t)
	env.seedProduct(t, "prod-1", 10.0)
	o := env.createOrder(t, []map[string]interface{}{{"product": "prod-1", "quantity": 1}}, "user-1")

	w := env.do(t, http.MethodPut, "/orders/"+o.ID, gin.H{"status": "shipped"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated orders.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "shipped", updated.Status)
	require.Equal(t, o.TotalPrice, updated.TotalPrice)
	require.Equal(t, o.OrderItemIDs, updated.OrderItemIDs)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	env := newOrdersEnv(t)

	w := env.do(t, http.MethodPut, "/orders/no-such-order", gin.H{"status": "shipped"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOrder_CascadesAndThenGetFails(t *testing.T) {
	env := newOrdersEnv(t)
	env.seedProduct(t, "prod-1", 10.0)
	o := env.createOrder(t, []map[string]interface{}{{"product": "prod-1", "quantity": 2}}, "user-1")

	w := env.do(t, http.MethodDelete, "/orders/"+o.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)
	require.Empty(t, env.dynamo.Tables["order_items"])

	w = env.do(t, http.MethodGet, "/orders/"+o.ID, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	env := newOrdersEnv(t)

	w := env.do(t, http.MethodDelete, "/orders/no-such-order", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Order not found")
}

func TestOrderCount(t *testing.T) {
	env := newOrdersEnv(t)

	// zero orders behaves like the falsy case: 500
	w := env.do(t, http.MethodGet, "/orders/get/count", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	env.seedProduct(t, "prod-1", 10.0)
	env.createOrder(t, []map[string]interface{}{{"product": "prod-1", "quantity": 1}}, "user-1")

	w = env.do(t, http.MethodGet, "/orders/get/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"orderCount":1}`, w.Body.String())
}

func TestTotalSales_EmptyIsZero(t *testing.T) {
	env := newOrdersEnv(t)

	w := env.do(t, http.MethodGet, "/orders/get/totalsales", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"totalSales":0}`, w.Body.String())
}

func TestTotalSales_SumsOrders(t *testing.T) {
	env := newOrdersEnv(t)
	env.seedProduct(t, "prod-1", 10.0)
	env.seedProduct(t, "prod-2", 2.5)
	env.createOrder(t, []map[string]interface{}{{"product": "prod-1", "quantity": 1}}, "user-1")
	env.createOrder(t, []map[string]interface{}{{"product": "prod-2", "quantity": 2}}, "user-2")

	w := env.do(t, http.MethodGet, "/orders/get/totalsales", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"totalSales":15}`, w.Body.String())
}

func TestUserOrders(t *testing.T) {
	env := newOrdersEnv(t)
	env.seedProduct(t, "prod-1", 10.0)

	// stagger creation so dateOrdered differs
	first := env.createOrder(t, []map[string]interface{}{{"product": "prod-1", "quantity": 1}}, "user-1")
	time.Sleep(5 * time.Millisecond)
	env.createOrder(t, []map[string]interface{}{{"product": "prod-1", "quantity": 1}}, "user-2")
	time.Sleep(5 * time.Millisecond)
	second := env.createOrder(t, []map[string]interface{}{{"product": "prod-1", "quantity": 1}}, "user-1")

	w := env.do(t, http.MethodGet, "/orders/get/userorders/user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []orders.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}

func TestListOrders(t *testing.T) {
	env := newOrdersEnv(t)
	env.seedProduct(t, "prod-1", 1.0)
	for i := 0; i < 3; i++ {
		env.createOrder(t, []map[string]interface{}{{"product": "prod-1", "quantity": 1}}, fmt.Sprintf("user-%d", i))
		time.Sleep(2 * time.Millisecond)
	}

	w := env.do(t, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []orders.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		require.False(t, list[i].DateOrdered.After(list[i-1].DateOrdered))
	}
}
