package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-eshop-backend/internal/orders"
	"github.com/imrishuroy/go-eshop-backend/internal/validation"
)

// OrdersConfig groups dependencies for the orders routes.
type OrdersConfig struct {
	Assembler *orders.Assembler
	Query     *orders.QueryService
	Lifecycle *orders.Lifecycle
	Sales     *orders.SalesAggregator
	Log       *zap.Logger
}

// RegisterOrdersRoutes registers the order API on the group.
func RegisterOrdersRoutes(rg *gin.RouterGroup, cfg OrdersConfig) {
	v := validation.New()

	// Aggregate routes are registered next to /:id; gin resolves the static
	// /get prefix before the wildcard.
	rg.GET("/get/count", func(c *gin.Context) {
		count, err := cfg.Sales.Count(c.Request.Context())
		if err != nil || count == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orderCount": count})
	})

	rg.GET("/get/totalsales", func(c *gin.Context) {
		total, err := cfg.Sales.TotalSales(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order sales can't be generated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"totalSales": total})
	})

	rg.GET("/get/userorders/:id", func(c *gin.Context) {
		orderList, err := cfg.Query.ListByUser(c.Request.Context(), c.Param("id"))
		if err != nil {
			cfg.Log.Error("list user orders failed", zap.String("user_id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, orderList)
	})

	rg.GET("", func(c *gin.Context) {
		orderList, err := cfg.Query.ListAll(c.Request.Context())
		if err != nil {
			cfg.Log.Error("list orders failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, orderList)
	})

	rg.GET("/:id", func(c *gin.Context) {
		order, err := cfg.Query.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if !errors.Is(err, orders.ErrOrderNotFound) {
				cfg.Log.Error("get order failed", zap.String("order_id", c.Param("id")), zap.Error(err))
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "The order with the given ID was not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	})

	rg.POST("", func(c *gin.Context) {
		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		sub := orders.Submission{
			ShippingAddress1: req.ShippingAddress1,
			ShippingAddress2: req.ShippingAddress2,
			City:             req.City,
			Zip:              req.Zip,
			Country:          req.Country,
			Phone:            req.Phone,
			Status:           req.Status,
			UserID:           req.User,
		}
		for _, line := range req.OrderItems {
			sub.Items = append(sub.Items, orders.LineItem{
				ProductID: line.Product,
				Quantity:  line.Quantity,
			})
		}

		order, err := cfg.Assembler.Create(c.Request.Context(), sub)
		if err != nil {
			cfg.Log.Error("order assembly failed", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"message": "Order can't be created"})
			return
		}
		c.JSON(http.StatusOK, order)
	})

	rg.PUT("/:id", func(c *gin.Context) {
		var req validation.UpdateOrderStatusRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		order, err := cfg.Lifecycle.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order can't be updated"})
			return
		}
		c.JSON(http.StatusOK, order)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		err := cfg.Lifecycle.Delete(c.Request.Context(), c.Param("id"))
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		case err != nil:
			cfg.Log.Error("order delete failed", zap.String("order_id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted"})
		}
	})
}
