package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-eshop-backend/internal/catalog"
	"github.com/imrishuroy/go-eshop-backend/internal/storage"
	"github.com/imrishuroy/go-eshop-backend/internal/validation"
)

// ProductsConfig groups dependencies for the products routes.
type ProductsConfig struct {
	Products   *catalog.ProductStore
	Categories *catalog.CategoryStore
	Cache      *catalog.CachedProducts
	Uploads    *storage.Uploads
	Log        *zap.Logger
}

// RegisterProductsRoutes registers the product API on the group.
func RegisterProductsRoutes(rg *gin.RouterGroup, cfg ProductsConfig) {
	v := validation.New()

	rg.GET("/get/count", func(c *gin.Context) {
		count, err := cfg.Products.Count(c.Request.Context())
		if err != nil || count == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"productCount": count})
	})

	rg.GET("/get/featured", func(c *gin.Context) {
		featured(c, cfg, 0)
	})

	rg.GET("/get/featured/:count", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Param("count"))
		featured(c, cfg, limit)
	})

	rg.GET("", func(c *gin.Context) {
		var categoryIDs []string
		if raw := c.Query("categories"); raw != "" {
			categoryIDs = strings.Split(raw, ",")
		}

		products, err := cfg.Products.List(c.Request.Context(), categoryIDs)
		if err != nil {
			cfg.Log.Error("list products failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		for i := range products {
			expandCategory(c, cfg, &products[i])
		}
		c.JSON(http.StatusOK, products)
	})

	rg.GET("/:id", func(c *gin.Context) {
		product, err := cfg.Products.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil || product == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "The product with the given ID was not found"})
			return
		}
		expandCategory(c, cfg, product)
		c.JSON(http.StatusOK, product)
	})

	rg.POST("", func(c *gin.Context) {
		var req validation.CreateProductRequest
		if err := validation.BindFormAndValidate(c, &req, v); err != nil {
			return
		}

		category, err := cfg.Categories.Get(c.Request.Context(), req.Category)
		if err != nil || category == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No image on request"})
			return
		}
		imageURL, err := cfg.Uploads.Save(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		product := catalog.Product{
			ID:              uuid.NewString(),
			Name:            req.Name,
			Description:     req.Description,
			RichDescription: req.RichDescription,
			Image:           imageURL,
			Brand:           req.Brand,
			Price:           req.Price,
			CategoryID:      req.Category,
			CountInStock:    req.CountInStock,
			Rating:          req.Rating,
			NumReviews:      req.NumReviews,
			IsFeatured:      req.IsFeatured,
			DateCreated:     time.Now(),
		}
		if err := cfg.Products.Put(c.Request.Context(), product); err != nil {
			cfg.Log.Error("create product failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Product can't be created"})
			return
		}
		c.JSON(http.StatusOK, product)
	})

	rg.PUT("/:id", func(c *gin.Context) {
		var req validation.UpdateProductRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		category, err := cfg.Categories.Get(c.Request.Context(), req.Category)
		if err != nil || category == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
			return
		}

		existing, err := cfg.Products.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil || existing == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product"})
			return
		}

		updated := *existing
		updated.Name = req.Name
		updated.Description = req.Description
		updated.RichDescription = req.RichDescription
		updated.Brand = req.Brand
		updated.Price = req.Price
		updated.CategoryID = req.Category
		updated.CountInStock = req.CountInStock
		updated.Rating = req.Rating
		updated.NumReviews = req.NumReviews
		updated.IsFeatured = req.IsFeatured

		if err := cfg.Products.Put(c.Request.Context(), updated); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product can't be updated"})
			return
		}
		if cfg.Cache != nil {
			cfg.Cache.Invalidate(c.Request.Context(), updated.ID)
		}
		c.JSON(http.StatusOK, updated)
	})

	rg.PUT("/galleryimages/:id", func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		files := form.File["images"]
		if len(files) > 10 {
			files = files[:10]
		}
		imageURLs := make([]string, 0, len(files))
		for _, file := range files {
			url, err := cfg.Uploads.Save(c, file)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			imageURLs = append(imageURLs, url)
		}

		product, err := cfg.Products.UpdateImages(c.Request.Context(), c.Param("id"), imageURLs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product can't be updated"})
			return
		}
		c.JSON(http.StatusOK, product)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		removed, err := cfg.Products.Delete(c.Request.Context(), c.Param("id"))
		switch {
		case err != nil:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case !removed:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		default:
			if cfg.Cache != nil {
				cfg.Cache.Invalidate(c.Request.Context(), c.Param("id"))
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
		}
	})
}

func featured(c *gin.Context, cfg ProductsConfig, limit int) {
	products, err := cfg.Products.Featured(c.Request.Context(), limit)
	if err != nil {
		cfg.Log.Error("list featured products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// expandCategory attaches the category record; a dangling reference is left
// unexpanded.
func expandCategory(c *gin.Context, cfg ProductsConfig, p *catalog.Product) {
	category, err := cfg.Categories.Get(c.Request.Context(), p.CategoryID)
	if err == nil && category != nil {
		p.Category = category
	}
}
