package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-eshop-backend/internal/catalog"
	"github.com/imrishuroy/go-eshop-backend/internal/validation"
)

// CategoriesConfig groups dependencies for the categories routes.
type CategoriesConfig struct {
	Categories *catalog.CategoryStore
	Log        *zap.Logger
}

// RegisterCategoriesRoutes registers the category API on the group.
func RegisterCategoriesRoutes(rg *gin.RouterGroup, cfg CategoriesConfig) {
	v := validation.New()

	rg.GET("", func(c *gin.Context) {
		categories, err := cfg.Categories.List(c.Request.Context())
		if err != nil {
			cfg.Log.Error("list categories failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, categories)
	})

	rg.GET("/:id", func(c *gin.Context) {
		category, err := cfg.Categories.Get(c.Request.Context(), c.Param("id"))
		if err != nil || category == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "The category with the given ID was not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	})

	rg.POST("", func(c *gin.Context) {
		var req validation.CreateCategoryRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		category := catalog.Category{
			ID:    uuid.NewString(),
			Name:  req.Name,
			Icon:  req.Icon,
			Color: req.Color,
		}
		if err := cfg.Categories.Put(c.Request.Context(), category); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category can't be created"})
			return
		}
		c.JSON(http.StatusOK, category)
	})

	rg.PUT("/:id", func(c *gin.Context) {
		var req validation.CreateCategoryRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		existing, err := cfg.Categories.Get(c.Request.Context(), c.Param("id"))
		if err != nil || existing == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category can't be updated"})
			return
		}

		updated := catalog.Category{
			ID:    existing.ID,
			Name:  req.Name,
			Icon:  req.Icon,
			Color: req.Color,
		}
		if err := cfg.Categories.Put(c.Request.Context(), updated); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category can't be updated"})
			return
		}
		c.JSON(http.StatusOK, updated)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		removed, err := cfg.Categories.Delete(c.Request.Context(), c.Param("id"))
		switch {
		case err != nil:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case !removed:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
		}
	})
}
