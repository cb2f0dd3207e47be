package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-eshop-backend/internal/auth"
	"github.com/imrishuroy/go-eshop-backend/internal/users"
	"github.com/imrishuroy/go-eshop-backend/internal/validation"
)

// UsersConfig groups dependencies for the users routes.
type UsersConfig struct {
	Users  *users.Store
	Tokens *auth.TokenManager
	Log    *zap.Logger
}

// RegisterUsersRoutes registers the user API on the group.
func RegisterUsersRoutes(rg *gin.RouterGroup, cfg UsersConfig) {
	v := validation.New()

	rg.GET("/get/count", func(c *gin.Context) {
		count, err := cfg.Users.Count(c.Request.Context())
		if err != nil || count == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userCount": count})
	})

	rg.GET("", func(c *gin.Context) {
		userList, err := cfg.Users.List(c.Request.Context())
		if err != nil {
			cfg.Log.Error("list users failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, userList)
	})

	rg.GET("/:id", func(c *gin.Context) {
		u, err := cfg.Users.Get(c.Request.Context(), c.Param("id"))
		if err != nil || u == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "The user with the given ID was not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	})

	rg.POST("/register", func(c *gin.Context) {
		var req validation.RegisterUserRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		existing, err := cfg.Users.GetByEmail(c.Request.Context(), req.Email)
		if err == nil && existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already registered"})
			return
		}

		u, err := cfg.Users.Register(c.Request.Context(), users.User{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Street:    req.Street,
			Apartment: req.Apartment,
			City:      req.City,
			Zip:       req.Zip,
			Country:   req.Country,
			IsAdmin:   req.IsAdmin,
		}, req.Password)
		if err != nil {
			cfg.Log.Error("register user failed", zap.Error(err))
			c.JSON(http.StatusNotFound, gin.H{"message": "User can't be created"})
			return
		}
		c.JSON(http.StatusOK, u)
	})

	rg.POST("/login", func(c *gin.Context) {
		var req validation.LoginRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		u, err := cfg.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
				return
			}
			if errors.Is(err, users.ErrBadPassword) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Wrong password"})
				return
			}
			cfg.Log.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}

		token, err := cfg.Tokens.Issue(u.ID, u.IsAdmin)
		if err != nil {
			cfg.Log.Error("token issue failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u.Email, "token": token})
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		removed, err := cfg.Users.Delete(c.Request.Context(), c.Param("id"))
		switch {
		case err != nil:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case !removed:
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
		}
	})
}
