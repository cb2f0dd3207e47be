package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware for downstream handlers.
const (
	ContextUserID  = "userID"
	ContextIsAdmin = "isAdmin"
)

// publicPath reports whether the request may pass without a token.
// Catalog reads, login/register and the static uploads are open; everything
// else requires a bearer token.
func publicPath(method, path, basePath string) bool {
	if strings.HasPrefix(path, "/public/uploads") || path == "/health" {
		return true
	}
	rel := strings.TrimPrefix(path, basePath)
	if method == http.MethodGet &&
		(strings.HasPrefix(rel, "/products") || strings.HasPrefix(rel, "/categories")) {
		return true
	}
	if method == http.MethodPost && (rel == "/users/login" || rel == "/users/register") {
		return true
	}
	return false
}

// Middleware enforces the bearer-token convention on every non-public route.
func Middleware(tm *TokenManager, basePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if publicPath(c.Request.Method, c.Request.URL.Path, basePath) {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "The user is not authorized"})
			return
		}

		claims, err := tm.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "The user is not authorized"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Next()
	}
}
