package middleware

import (
	"github.com/gin-gonic/gin"

	"bookstore-storefront/internal/shared/response"
)

// AdminMiddleware checks if user has admin role (run after AuthMiddleware)
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok || !claims.IsAdmin() {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
