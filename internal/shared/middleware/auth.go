package middleware

import (
	"github.com/gin-gonic/gin"

	"bookstore-storefront/internal/shared/response"
	"bookstore-storefront/pkg/jwt"
)

const ContextKeyClaims = "claims"

// AuthMiddleware requires a live access token on the session.
// The backend stays the authority; this only avoids calls that would 401.
func AuthMiddleware(inspector *jwt.Inspector) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := inspector.Inspect(c.GetString(ContextKeyToken))
		if err != nil {
			response.Unauthorized(c, "Please log in to continue")
			c.Abort()
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// GetClaims returns claims set by AuthMiddleware
func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(ContextKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
