package middleware

import (
	"github.com/gin-gonic/gin"

	"bookstore-storefront/internal/shared/utils"
	"bookstore-storefront/pkg/apiclient"
)

// ClientIP extracts the browser address and forwards it on backend calls.
// Register it before Session.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)
		c.Set("client_ip", clientIP)
		c.Request = c.Request.WithContext(apiclient.WithClientIP(c.Request.Context(), clientIP))
		c.Next()
	}
}
