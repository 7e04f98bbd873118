package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookstore-storefront/internal/config"
	"bookstore-storefront/internal/session"
	"bookstore-storefront/pkg/apiclient"
	"bookstore-storefront/pkg/logger"
)

// ===================================
// CONSTANTS
// ===================================

const (
	ContextKeyRequestID = "request_id"
	ContextKeySessionID = "session_id"
	ContextKeyToken     = "access_token"
)

// RequestID reuses an inbound X-Request-ID or generates one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Request = c.Request.WithContext(apiclient.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Session identifies the browser session and prepares the request context
//
// Flow:
//  1. Read session_id cookie, issue a new uuid cookie when missing/invalid
//  2. Bind the session id to the request context
//  3. Load the stored access token (or take a Bearer header) and attach it
//     so every backend call made for this request is authenticated
func Session(cfg config.SessionConfig, opener *session.Opener) gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: cookie
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || !isValidSessionID(sessionID) {
			sessionID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.CookieName, sessionID, cfg.MaxAge, "/", cfg.CookieDomain, cfg.CookieSecure, true)
		}

		// STEP 2: context
		ctx := session.WithID(c.Request.Context(), sessionID)

		// STEP 3: token
		var token string
		if _, err := opener.Open(sessionID).Get(ctx, session.KeyAuthToken, &token); err != nil {
			logger.ErrorWithFields("Failed to load session token", err, map[string]interface{}{
				"session_id": sessionID,
				"request_id": c.GetString(ContextKeyRequestID),
			})
		}
		if token == "" {
			token = bearerToken(c.GetHeader("Authorization"))
		}
		if token != "" {
			ctx = apiclient.WithToken(ctx, token)
			c.Set(ContextKeyToken, token)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

func isValidSessionID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// GetSessionID returns the session id set by Session
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
