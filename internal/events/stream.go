package events

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"bookstore-storefront/internal/session"
	"bookstore-storefront/internal/shared/response"
)

// StreamTopics are forwarded to the browser by Stream
var StreamTopics = []string{
	TopicCartChanged,
	TopicFavoriteIDsUpdated,
	TopicFavoriteChanged,
	TopicPaymentSettled,
}

const streamBuffer = 16

// Stream forwards the session's events as SSE; the event name is the topic.
// GET /api/v1/events
func Stream(sub Subscriber, heartbeat time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := session.IDFromContext(c.Request.Context())
		if sessionID == "" {
			response.Unauthorized(c, "No session")
			return
		}

		// Handlers run on the publisher's goroutine: never block it, drop instead
		ch := make(chan Event, streamBuffer)
		forward := SessionFilter(sessionID, func(evt Event) {
			select {
			case ch <- evt:
			default:
			}
		})
		for _, topic := range StreamTopics {
			unsubscribe := sub.Subscribe(topic, forward)
			defer unsubscribe()
		}

		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()

		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no")
		c.Stream(func(w io.Writer) bool {
			select {
			case <-c.Request.Context().Done():
				return false
			case evt := <-ch:
				c.SSEvent(evt.Topic(), evt)
				return true
			case t := <-ticker.C:
				c.SSEvent("ping", t.Unix())
				return true
			}
		})
	}
}
