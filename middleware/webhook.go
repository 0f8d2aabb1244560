package middleware

import (
	"crypto/subtle"
	"net/http"

	"handyman-orders/models"

	"github.com/gin-gonic/gin"
)

// WebhookAuthMiddleware guards webhook endpoints with a shared secret. The
// X-Webhook-Key header must be present exactly once and match exactly,
// case-sensitive. An empty expectedKey means the server itself is
// misconfigured, which is a 500, not a client auth failure.
func WebhookAuthMiddleware(expectedKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expectedKey == "" {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Message: "Server is missing WEBHOOK_API_KEY configuration.",
			})
			c.Abort()
			return
		}

		keys := c.Request.Header.Values("X-Webhook-Key")
		if len(keys) != 1 {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Invalid webhook key.",
			})
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(keys[0]), []byte(expectedKey)) != 1 {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Invalid webhook key.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
