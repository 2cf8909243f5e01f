package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
)

// APIKeyHeader carries the shared API key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth validates the X-API-Key header against apiKey. An empty apiKey
// leaves the routes open. Rejections are recorded on the context and rendered
// by ErrorHandler; without it the caller still gets a bare 401.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			c.Status(apperrors.ErrUnauthorized.StatusCode)
			_ = c.Error(apperrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}
