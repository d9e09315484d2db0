package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"memedrop.backend/internal/interfaces/http/response"
	"memedrop.backend/pkg/logger"
)

// APIKeyHeader is the header carrying the shared secret
const APIKeyHeader = "X-API-Key"

// ValidAPIKey compares a presented key byte-for-byte against the configured
// secret. Either side empty fails; comparison is case-sensitive.
func ValidAPIKey(presented, secret string) bool {
	if presented == "" || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) == 1
}

// APIKeyAuth gates every request behind the process-wide shared secret.
// Failures get the fixed 401 body before any other processing runs.
func APIKeyAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ValidAPIKey(c.GetHeader(APIKeyHeader), secret) {
			logger.Warn(c.Request.Context(), "Rejected request with invalid API key",
				zap.String("path", c.Request.URL.Path))
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
