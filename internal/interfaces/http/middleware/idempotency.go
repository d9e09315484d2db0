package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"memedrop.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the recorded response
	RetentionDuration = 24 * time.Hour

	processingSentinel = "processing"
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

type recordedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type bodyCapturingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyCapturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the recorded response when a request
// carries an Idempotency-Key already seen on this route. Requests without
// the header pass through untouched.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		// There is no per-user identity behind the shared API key, so the
		// route itself scopes the key.
		storageKey := fmt.Sprintf("idempotency:%s:%s", c.FullPath(), key)
		ctx := c.Request.Context()

		if val, err := redisGet(ctx, storageKey); err == nil {
			if val == processingSentinel {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"error": "Request already in progress",
				})
				return
			}
			var rec recordedResponse
			if err := json.Unmarshal([]byte(val), &rec); err == nil {
				c.Header("Idempotency-Replayed", "true")
				c.Data(rec.Status, "application/json", []byte(rec.Body))
				c.Abort()
				return
			}
		}

		acquired, err := redisSetNX(ctx, storageKey, processingSentinel, LockDuration)
		if err != nil || !acquired {
			// Redis unavailable or a concurrent holder; let the request
			// through rather than fail it.
			c.Next()
			return
		}

		writer := bodyCapturingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusInternalServerError {
			// Do not pin failures; the client may retry.
			_ = redisDel(ctx, storageKey)
			return
		}

		raw, err := json.Marshal(recordedResponse{Status: status, Body: writer.body.String()})
		if err != nil {
			_ = redisDel(ctx, storageKey)
			return
		}
		_ = redisSet(ctx, storageKey, string(raw), RetentionDuration)
	}
}
