package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"soko.backend/pkg/logger"
	"soko.backend/pkg/redis"
)

const (
	inflightPrefix = "inflight:"
	inflightTTL    = 30 * time.Second
)

var (
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

// InflightGuard rejects a request while an identical one, keyed by the
// named path parameter, is still being processed. The database settle
// guard stays authoritative for idempotency; this only keeps double
// submits from racing each other into the payment gateway.
func InflightGuard(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.Param(param)
		if value == "" {
			c.Next()
			return
		}

		key := inflightPrefix + c.FullPath() + ":" + value
		ctx := c.Request.Context()

		acquired, err := redisSetNX(ctx, key, "1", inflightTTL)
		if err != nil {
			// Redis being down must not block payments
			logger.Warn(ctx, "In-flight guard unavailable",
				zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "REQUEST_IN_PROGRESS",
				"message": "An identical request is already being processed",
			})
			return
		}

		c.Next()

		if err := redisDel(ctx, key); err != nil {
			logger.Warn(ctx, "Failed to release in-flight guard",
				zap.String("key", key), zap.Error(err))
		}
	}
}
