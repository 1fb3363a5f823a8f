package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"soko.backend/pkg/logger"
	"soko.backend/pkg/redis"
)

const cachePrefix = "httpcache:"

var (
	redisGet        = redis.Get
	redisSet        = redis.Set
	redisDelPattern = redis.DelPattern
)

type cacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheMiddleware serves GET responses from Redis for the given TTL.
// Only 200 responses are stored.
func CacheMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cachePrefix + c.Request.URL.RequestURI()
		ctx := c.Request.Context()

		if cached, err := redisGet(ctx, key); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			c.Abort()
			return
		}

		writer := &cacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			if err := redisSet(ctx, key, writer.body.String(), ttl); err != nil {
				logger.Warn(ctx, "Failed to cache response",
					zap.String("key", key), zap.Error(err))
			}
		}
	}
}

// InvalidateCache drops every cached response whose path starts with the
// given prefix. Write handlers call this after mutating cached resources.
func InvalidateCache(c *gin.Context, pathPrefix string) {
	ctx := c.Request.Context()
	if err := redisDelPattern(ctx, cachePrefix+pathPrefix+"*"); err != nil {
		logger.Warn(ctx, "Failed to invalidate cache",
			zap.String("prefix", pathPrefix), zap.Error(err))
	}
}
