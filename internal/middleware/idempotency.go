package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	idempotencyLockTTL   = 5 * time.Minute
)

// Idempotency replays the cached response of a POST already completed with
// the same Idempotency-Key and rejects one still in flight. The handler owns
// releasing idempotency_lock_key and writing idempotency_cache_key.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyKeyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := contextutil.GetLogger(ctx, zap.L()).Named("middleware.idempotency")

		// The path carries the pay period id, so one key cannot replay a
		// response across periods.
		cacheKey := fmt.Sprintf("idemp:%s:%s", c.Request.URL.RequestURI(), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Bytes()
		if err == nil {
			c.Header("Idempotent-Replayed", "true")
			response.Success(c, http.StatusOK, json.RawMessage(val), nil)
			c.Abort()
			return
		}
		if err != redis.Nil {
			log.Warn("idempotency cache unavailable, serving without replay", zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock unavailable, serving without lock", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				"a request with this idempotency key is still being processed", nil)
			c.Abort()
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}
