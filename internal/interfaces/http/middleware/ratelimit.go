package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/helpdesk-inc/helpdesk/internal/shared/constants"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils"
)

// RateLimiter provides Redis-backed IP rate limiting using a fixed-window counter.
// Each IP gets a counter key with TTL equal to the window duration, so all
// instances sharing the Redis server share the budget.
type RateLimiter struct {
	redisClient redis.Cmdable
	limit       int
	window      time.Duration
	prefix      string
	now         func() time.Time
	logger      logger.Interface
}

// NewRateLimiter creates a limiter allowing limit requests per window.
// prefix separates the counters of independently limited route groups.
func NewRateLimiter(redisClient redis.Cmdable, limit int, window time.Duration, prefix string, log logger.Interface) *RateLimiter {
	if window < time.Second {
		window = time.Second
	}
	return &RateLimiter{
		redisClient: redisClient,
		limit:       limit,
		window:      window,
		prefix:      prefix,
		now:         time.Now,
		logger:      log,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
// Redis failures let the request through.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		windowBucket := rl.now().Unix() / int64(rl.window/time.Second)
		key := fmt.Sprintf("helpdesk:ratelimit:%s:%s:%d", rl.prefix, c.ClientIP(), windowBucket)
		ctx := c.Request.Context()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int64(rl.window/time.Second)))
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError(constants.ErrMsgTooManyRequests))
			c.Abort()
			return
		}

		c.Next()
	}
}
