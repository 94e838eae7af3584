package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", c.Request.URL.Path, callerKey(c))

		ctx := c.Request.Context()
		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// callerKey buckets requests by token identity where the auth middlewares
// have run, and by client IP for anonymous traffic. Moderator and user ids
// come from separate tables, so they get distinct prefixes.
func callerKey(c *gin.Context) string {
	if id := c.GetString("moderator_id"); id != "" {
		return "moderator:" + id
	}
	if id := c.GetString("user_id"); id != "" {
		return "user:" + id
	}
	return c.ClientIP()
}
