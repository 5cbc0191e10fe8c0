package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/x00/Application-Yaga/pkg/apperror"
	"github.com/x00/Application-Yaga/pkg/response"
)

// SetNXClient is the slice of the redis API the limiter needs.
// *redis.Client satisfies it.
type SetNXClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// RateLimit locks an action per user for the given duration. A nil client
// disables the limit entirely (local development without Redis).
func RateLimit(rdb SetNXClient, action string, limit time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		userID, err := response.GetUserID(c)
		if err != nil {
			response.ResponseError(c, err)
			c.Abort()
			return
		}

		key := fmt.Sprintf("rate_limit:user:%d:%s", userID, action)

		wasSet, err := rdb.SetNX(c.Request.Context(), key, "locked", limit).Result()
		if err != nil {
			// Redis being down should not block writes, the store is authoritative
			c.Next()
			return
		}

		if !wasSet {
			response.ResponseError(c, apperror.ErrRateLimitExceeded)
			c.Abort()
			return
		}

		c.Next()
	}
}
