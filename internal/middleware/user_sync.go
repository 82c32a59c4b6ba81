package middleware

import (
	"context"
	"time"

	"go-leave/internal/shared/contextutil"
	"go-leave/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const userSyncTTL = 10 * time.Minute

type UserSyncer interface {
	Sync(ctx context.Context, req user.SyncUserRequest) error
}

func userSyncKey(userID string) string {
	return "user_synced:" + userID
}

// SyncUser mirrors the token's identity into the users table, at most once
// per userSyncTTL per user when Redis is available. Failures are logged and
// never block the request.
func SyncUser(syncer UserSyncer, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		email := c.GetString("user_email")
		if userID == "" || email == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		if rdb != nil {
			fresh, err := rdb.SetNX(ctx, userSyncKey(userID), "1", userSyncTTL).Result()
			if err == nil && !fresh {
				c.Next()
				return
			}
		}

		err := syncer.Sync(ctx, user.SyncUserRequest{
			ID:    userID,
			Name:  c.GetString("user_name"),
			Email: email,
		})
		if err != nil {
			contextutil.GetLogger(ctx, zap.L()).Warn("user sync failed", zap.Error(err))
			if rdb != nil {
				rdb.Del(ctx, userSyncKey(userID))
			}
		}

		c.Next()
	}
}
