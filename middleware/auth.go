package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	userRepo "urbanpilgrim/database/repository/user"
	"urbanpilgrim/utils"
)

// JWTAuthMiddleware authenticates requests via a Bearer token. The token hash
// is checked against the Redis auth cache first, falling back to the user
// document on a miss. With optional=true an absent or invalid token leaves
// the request anonymous instead of aborting; handlers read "userID" presence
// to tell the two apart.
func JWTAuthMiddleware(repo userRepo.UserRepository, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			deny(c, optional)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			deny(c, optional)
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			deny(c, optional)
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID
		authCache := utils.GetAuthCacheClient()

		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash == computedHash {
				// Refresh the TTL and continue.
				_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
				c.Set("userID", userID)
				c.Next()
				return
			}
			deny(c, optional)
			return
		} else if err != redis.Nil {
			utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
		}

		// Cache miss: check the stored token hash.
		usr, err := repo.GetByID(userID)
		if err != nil || usr == nil {
			deny(c, optional)
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			deny(c, optional)
			return
		}

		// Refill the cache for subsequent requests.
		if err := authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to refill auth cache", zap.Error(err))
		}

		c.Set("userID", userID)
		c.Next()
	}
}

func deny(c *gin.Context, optional bool) {
	if optional {
		c.Next()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": "Insufficient authorization",
	})
}
