// File: middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	userRepo "attendai/database/repository/user"
	"attendai/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// JWTAuthMiddleware validates the bearer token and checks that it is the
// user's current session. The token hash is looked up in authCache first and
// falls back to the user repository. authCache may be nil.
func JWTAuthMiddleware(repo userRepo.UserRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			unauthorized(c, "Invalid token")
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			switch {
			case err == nil && cachedHash == computedHash:
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set(ContextUserID, userID)
				c.Next()
				return
			case err != nil && !errors.Is(err, redis.Nil):
				logger.Warn("Auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		usr, err := repo.GetByID(ctx, userID)
		if err != nil || usr == nil {
			unauthorized(c, "Authentication error")
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			unauthorized(c, "Token mismatch")
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// RequireOwner rejects requests whose :userId path segment is not the
// authenticated user.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("userId") != c.GetString(ContextUserID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
