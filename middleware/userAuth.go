package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"pickbook/database/repository/user"
	"pickbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
)

// JWTAuthUserMiddleware validates the bearer token against the cached token
// hash, falling back to the user record on a cache miss.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := true
		if authCache == nil {
			log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
			cacheEnabled = false
		}

		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash == computedHash {
					_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
					c.Set("userID", userID)
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token mismatch",
					"code":  0,
				})
				return
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
			}
		}

		// Cache miss: check the stored hash on the user record.
		usr, err := repo.GetByIDWithProjection(userID, bson.M{"id": 1, "token_hash": 1})
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token mismatch",
				"code":  0,
			})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}

		c.Set("userID", userID)
		c.Next()
	}
}
