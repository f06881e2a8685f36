package middleware

import (
	"net/http"

	"pickbook/database/repository/user"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// RequireRole gates a route group on the authenticated user's role. Must run
// after JWTAuthUserMiddleware.
func RequireRole(repo userRepo.UserRepository, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		usr, err := repo.GetByIDWithProjection(userID, bson.M{"id": 1, "role": 1})
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
