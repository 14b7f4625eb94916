package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/hatchery_backend/utils"
)

// AuthMiddleware requires a valid bearer access token on every request.
// Unauthenticated calls are rejected before any handler touches the store.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.Request.Header.Get("Authorization")

		const bearer = "Bearer "
		if !strings.HasPrefix(auth, bearer) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication credentials were not provided"})
			c.Abort()
			return
		}

		claims, err := utils.JwtValidateTyped(auth[len(bearer):], utils.TokenTypeAccess)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		ctx := utils.SetUserIdInContext(c.Request.Context(), claims.ID)
		ctx = utils.SetUsernameInContext(ctx, claims.Username)
		ctx = utils.SetTokenInContext(ctx, auth[len(bearer):])
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
