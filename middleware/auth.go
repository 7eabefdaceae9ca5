package middleware

import (
	"net/http"
	"strings"

	"auction-house/models"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

const identityContextKey = "identity"

// AuthMiddleware resolves the Bearer token to a (userId, isAdmin) identity
// and stores it on the request context. Requests without a valid token are
// rejected with 401.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1], jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(identityContextKey, models.Identity{ID: claims.UserID, IsAdmin: claims.IsAdmin})
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by AuthMiddleware.
func IdentityFromContext(c *gin.Context) (models.Identity, bool) {
	value, ok := c.Get(identityContextKey)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}

// SetIdentity stores an identity on the context. Intended for tests.
func SetIdentity(c *gin.Context, identity models.Identity) {
	c.Set(identityContextKey, identity)
}
