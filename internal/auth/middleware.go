package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	principalContextKey = "auth_principal_id"
	tokenContextKey     = "auth_token"
)

// Middleware verifies the bearer credential before any business logic runs.
// A request either leaves with a 401/500 or continues with the resolved
// principal attached to the context.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
			return
		}
		token := strings.TrimSpace(authHeader[7:])

		principalID, err := s.VerifyToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			s.log.Error("token verification failed", "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(principalContextKey, principalID)
		c.Set(tokenContextKey, token)
		c.Next()
	}
}

// PrincipalFromContext retrieves the authenticated principal id.
func PrincipalFromContext(c *gin.Context) (string, bool) {
	val, ok := c.Get(principalContextKey)
	if !ok {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}

// TokenFromContext retrieves the bearer token captured by the middleware.
func TokenFromContext(c *gin.Context) (string, bool) {
	val, ok := c.Get(tokenContextKey)
	if !ok {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}
