package middleware

import (
	"context"
	"net/http"
	"strings"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/services"
	"alumninet/internal/httputil"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "user_id"
	roleKey   = "role"
)

// AuthMiddleware guards protected routes. A missing or non-Bearer header
// and a failing token are reported with deliberately different messages but
// the same 401; the failure reason inside verification is never exposed.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			httputil.Abort(c, http.StatusUnauthorized, "Access Denied")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authService.ValidateToken(token)
		if err != nil {
			httputil.Abort(c, http.StatusUnauthorized, "Invalid Token")
			return
		}

		// Store principal in gin context and request context
		c.Set(userIDKey, claims.UserID)
		c.Set(roleKey, claims.Role)
		ctx := context.WithValue(c.Request.Context(), userIDKey, string(claims.UserID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// PrincipalID returns the authenticated user ID set by AuthMiddleware.
func PrincipalID(c *gin.Context) (domain.UserID, bool) {
	val, exists := c.Get(userIDKey)
	if !exists {
		return "", false
	}
	userID, ok := val.(domain.UserID)
	return userID, ok
}

// PrincipalRole returns the authenticated user's role claim.
func PrincipalRole(c *gin.Context) (domain.UserRole, bool) {
	val, exists := c.Get(roleKey)
	if !exists {
		return "", false
	}
	role, ok := val.(domain.UserRole)
	return role, ok
}
