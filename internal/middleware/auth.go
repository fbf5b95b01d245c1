package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"testpro/internal/domain"
	"testpro/internal/service"
)

const (
	ContextKeyViewer = "viewer"
	ContextKeyClaims = "claims"
)

// OptionalAuth validates a bearer token when one is sent. Requests without an
// Authorization header continue as guests; a present but invalid token is rejected.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(ContextKeyViewer, domain.Viewer{Role: domain.RoleGuest})
			c.Next()
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authorization header",
				"code":  "UNAUTHORIZED",
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
				"code":  "UNAUTHORIZED",
			})
			return
		}

		c.Set(ContextKeyViewer, claims.Viewer())
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireRole returns middleware that checks the viewer's role against allowed roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := GetViewer(c)
		if viewer.IsGuest() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
				"code":  "UNAUTHORIZED",
			})
			return
		}

		for _, r := range roles {
			if viewer.Role == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "insufficient permissions",
			"code":  "FORBIDDEN",
		})
	}
}

// GetViewer extracts the viewer from the Gin context. Missing viewers are guests.
func GetViewer(c *gin.Context) domain.Viewer {
	val, exists := c.Get(ContextKeyViewer)
	if !exists {
		return domain.Viewer{Role: domain.RoleGuest}
	}
	v, ok := val.(domain.Viewer)
	if !ok {
		return domain.Viewer{Role: domain.RoleGuest}
	}
	return v
}
