package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/stargazed/core/internal/models"
	"github.com/stargazed/core/internal/pkg/jwt"
	"github.com/stargazed/core/internal/pkg/response"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

// Auth returns a middleware that enforces cookie-based JWT authentication.
// The httpOnly cookie is the sole authorization input; headers are not
// consulted.
func Auth(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseCookieToken(c, cookieName)
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, models.Role(claims.Role))
		c.Next()
	}
}

// OptionalAuth sets the identity if a valid token cookie is present, but does
// not block the request.
func OptionalAuth(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseCookieToken(c, cookieName); err == nil && claims.UserID != "" {
			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyRole, models.Role(claims.Role))
		}
		c.Next()
	}
}

// RequireRole gates a route behind a minimum role rank. Must run after Auth.
// A valid token with insufficient rank gets 403, never 401.
func RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := currentRole(c)
		if !ok {
			response.Unauthorized(c)
			return
		}
		if !role.AtLeast(min) {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentRole extracts the authenticated role from context.
func CurrentRole(c *gin.Context) models.Role {
	role, _ := currentRole(c)
	return role
}

// IsAuthenticated returns true if the request carries a valid auth token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

func currentRole(c *gin.Context) (models.Role, bool) {
	v, ok := c.Get(ContextKeyRole)
	if !ok {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}

// parseCookieToken reads and verifies the access token cookie. Verification
// is stateless; any failure yields an error, never a panic across the
// boundary.
func parseCookieToken(c *gin.Context, cookieName string) (*jwt.Claims, error) {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return nil, err
	}
	return jwt.Parse(raw)
}
