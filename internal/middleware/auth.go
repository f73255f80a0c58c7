package middleware

import (
	"net/http"
	"strings"

	"github.com/evento-ems/evento/internal/auth"
	"github.com/evento-ems/evento/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"

	// TokenCookie is the cookie the login handler sets.
	TokenCookie = "token"
)

// Auth accepts the access token either from the auth cookie or from a
// Bearer header and puts the claims on the request context.
func Auth(tokens *auth.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authentication required"})
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Set(CtxUserID, claims.Sub)
		c.Set(CtxUserRole, claims.Role)

		c.Next()
	}
}

func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if c.GetString(CtxUserRole) != string(domain.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "admin access required"})
			return
		}

		c.Next()
	}
}

func extractToken(c *ginext.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie
	}

	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}

	return ""
}
