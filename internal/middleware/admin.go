package middleware

import (
	"context"
	"net/http"
	"strings"

	"teenxcel/config"
	"teenxcel/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	ContextAdminID = "admin_id"
	ContextClaims  = "claims"
)

// Authenticator resolves an admin session token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// AdminRequired accepts the session cookie first, then an Authorization
// Bearer header, and stores the admin's claims in the context.
func AdminRequired(cfg *config.JWTConfig, authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := AdminToken(c, cfg.CookieName)
		if token == "" {
			abort(c, http.StatusUnauthorized, "unauthorized request")
			return
		}
		claims, err := authn.Authenticate(c.Request.Context(), token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid or expired session")
			return
		}
		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// AdminToken extracts the raw session token from the request, if any.
func AdminToken(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetAdminClaims returns the claims set by AdminRequired.
func GetAdminClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"statusCode": status,
		"message":    message,
		"success":    false,
		"errors":     []string{},
	})
}
