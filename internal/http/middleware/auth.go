// README: Admin session middleware; verifies Bearer tokens and stores caller identity.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jatriwheels/internal/modules/admin"
	"jatriwheels/internal/types"
)

const (
	ctxAdminID = "adminID"
	ctxRole    = "adminRole"
)

// SessionVerifier checks a presented session token. Satisfied by
// *admin.Service.
type SessionVerifier interface {
	Authenticate(ctx context.Context, token string) (*admin.Claims, error)
}

// Auth rejects requests without a valid admin Bearer token. A revoked
// or malformed token is indistinguishable to the caller.
func Auth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := verifier.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}
		c.Set(ctxAdminID, claims.AdminID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// CallerAdminID returns the authenticated admin's ID, or "" when the
// request did not pass Auth.
func CallerAdminID(c *gin.Context) types.ID {
	if v, ok := c.Get(ctxAdminID); ok {
		if id, ok := v.(types.ID); ok {
			return id
		}
	}
	return ""
}

// CallerRole returns the authenticated admin's role, or "".
func CallerRole(c *gin.Context) string {
	if v, ok := c.Get(ctxRole); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
