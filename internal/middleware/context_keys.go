package middleware

import (
	"context"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	identityKey     = contextKey("identity")
	sessionTokenKey = contextKey("sessionToken")
)

// GetIdentityFromContext returns the identity resolved by SessionMiddleware.
// Requests that never went through the middleware are anonymous.
func GetIdentityFromContext(c *gin.Context) domain.Identity {
	return IdentityFromCtx(c.Request.Context())
}

// IdentityFromCtx reads the identity from a standard context.
func IdentityFromCtx(ctx context.Context) domain.Identity {
	if identity, ok := ctx.Value(identityKey).(domain.Identity); ok {
		return identity
	}
	return domain.Anonymous
}

// GetSessionTokenFromContext returns the raw session token the client presented, if any.
func GetSessionTokenFromContext(c *gin.Context) string {
	token, _ := c.Request.Context().Value(sessionTokenKey).(string)
	return token
}
