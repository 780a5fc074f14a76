package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// IdentityResolver turns a session token into a request identity.
type IdentityResolver interface {
	Identify(ctx context.Context, token string) domain.Identity
}

// SessionMiddleware resolves the caller's session from the cookie, or from an
// "Authorization: Bearer" header, and stores the identity in the request context.
// It never rejects a request: enforcement belongs to the application service.
func SessionMiddleware(resolver IdentityResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c, cookieName)
		identity := domain.Anonymous
		if token != "" {
			identity = resolver.Identify(c.Request.Context(), token)
		}

		ctx := context.WithValue(c.Request.Context(), sessionTokenKey, token)
		ctx = context.WithValue(ctx, identityKey, identity)
		if identity.IsAuthenticated() {
			enriched := GetLoggerFromCtx(ctx).With(slog.String("user_id", identity.UserID))
			ctx = WithLogger(ctx, enriched)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func sessionToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
