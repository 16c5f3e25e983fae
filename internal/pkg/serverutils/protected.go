package serverutils

import (
	"strings"

	"legalbridge-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by Protected.
const (
	LocalUserID  = "user_id"
	LocalSession = "session"
)

// Protected resolves the bearer token against the session cache. A request
// either carries a live cached session or is told where to sign in; there is
// no in-between state once the listener is up.
func Protected(secret string, sessions *memory.SessionCache) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return NewSessionAbsentError()
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := ParseAccessToken(secret, tokenStr)
		if err != nil {
			return err
		}

		session, found := sessions.Get(claims.TokenID)
		if !found {
			// Token is signed but the session was revoked or never cached.
			return NewSessionAbsentError()
		}

		ctx.Locals(LocalUserID, session.UserID)
		ctx.Locals(LocalSession, session)
		return ctx.Next()
	}
}
