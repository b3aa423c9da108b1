package middleware

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/models"
	"Backend-Yeoun-Survey/src/utils"
)

const (
	sessionKey = "session"
	claimsKey  = "claims"
)

// AuthJWT verifies the bearer token, rejects revoked tokens and stores the
// caller session on the context.
func AuthJWT(issuer *utils.TokenIssuer, sessions *utils.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.HandleLocalizedError(c, fiber.StatusUnauthorized, i18n.MsgAuthRequired)
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ParseJWT(tokenStr)
		if err != nil {
			return utils.HandleLocalizedError(c, fiber.StatusUnauthorized, i18n.MsgAuthRequired)
		}

		revoked, err := sessions.IsTokenBlacklisted(c.UserContext(), tokenStr)
		if err != nil {
			log.Println("⚠️ Blacklist check failed:", err)
		}
		if revoked {
			return utils.HandleLocalizedError(c, fiber.StatusUnauthorized, i18n.MsgAuthRequired)
		}

		c.Locals(sessionKey, claims.Session(tokenStr))
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// SessionFrom returns the caller stored by AuthJWT.
func SessionFrom(c *fiber.Ctx) (models.Session, bool) {
	sess, ok := c.Locals(sessionKey).(models.Session)
	return sess, ok
}

func ClaimsFrom(c *fiber.Ctx) (*utils.JWTClaims, bool) {
	claims, ok := c.Locals(claimsKey).(*utils.JWTClaims)
	return claims, ok
}

// AdminLookup loads the current user record.
type AdminLookup func(ctx context.Context, userID string) (*models.User, error)

// AdminOnly checks isAdmin on the stored user, not on the token, so a
// promotion applies without a new login.
func AdminOnly(lookup AdminLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFrom(c)
		if !ok {
			return utils.HandleLocalizedError(c, fiber.StatusUnauthorized, i18n.MsgAuthRequired)
		}
		user, err := lookup(c.UserContext(), sess.UserID)
		if err != nil || user == nil || !user.IsAdmin {
			return utils.HandleLocalizedError(c, fiber.StatusForbidden, i18n.MsgAdminRequired)
		}
		sess.IsAdmin = true
		c.Locals(sessionKey, sess)
		return c.Next()
	}
}
