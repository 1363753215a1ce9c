package handlers

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "ramgate/internal/log"
)

// ServiceToken authenticates server-to-server calls against a static shared
// secret carried as a bearer credential. Stateless: no session, no cookies.
// An unset secret rejects every request rather than opening the surface.
func ServiceToken(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		authorized := ok && secret != "" &&
			subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
		if !authorized {
			applog.Security(c, "token.reject", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid or missing service token",
			})
		}
		return c.Next()
	}
}

// bearerToken extracts the credential from "Bearer <token>", prefix matched
// case-insensitively.
func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(header[len(prefix):])
	return tok, tok != ""
}
