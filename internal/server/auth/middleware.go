package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const localsUserKey = "username"

// Middleware enforces a valid bearer token on protected routes. A rejected
// request mirrors the token endpoint's failure shape: 401 with a detail body
// and a WWW-Authenticate header.
func Middleware(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}

		username, err := tokens.Validate(parts[1])
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(localsUserKey, username)
		return c.Next()
	}
}

// CurrentUser returns the username set by Middleware.
func CurrentUser(c *fiber.Ctx) string {
	username, _ := c.Locals(localsUserKey).(string)
	return username
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"detail": "Could not validate credentials",
	})
}
