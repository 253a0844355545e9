package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/lk16/checkers/internal/config"
)

// BasicAuth middleware that checks for basic auth credentials.
func BasicAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

		handler := basicauth.New(basicauth.Config{
			Users: map[string]string{
				cfg.BasicAuthUsername: cfg.BasicAuthPassword,
			},
			Realm: "Restricted",
			Unauthorized: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Unauthorized",
				})
			},
		})

		return handler(c)
	}
}

// AuthOrToken middleware that accepts either basic auth or a token. The token is read from the
// x-token header, or from the token query parameter for clients that cannot set headers, such
// as browser websockets.
func AuthOrToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

		token := c.Get("x-token")
		if token == "" {
			token = c.Query("token")
		}

		if token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Token)) == 1 {
			return c.Next()
		}

		return BasicAuth()(c)
	}
}
