package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// VersionHeader carries the negotiated API version on both sides.
const VersionHeader = "X-Api-Version"

// VersionMiddleware resolves the X-Api-Version header against the
// configured default and echoes the result on the response.
func VersionMiddleware(defaultVersion string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get(VersionHeader, defaultVersion)

		// Support version aliases
		if version == "1.0" {
			version = "1.0.0"
		}

		c.Locals("apiVersion", version)
		c.Set(VersionHeader, version)

		return c.Next()
	}
}
