package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader names the request correlation header.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware adds a unique request ID to each request, reusing
// the caller's when present.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals("requestID", requestID)
		c.Set(RequestIDHeader, requestID)
		return c.Next()
	}
}
