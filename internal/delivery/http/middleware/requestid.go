package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey - ключ request id в Locals
const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID - middleware, присваивающий каждому запросу идентификатор
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDKey, id)
		c.Set(requestIDHeader, id)

		return c.Next()
	}
}
