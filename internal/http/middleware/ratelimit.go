package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/ratelimit"
)

// RateLimit enforces a fixed-window per-IP request cap backed by an injected
// counter store. A store failure fails open.
func RateLimit(store ratelimit.CounterStore, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := store.Incr(c.UserContext(), c.IP(), window)
		if err != nil {
			return c.Next()
		}
		if count > int64(limit) {
			return fiber.ErrTooManyRequests
		}
		return c.Next()
	}
}
