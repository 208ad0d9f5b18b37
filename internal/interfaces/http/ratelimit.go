package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/shivuu-aqua/aqua-api/internal/application/dto"
	"github.com/shivuu-aqua/aqua-api/pkg/config"
)

// RateLimiter ventana deslizante por IP para la API general. Es backpressure
// advisory, no un mecanismo de correctitud.
func RateLimiter(cfg config.RateLimitConfig) fiber.Handler {
	return newLimiter(cfg.Max, cfg.WindowMinutes, "Too many requests, please try again later")
}

// UploadRateLimiter techo independiente y más estricto para /api/upload
// (las subidas al media host son más costosas que una petición JSON).
func UploadRateLimiter(cfg config.RateLimitConfig) fiber.Handler {
	return newLimiter(cfg.UploadMax, cfg.WindowMinutes, "Too many upload requests, please try again later")
}

func newLimiter(max, windowMinutes int, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        time.Duration(windowMinutes) * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: message,
			})
		},
	})
}
