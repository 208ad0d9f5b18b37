package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/shivuu-aqua/aqua-api/internal/interfaces/http"
	"github.com/shivuu-aqua/aqua-api/pkg/config"
)

// Por encima del techo de la ventana, las peticiones de la misma IP reciben 429.
func TestUploadRateLimiter_TechoPorIP(t *testing.T) {
	cfg := config.RateLimitConfig{Max: 100, UploadMax: 2, WindowMinutes: 15}

	app := fiber.New()
	app.Post("/u", apihttp.UploadRateLimiter(cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(nethttp.MethodPost, "/u", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodPost, "/u", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	payload := decodeJSON(t, resp)
	assert.Equal(t, "RATE_LIMITED", payload["code"])
}
