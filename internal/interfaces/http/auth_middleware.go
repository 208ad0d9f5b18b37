package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shivuu-aqua/aqua-api/internal/application/dto"
	"github.com/shivuu-aqua/aqua-api/pkg/jwt"
)

// LocalAdminID key de c.Locals con el id del admin autenticado.
const LocalAdminID = "admin_id"

// AuthMiddleware valida el Bearer Token JWT y expone el AdminID en c.Locals.
// No re-consulta la existencia del admin en el store: el token vale hasta su
// expiración natural (ver decisión en DESIGN.md).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Expected format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Token is empty"})
		}
		adminID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Invalid or expired token"})
		}
		c.Locals(LocalAdminID, adminID)
		return c.Next()
	}
}

// GetAdminID devuelve el AdminID del contexto (después del middleware de auth).
func GetAdminID(c *fiber.Ctx) string {
	v := c.Locals(LocalAdminID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
