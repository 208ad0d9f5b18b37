package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shivuu-aqua/aqua-api/internal/application/auth"
	"github.com/shivuu-aqua/aqua-api/internal/application/dto"
)

// AuthHandler maneja el login del panel de admin.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Login de admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	ctx, cancel := opCtx(c)
	defer cancel()
	out, err := h.uc.Login(ctx, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
