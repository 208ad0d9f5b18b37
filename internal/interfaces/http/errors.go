package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shivuu-aqua/aqua-api/internal/application/dto"
	"github.com/shivuu-aqua/aqua-api/internal/domain"
)

// storeTimeout techo por operación para las idas al datastore; ninguna
// petición queda colgada esperando al backend.
const storeTimeout = 10 * time.Second

// opCtx deriva un contexto acotado para una operación de handler.
func opCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), storeTimeout)
}

// respondError traduce errores de dominio a la taxonomía HTTP del API:
// ValidationError -> 400 con detalle por campo, ErrNotFound -> 404,
// ErrInvalidCredentials -> 401 con mensaje uniforme, ErrExternalService -> 502,
// resto -> 500 genérico (el detalle queda en el error, no en la respuesta).
func respondError(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidationError(err); ok {
		fields := make([]dto.FieldError, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			fields = append(fields, dto.FieldError{Field: f.Field, Message: f.Message})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "Validation failed", Errors: fields,
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "Resource not found",
		})
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Mensaje idéntico para usuario inexistente y password incorrecto.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "Invalid credentials",
		})
	case errors.Is(err, domain.ErrExternalService):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "EXTERNAL_SERVICE", Message: "Upstream provider failed",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Something went wrong",
		})
	}
}
