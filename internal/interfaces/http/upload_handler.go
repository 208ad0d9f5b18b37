package http

import (
	"context"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shivuu-aqua/aqua-api/internal/application/dto"
	"github.com/shivuu-aqua/aqua-api/internal/application/ports"
	"github.com/shivuu-aqua/aqua-api/internal/infrastructure/cloudinary"
)

// uploadTimeout techo propio de la subida al media host (más holgado que el de store).
const uploadTimeout = 30 * time.Second

// UploadHandler recibe el logo multipart y lo releva al media host.
type UploadHandler struct {
	uploader ports.MediaUploader
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uploader ports.MediaUploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload godoc
// @Summary      Subir logo para personalización de etiqueta
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file  true  "Imagen (máx 5MB)"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "No file uploaded"})
	}
	// Rechazo temprano por tamaño, antes de leer el contenido a memoria.
	if fileHeader.Size > cloudinary.MaxUploadBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "Validation failed",
			Errors: []dto.FieldError{{Field: "logo", Message: "file must not exceed 5MB"}},
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), uploadTimeout)
	defer cancel()
	result, err := h.uploader.Upload(ctx, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.UploadResponse{Success: true, URL: result.URL, PublicID: result.PublicID})
}
