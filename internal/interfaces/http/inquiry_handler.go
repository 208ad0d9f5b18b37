package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shivuu-aqua/aqua-api/internal/application/dto"
	"github.com/shivuu-aqua/aqua-api/internal/application/usecase"
)

// InquiryHandler maneja el alta pública de inquiries y el triaje del admin.
type InquiryHandler struct {
	uc *usecase.InquiryUseCase
}

// NewInquiryHandler construye el handler.
func NewInquiryHandler(uc *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

// Create godoc
// @Summary      Enviar un inquiry (público)
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInquiryRequest  true  "Datos del inquiry"
// @Success      201   {object}  dto.InquiryCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inquiry [post]
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	ctx, cancel := opCtx(c)
	defer cancel()
	out, err := h.uc.Create(ctx, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InquiryCreatedResponse{
		Success: true,
		Message: "Inquiry submitted successfully",
		Data:    *out,
	})
}

// List godoc
// @Summary      Listar inquiries con filtro y paginación
// @Tags         inquiry
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "New | Contacted | Converted"
// @Param        page    query  int     false  "Página (>=1)"  default(1)
// @Param        limit   query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.InquiryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inquiry [get]
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	ctx, cancel := opCtx(c)
	defer cancel()
	out, err := h.uc.List(ctx, status, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de un inquiry
// @Tags         inquiry
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del inquiry"
// @Param        body  body  dto.UpdateInquiryStatusRequest  true  "Nuevo estado"
// @Success      200  {object}  dto.InquiryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inquiry/{id} [patch]
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateInquiryStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	ctx, cancel := opCtx(c)
	defer cancel()
	out, err := h.uc.UpdateStatus(ctx, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": out})
}

// ExportCSV godoc
// @Summary      Exportar inquiries a CSV
// @Tags         inquiry
// @Security     Bearer
// @Produce      text/csv
// @Param        status  query  string  false  "Filtro opcional de estado"
// @Success      200  {string}  string  "CSV"
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inquiry/export/csv [get]
func (h *InquiryHandler) ExportCSV(c *fiber.Ctx) error {
	ctx, cancel := opCtx(c)
	defer cancel()
	payload, err := h.uc.ExportCSV(ctx, c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=inquiries.csv`)
	return c.Send(payload)
}
