package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shivuu-aqua/aqua-api/internal/application/auth"
	"github.com/shivuu-aqua/aqua-api/internal/application/ports"
	"github.com/shivuu-aqua/aqua-api/internal/application/usecase"
	"github.com/shivuu-aqua/aqua-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InquiryUC *usecase.InquiryUseCase
	ProductUC *usecase.ProductUseCase
	AuthUC    *auth.AuthUseCase
	Uploader  ports.MediaUploader
	JWTSecret string
	RateLimit config.RateLimitConfig
}

// Router registra las rutas del API. Todo /api pasa por el rate limit general;
// /api/upload además por su techo propio más estricto.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RateLimiter(deps.RateLimit))

	requireAdmin := AuthMiddleware(deps.JWTSecret)

	// Inquiries: alta pública; triaje y export protegidos
	inquiryHandler := NewInquiryHandler(deps.InquiryUC)
	inquiries := api.Group("/inquiry")
	inquiries.Post("/", inquiryHandler.Create)
	inquiries.Get("/", requireAdmin, inquiryHandler.List)
	inquiries.Get("/export/csv", requireAdmin, inquiryHandler.ExportCSV)
	inquiries.Patch("/:id", requireAdmin, inquiryHandler.UpdateStatus)
	inquiries.Put("/:id", requireAdmin, inquiryHandler.UpdateStatus)

	// Catálogo: lectura pública, escritura de admin
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", requireAdmin, productHandler.Create)
	products.Put("/:id", requireAdmin, productHandler.Update)
	products.Delete("/:id", requireAdmin, productHandler.Delete)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/admin/login", authHandler.Login)

	// Upload de logos (público, techo de rate limit independiente)
	uploadHandler := NewUploadHandler(deps.Uploader)
	api.Post("/upload", UploadRateLimiter(deps.RateLimit), uploadHandler.Upload)
}
