package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appauth "github.com/shivuu-aqua/aqua-api/internal/application/auth"
	"github.com/shivuu-aqua/aqua-api/internal/application/ports"
	"github.com/shivuu-aqua/aqua-api/internal/application/usecase"
	"github.com/shivuu-aqua/aqua-api/internal/domain/repository"
	"github.com/shivuu-aqua/aqua-api/internal/infrastructure/cloudinary"
	"github.com/shivuu-aqua/aqua-api/internal/infrastructure/email"
	"github.com/shivuu-aqua/aqua-api/internal/infrastructure/mongodb"
	"github.com/shivuu-aqua/aqua-api/internal/infrastructure/postgres"
	httpRouter "github.com/shivuu-aqua/aqua-api/internal/interfaces/http"
	"github.com/shivuu-aqua/aqua-api/pkg/config"
	"github.com/shivuu-aqua/aqua-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Cliente de persistencia: uno por proceso, inyectado y cerrado en shutdown.
	var (
		inquiryRepo repository.InquiryRepository
		productRepo repository.ProductRepository
		adminRepo   repository.AdminRepository
		closeStore  func()
	)
	switch cfg.Store.Driver {
	case "mongodb":
		client, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MongoDB")
		}
		db := client.Database(cfg.Mongo.DBName)
		inquiryRepo = mongodb.NewInquiryRepository(db)
		productRepo = mongodb.NewProductRepository(db)
		adminRepo = mongodb.NewAdminRepository(db)
		closeStore = func() { _ = client.Disconnect(context.Background()) }
	default: // postgres (Supabase)
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		inquiryRepo = postgres.NewInquiryRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
		adminRepo = postgres.NewAdminRepository(pool)
		closeStore = pool.Close
	}
	defer closeStore()

	// Relay de notificaciones: best-effort, solo si hay SMTP configurado.
	var notifier ports.Notifier
	if cfg.SMTP.Enabled() {
		notifier = email.NewNotifier(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP no configurado: las notificaciones de inquiry quedan deshabilitadas")
	}

	inquiryUC := usecase.NewInquiryUseCase(inquiryRepo, notifier)
	productUC := usecase.NewProductUseCase(productRepo)
	authUC := appauth.NewAuthUseCase(adminRepo, appauth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	})
	uploader := cloudinary.NewClient(cfg.Cloudinary)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // margen sobre el techo de 5MB del upload
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Shivuu Aqua API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InquiryUC: inquiryUC,
		ProductUC: productUC,
		AuthUC:    authUC,
		Uploader:  uploader,
		JWTSecret: cfg.JWT.Secret,
		RateLimit: cfg.RateLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
