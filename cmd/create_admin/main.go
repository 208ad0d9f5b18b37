// create_admin aprovisiona la cuenta de admin del panel. Se ejecuta fuera del
// API (no hay registro self-service): lee credenciales del entorno, hashea el
// password con bcrypt y escribe en el backend configurado por STORE_DRIVER.
// Es idempotente: si el username ya existe, termina sin tocar nada.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
	"github.com/shivuu-aqua/aqua-api/internal/domain/repository"
	"github.com/shivuu-aqua/aqua-api/internal/infrastructure/mongodb"
	"github.com/shivuu-aqua/aqua-api/internal/infrastructure/postgres"
	"github.com/shivuu-aqua/aqua-api/pkg/config"
	"github.com/shivuu-aqua/aqua-api/pkg/logger"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	v := viper.New()
	v.AutomaticEnv()
	username := stringOr(v, "ADMIN_USERNAME", "admin")
	adminEmail := stringOr(v, "ADMIN_EMAIL", "admin@shivuuaqua.com")
	password := v.GetString("ADMIN_DEFAULT_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Warn().Msg("usando password por defecto; defina ADMIN_DEFAULT_PASSWORD y cámbielo tras el primer login")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var adminRepo repository.AdminRepository
	switch cfg.Store.Driver {
	case "mongodb":
		client, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MongoDB")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		adminRepo = mongodb.NewAdminRepository(client.Database(cfg.Mongo.DBName))
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		adminRepo = postgres.NewAdminRepository(pool)
	}

	existing, err := adminRepo.GetByUsername(ctx, username)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin existente")
	}
	if existing != nil {
		log.Info().Str("username", existing.Username).Msg("el admin ya existe; nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	admin := &entity.Admin{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Email:        adminEmail,
		CreatedAt:    time.Now().UTC(),
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}

	log.Info().
		Str("username", admin.Username).
		Str("email", admin.Email).
		Msg("admin creado; cambie el password tras el primer login")
}

func stringOr(v *viper.Viper, key, def string) string {
	if s := v.GetString(key); s != "" {
		return s
	}
	return def
}
