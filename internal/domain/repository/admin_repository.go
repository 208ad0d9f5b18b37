package repository

import (
	"context"

	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
)

// AdminRepository puerto de persistencia para credenciales de admin.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	// GetByUsername devuelve nil, nil si el username no existe (el use case decide
	// el mensaje uniforme de credenciales inválidas).
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
}
