package repository

import (
	"context"

	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para el catálogo.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve el catálogo completo ordenado por size ascendente.
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Delete elimina por id; domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}
