package repository

import (
	"context"

	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
)

// InquiryFilter filtro opcional para listados y export. Status vacío = todos.
type InquiryFilter struct {
	Status string
}

// InquiryRepository puerto de persistencia para inquiries.
// El orden de List/FindAll es createdAt descendente con desempate por id
// descendente, estable entre backends (el triaje del admin depende de él).
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id string) (*entity.Inquiry, error)
	// List devuelve la página [offset, offset+limit) de los registros que cumplen el filtro.
	List(ctx context.Context, f InquiryFilter, limit, offset int) ([]*entity.Inquiry, error)
	// FindAll devuelve todos los registros que cumplen el filtro, sin paginar (export CSV).
	FindAll(ctx context.Context, f InquiryFilter) ([]*entity.Inquiry, error)
	Count(ctx context.Context, f InquiryFilter) (int64, error)
	// UpdateStatus escribe el nuevo estado (last-write-wins) y devuelve el registro
	// actualizado, o domain.ErrNotFound si el id no existe.
	UpdateStatus(ctx context.Context, id, status string) (*entity.Inquiry, error)
}
