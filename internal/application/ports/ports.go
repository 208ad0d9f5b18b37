package ports

import (
	"context"

	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
)

// Notifier relay de notificaciones al dueño del negocio. Best-effort: el
// caller lo despacha en background y descarta el error tras loguearlo.
type Notifier interface {
	NotifyNewInquiry(inquiry *entity.Inquiry) error
}

// UploadResult respuesta del media host tras subir una imagen.
type UploadResult struct {
	URL      string // URL pública estable
	PublicID string // identificador asignado por el proveedor
}

// MediaUploader sube una imagen al media host externo y devuelve su URL pública.
type MediaUploader interface {
	Upload(ctx context.Context, data []byte, mimeType string) (*UploadResult, error)
}
