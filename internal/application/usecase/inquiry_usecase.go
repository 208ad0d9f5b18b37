package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shivuu-aqua/aqua-api/internal/application/dto"
	"github.com/shivuu-aqua/aqua-api/internal/application/ports"
	"github.com/shivuu-aqua/aqua-api/internal/domain"
	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
	"github.com/shivuu-aqua/aqua-api/internal/domain/repository"
)

// csvHeader encabezado fijo del export; el panel y las hojas de cálculo del
// negocio dependen de estos nombres y de este orden.
var csvHeader = []string{
	"Name", "Business Name", "Phone", "City", "Bottle Size",
	"Quantity", "Address", "Status", "Created At",
}

// InquiryUseCase ciclo de vida de los inquiries: alta pública, triaje del
// admin (listado/filtro/paginación, cambio de estado) y export CSV.
type InquiryUseCase struct {
	repo     repository.InquiryRepository
	notifier ports.Notifier
}

// NewInquiryUseCase construye el caso de uso. notifier puede ser nil (sin SMTP configurado).
func NewInquiryUseCase(repo repository.InquiryRepository, notifier ports.Notifier) *InquiryUseCase {
	return &InquiryUseCase{repo: repo, notifier: notifier}
}

// Create valida y persiste un inquiry público. Status y CreatedAt se fijan
// siempre en el servidor, se ignore lo que traiga el cliente. La notificación
// al dueño se despacha en background y su fallo jamás llega al caller.
func (uc *InquiryUseCase) Create(ctx context.Context, in dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	trimInquiryInput(&in)
	if err := checkStruct(in); err != nil {
		return nil, err
	}

	inquiry := &entity.Inquiry{
		ID:           uuid.New().String(),
		Name:         in.Name,
		BusinessName: in.BusinessName,
		Phone:        in.Phone,
		City:         in.City,
		BottleSize:   in.BottleSize,
		Quantity:     in.Quantity,
		Address:      in.Address,
		Message:      in.Message,
		LogoURL:      in.LogoURL,
		LabelStyle:   in.LabelStyle,
		Status:       entity.StatusNew,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		go func(inq entity.Inquiry) {
			if err := uc.notifier.NotifyNewInquiry(&inq); err != nil {
				log.Error().Err(err).
					Str("inquiry_id", inq.ID).
					Msg("fallo la notificación de nuevo inquiry")
			}
		}(*inquiry)
	}

	return toInquiryResponse(inquiry), nil
}

// List devuelve la página pedida, ordenada por createdAt descendente, más el
// total y totalPages = ceil(total/limit). status vacío lista todos.
func (uc *InquiryUseCase) List(ctx context.Context, status string, page, limit int) (*dto.InquiryListResponse, error) {
	if err := checkStatusFilter(status); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	f := repository.InquiryFilter{Status: status}
	total, err := uc.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, f, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.InquiryResponse, 0, len(list))
	for _, inq := range list {
		items = append(items, *toInquiryResponse(inq))
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &dto.InquiryListResponse{
		Success:     true,
		Data:        items,
		TotalPages:  totalPages,
		CurrentPage: page,
		Total:       total,
	}, nil
}

// UpdateStatus cambia el estado de un inquiry. Cualquier transición entre los
// tres estados es válida; la última escritura gana sin token de versión.
func (uc *InquiryUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateInquiryStatusRequest) (*dto.InquiryResponse, error) {
	if err := checkStruct(in); err != nil {
		return nil, err
	}
	inquiry, err := uc.repo.UpdateStatus(ctx, id, in.Status)
	if err != nil {
		return nil, err
	}
	return toInquiryResponse(inquiry), nil
}

// ExportCSV serializa todos los inquiries que cumplan el filtro (sin paginar),
// ordenados por createdAt descendente, con quoting CSV estándar.
func (uc *InquiryUseCase) ExportCSV(ctx context.Context, status string) ([]byte, error) {
	if err := checkStatusFilter(status); err != nil {
		return nil, err
	}
	list, err := uc.repo.FindAll(ctx, repository.InquiryFilter{Status: status})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, inq := range list {
		record := []string{
			inq.Name,
			inq.BusinessName,
			inq.Phone,
			inq.City,
			inq.BottleSize,
			inq.Quantity,
			inq.Address,
			inq.Status,
			inq.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func checkStatusFilter(status string) error {
	if status != "" && !entity.ValidStatus(status) {
		return domain.NewValidationError(domain.FieldError{
			Field:   "status",
			Message: "status must be one of: New, Contacted, Converted",
		})
	}
	return nil
}

func trimInquiryInput(in *dto.CreateInquiryRequest) {
	in.Name = strings.TrimSpace(in.Name)
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.City = strings.TrimSpace(in.City)
	in.BottleSize = strings.TrimSpace(in.BottleSize)
	in.Quantity = strings.TrimSpace(in.Quantity)
	in.Address = strings.TrimSpace(in.Address)
	in.Message = strings.TrimSpace(in.Message)
	in.LogoURL = strings.TrimSpace(in.LogoURL)
	in.LabelStyle = strings.TrimSpace(in.LabelStyle)
}

func toInquiryResponse(inq *entity.Inquiry) *dto.InquiryResponse {
	if inq == nil {
		return nil
	}
	return &dto.InquiryResponse{
		ID:           inq.ID,
		Name:         inq.Name,
		BusinessName: inq.BusinessName,
		Phone:        inq.Phone,
		City:         inq.City,
		BottleSize:   inq.BottleSize,
		Quantity:     inq.Quantity,
		Address:      inq.Address,
		Message:      inq.Message,
		LogoURL:      inq.LogoURL,
		LabelStyle:   inq.LabelStyle,
		Status:       inq.Status,
		CreatedAt:    inq.CreatedAt,
	}
}
