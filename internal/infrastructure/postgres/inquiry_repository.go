package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shivuu-aqua/aqua-api/internal/domain"
	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
	"github.com/shivuu-aqua/aqua-api/internal/domain/repository"
)

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

const inquiryColumns = `id, name, business_name, phone, city, bottle_size, quantity,
	address, message, logo_url, label_style, status, created_at`

// InquiryRepo adaptador PostgreSQL de InquiryRepository (usable con pool o tx).
type InquiryRepo struct {
	q Querier
}

// NewInquiryRepository construye el adaptador.
func NewInquiryRepository(q Querier) *InquiryRepo {
	return &InquiryRepo{q: q}
}

// Create persiste un nuevo inquiry.
func (r *InquiryRepo) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, business_name, phone, city, bottle_size, quantity,
			address, message, logo_url, label_style, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		inquiry.ID, inquiry.Name, inquiry.BusinessName, inquiry.Phone, inquiry.City,
		inquiry.BottleSize, inquiry.Quantity, inquiry.Address, inquiry.Message,
		inquiry.LogoURL, inquiry.LabelStyle, inquiry.Status, inquiry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// GetByID obtiene un inquiry por ID; domain.ErrNotFound si no existe.
func (r *InquiryRepo) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`
	inq, err := scanInquiry(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return inq, nil
}

// List devuelve la página [offset, offset+limit) ordenada por created_at DESC
// con desempate por id DESC (orden estable para timestamps iguales).
func (r *InquiryRepo) List(ctx context.Context, f repository.InquiryFilter, limit, offset int) ([]*entity.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries`
	args := []any{}
	if f.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, f.Status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()
	return collectInquiries(rows)
}

// FindAll devuelve todos los registros del filtro sin paginar (export CSV).
func (r *InquiryRepo) FindAll(ctx context.Context, f repository.InquiryFilter) ([]*entity.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries`
	args := []any{}
	if f.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, f.Status)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find inquiries: %w", err)
	}
	defer rows.Close()
	return collectInquiries(rows)
}

// Count cuenta los registros que cumplen el filtro.
func (r *InquiryRepo) Count(ctx context.Context, f repository.InquiryFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM inquiries`
	args := []any{}
	if f.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, f.Status)
	}
	var total int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}
	return total, nil
}

// UpdateStatus escribe el nuevo estado y devuelve el registro actualizado.
// Last-write-wins: sin token de concurrencia, como el panel original.
func (r *InquiryRepo) UpdateStatus(ctx context.Context, id, status string) (*entity.Inquiry, error) {
	query := `UPDATE inquiries SET status = $2 WHERE id = $1 RETURNING ` + inquiryColumns
	inq, err := scanInquiry(r.q.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}
	return inq, nil
}

func scanInquiry(row pgx.Row) (*entity.Inquiry, error) {
	var inq entity.Inquiry
	err := row.Scan(
		&inq.ID, &inq.Name, &inq.BusinessName, &inq.Phone, &inq.City,
		&inq.BottleSize, &inq.Quantity, &inq.Address, &inq.Message,
		&inq.LogoURL, &inq.LabelStyle, &inq.Status, &inq.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inq, nil
}

func collectInquiries(rows pgx.Rows) ([]*entity.Inquiry, error) {
	var list []*entity.Inquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		list = append(list, inq)
	}
	return list, rows.Err()
}
