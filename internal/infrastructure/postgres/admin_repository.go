package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
	"github.com/shivuu-aqua/aqua-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo adaptador PostgreSQL de AdminRepository.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador.
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// Create persiste un admin (username único).
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	query := `
		INSERT INTO admins (id, username, password_hash, email, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		admin.ID, admin.Username, admin.PasswordHash, admin.Email, admin.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username %q ya existe", admin.Username)
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByUsername obtiene un admin por username; nil, nil si no existe.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	query := `SELECT id, username, password_hash, email, created_at FROM admins WHERE username = $1`
	var a entity.Admin
	err := r.q.QueryRow(ctx, query, username).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.Email, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}
