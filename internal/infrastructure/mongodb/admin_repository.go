package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
	"github.com/shivuu-aqua/aqua-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

type adminDoc struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password"`
	Email        string    `bson:"email,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// AdminRepo adaptador MongoDB de AdminRepository.
type AdminRepo struct {
	coll *mongo.Collection
}

// NewAdminRepository construye el adaptador sobre la colección "admins".
func NewAdminRepository(db *mongo.Database) *AdminRepo {
	return &AdminRepo{coll: db.Collection("admins")}
}

// Create persiste un admin.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	doc := &adminDoc{
		ID:           admin.ID,
		Username:     admin.Username,
		PasswordHash: admin.PasswordHash,
		Email:        admin.Email,
		CreatedAt:    admin.CreatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("username %q ya existe", admin.Username)
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByUsername obtiene un admin por username; nil, nil si no existe.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var doc adminDoc
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &entity.Admin{
		ID:           doc.ID,
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		Email:        doc.Email,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
