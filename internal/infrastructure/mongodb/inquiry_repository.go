package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shivuu-aqua/aqua-api/internal/domain"
	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
	"github.com/shivuu-aqua/aqua-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

// inquiryDoc documento BSON de un inquiry. El _id es el UUID que asigna el
// use case, idéntico entre backends.
type inquiryDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	BusinessName string    `bson:"businessName"`
	Phone        string    `bson:"phone"`
	City         string    `bson:"city"`
	BottleSize   string    `bson:"bottleSize"`
	Quantity     string    `bson:"quantity"`
	Address      string    `bson:"address,omitempty"`
	Message      string    `bson:"message,omitempty"`
	LogoURL      string    `bson:"logoUrl,omitempty"`
	LabelStyle   string    `bson:"labelStyle,omitempty"`
	Status       string    `bson:"status"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// InquiryRepo adaptador MongoDB de InquiryRepository.
type InquiryRepo struct {
	coll *mongo.Collection
}

// NewInquiryRepository construye el adaptador sobre la colección "inquiries".
func NewInquiryRepository(db *mongo.Database) *InquiryRepo {
	return &InquiryRepo{coll: db.Collection("inquiries")}
}

// Create persiste un nuevo inquiry.
func (r *InquiryRepo) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	if _, err := r.coll.InsertOne(ctx, toInquiryDoc(inquiry)); err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// GetByID obtiene un inquiry por ID; domain.ErrNotFound si no existe.
func (r *InquiryRepo) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	var doc inquiryDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return fromInquiryDoc(&doc), nil
}

// List devuelve la página [offset, offset+limit) ordenada por createdAt DESC
// con desempate por _id DESC, igual que el adaptador de Postgres.
func (r *InquiryRepo) List(ctx context.Context, f repository.InquiryFilter, limit, offset int) ([]*entity.Inquiry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, statusFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return decodeInquiries(ctx, cur)
}

// FindAll devuelve todos los registros del filtro sin paginar (export CSV).
func (r *InquiryRepo) FindAll(ctx context.Context, f repository.InquiryFilter) ([]*entity.Inquiry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, statusFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("find inquiries: %w", err)
	}
	return decodeInquiries(ctx, cur)
}

// Count cuenta los registros que cumplen el filtro.
func (r *InquiryRepo) Count(ctx context.Context, f repository.InquiryFilter) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, statusFilter(f))
	if err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}
	return total, nil
}

// UpdateStatus escribe el nuevo estado (last-write-wins) y devuelve el documento actualizado.
func (r *InquiryRepo) UpdateStatus(ctx context.Context, id, status string) (*entity.Inquiry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc inquiryDoc
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update inquiry status: %w", err)
	}
	return fromInquiryDoc(&doc), nil
}

func statusFilter(f repository.InquiryFilter) bson.M {
	if f.Status == "" {
		return bson.M{}
	}
	return bson.M{"status": f.Status}
}

func decodeInquiries(ctx context.Context, cur *mongo.Cursor) ([]*entity.Inquiry, error) {
	defer cur.Close(ctx)
	var list []*entity.Inquiry
	for cur.Next(ctx) {
		var doc inquiryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode inquiry: %w", err)
		}
		list = append(list, fromInquiryDoc(&doc))
	}
	return list, cur.Err()
}

func toInquiryDoc(inq *entity.Inquiry) *inquiryDoc {
	return &inquiryDoc{
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

func fromInquiryDoc(doc *inquiryDoc) *entity.Inquiry {
	return &entity.Inquiry{
		ID:           doc.ID,
		Name:         doc.Name,
		BusinessName: doc.BusinessName,
		Phone:        doc.Phone,
		City:         doc.City,
		BottleSize:   doc.BottleSize,
		Quantity:     doc.Quantity,
		Address:      doc.Address,
		Message:      doc.Message,
		LogoURL:      doc.LogoURL,
		LabelStyle:   doc.LabelStyle,
		Status:       doc.Status,
		CreatedAt:    doc.CreatedAt,
	}
}
