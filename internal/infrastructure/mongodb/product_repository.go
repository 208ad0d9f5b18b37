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

var _ repository.ProductRepository = (*ProductRepo)(nil)

type productDoc struct {
	ID           string    `bson:"_id"`
	Size         string    `bson:"size"`
	PriceRange   string    `bson:"priceRange,omitempty"`
	MOQ          int       `bson:"moq"`
	Description  string    `bson:"description,omitempty"`
	ImageURL     string    `bson:"imageUrl,omitempty"`
	DeliveryTime string    `bson:"deliveryTime,omitempty"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// ProductRepo adaptador MongoDB de ProductRepository.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador sobre la colección "products".
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection("products")}
}

// Create persiste una entrada del catálogo.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if _, err := r.coll.InsertOne(ctx, toProductDoc(product)); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID; domain.ErrNotFound si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var doc productDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return fromProductDoc(&doc), nil
}

// List devuelve el catálogo completo ordenado por size ascendente.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "size", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		list = append(list, fromProductDoc(&doc))
	}
	return list, cur.Err()
}

// Update reescribe la entrada completa; domain.ErrNotFound si el id no existe.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": product.ID}, toProductDoc(product))
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una entrada por ID; domain.ErrNotFound si no existe.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toProductDoc(p *entity.Product) *productDoc {
	return &productDoc{
		ID:           p.ID,
		Size:         p.Size,
		PriceRange:   p.PriceRange,
		MOQ:          p.MOQ,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		DeliveryTime: p.DeliveryTime,
		CreatedAt:    p.CreatedAt,
	}
}

func fromProductDoc(doc *productDoc) *entity.Product {
	return &entity.Product{
		ID:           doc.ID,
		Size:         doc.Size,
		PriceRange:   doc.PriceRange,
		MOQ:          doc.MOQ,
		Description:  doc.Description,
		ImageURL:     doc.ImageURL,
		DeliveryTime: doc.DeliveryTime,
		CreatedAt:    doc.CreatedAt,
	}
}
