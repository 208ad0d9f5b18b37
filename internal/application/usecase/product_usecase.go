package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shivuu-aqua/aqua-api/internal/application/dto"
	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
	"github.com/shivuu-aqua/aqua-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo. Lectura pública; escritura solo admin
// (el gate está en el router, no aquí).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea una entrada del catálogo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := checkStruct(in); err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:           uuid.New().String(),
		Size:         in.Size,
		PriceRange:   in.PriceRange,
		MOQ:          in.MOQ,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		DeliveryTime: in.DeliveryTime,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo completo ordenado por size (listado público).
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Success: true, Data: items}, nil
}

// Update aplica una actualización parcial; solo los campos presentes cambian.
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := checkStruct(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Size != nil {
		product.Size = *in.Size
	}
	if in.PriceRange != nil {
		product.PriceRange = *in.PriceRange
	}
	if in.MOQ != nil {
		product.MOQ = *in.MOQ
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.DeliveryTime != nil {
		product.DeliveryTime = *in.DeliveryTime
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina una entrada por id; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
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
