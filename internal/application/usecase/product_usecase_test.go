package usecase_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivuu-aqua/aqua-api/internal/application/dto"
	"github.com/shivuu-aqua/aqua-api/internal/application/usecase"
	"github.com/shivuu-aqua/aqua-api/internal/domain"
	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
)

// fakeProductRepo implementación en memoria con el mismo orden que los
// adaptadores reales: size ascendente.
type fakeProductRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.items {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Size < list[j].Size })
	return list, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestProductCreate_OK(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Size:       "500ml",
		PriceRange: "₹8-₹12",
		MOQ:        500,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "500ml", out.Size)
	assert.Equal(t, 500, out.MOQ)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestProductCreate_Validacion(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	// Size fuera del catálogo y MOQ ausente
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Size: "2L"})
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	var fields []string
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"size", "moq"}, fields)
	list, _ := repo.List(context.Background())
	assert.Empty(t, list, "nada se persiste si la validación falla")
}

func TestProductList_OrdenPorSize(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	for _, size := range []string{"500ml", "1L", "250ml"} {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{Size: size, MOQ: 100})
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Success)
	require.Len(t, out.Data, 3)
	// Orden lexicográfico por size, como los adaptadores reales
	assert.Equal(t, "1L", out.Data[0].Size)
	assert.Equal(t, "250ml", out.Data[1].Size)
	assert.Equal(t, "500ml", out.Data[2].Size)
}

func TestProductUpdate_Parcial(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Size:        "250ml",
		MOQ:         200,
		Description: "Botella estándar",
	})
	require.NoError(t, err)

	// Solo cambia priceRange; el resto queda intacto
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		PriceRange: strPtr("₹5-₹7"),
	})
	require.NoError(t, err)
	assert.Equal(t, "₹5-₹7", updated.PriceRange)
	assert.Equal(t, "250ml", updated.Size)
	assert.Equal(t, 200, updated.MOQ)
	assert.Equal(t, "Botella estándar", updated.Description)

	// MOQ inválido en el parcial
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{MOQ: intPtr(0)})
	_, ok := domain.AsValidationError(err)
	assert.True(t, ok)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	_, err := uc.Update(context.Background(), "no-such-id", dto.UpdateProductRequest{PriceRange: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Size: "1L", MOQ: 50})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, uc.Delete(context.Background(), created.ID), domain.ErrNotFound,
		"borrar dos veces debe fallar con not found")
}
