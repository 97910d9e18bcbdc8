package usecase_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/garment-pos/internal/application/dto"
	"github.com/tu-usuario/garment-pos/internal/application/usecase"
	"github.com/tu-usuario/garment-pos/internal/domain"
	"github.com/tu-usuario/garment-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de productos
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.New().String()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) GetStock(_ context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return p.StockQuantity, nil
}

func (r *memProductRepo) SetStock(_ context.Context, id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = quantity
	return nil
}

func (r *memProductRepo) DecrementStock(_ context.Context, id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.StockQuantity < quantity {
		return domain.ErrStockExceeded
	}
	p.StockQuantity -= quantity
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func createRequest(name, sku string, stock, threshold int) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:              name,
		SKU:               sku,
		Category:          "camisas",
		PurchasePrice:     decimal.NewFromInt(60),
		SellingPrice:      decimal.NewFromInt(100),
		StockQuantity:     stock,
		LowStockThreshold: threshold,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_Create_AsignaIDYDevuelveElProducto(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Create(context.Background(), createRequest("Camisa lino", "CAM-001", 10, 3))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "el backend asigna el ID")
	assert.Equal(t, "Camisa lino", out.Name)
	assert.Equal(t, 10, out.StockQuantity)
	assert.False(t, out.LowStock, "10 > umbral 3")
}

func TestProductUseCase_Create_SinSKUOSinNombreRechaza(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, createRequest("", "CAM-001", 1, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, createRequest("Camisa", "", 1, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_Create_PrecioNegativoRechaza(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	in := createRequest("Camisa", "CAM-001", 1, 1)
	in.SellingPrice = decimal.NewFromInt(-10)

	_, err := uc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_Create_SKURepetidoRechazaConDuplicate(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, createRequest("Camisa", "CAM-001", 1, 1))
	require.NoError(t, err)

	_, err = uc.Create(ctx, createRequest("Otra camisa", "CAM-001", 1, 1))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_Update_ParcialNoTocaElStock(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, createRequest("Camisa", "CAM-001", 10, 3))
	require.NoError(t, err)

	newName := "Camisa manga larga"
	newPrice := decimal.NewFromInt(120)
	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{
		Name:         &newName,
		SellingPrice: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, "Camisa manga larga", out.Name)
	assert.True(t, out.SellingPrice.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "CAM-001", out.SKU, "los campos no enviados se conservan")
	assert.Equal(t, 10, out.StockQuantity, "Update nunca cambia el stock")
}

func TestProductUseCase_Update_ProductoInexistenteDevuelveNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	name := "X"

	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Name: &name})

	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductUseCase_AdjustStock_ReemplazaElStock(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	created, err := uc.Create(ctx, createRequest("Camisa", "CAM-001", 10, 3))
	require.NoError(t, err)

	out, err := uc.AdjustStock(ctx, created.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, out.StockQuantity)
	assert.True(t, out.LowStock, "2 <= umbral 3 debe marcar bajo stock")

	stock, err := repo.GetStock(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stock)
}

func TestProductUseCase_AdjustStock_CantidadNegativaRechaza(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.AdjustStock(context.Background(), "cualquiera", -1)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_LowStock_FiltraEnOBajoElUmbral(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	ctx := context.Background()

	// stock == umbral cuenta como bajo; stock > umbral no.
	_, err := uc.Create(ctx, createRequest("En el umbral", "SKU-1", 3, 3))
	require.NoError(t, err)
	_, err = uc.Create(ctx, createRequest("Bajo el umbral", "SKU-2", 1, 3))
	require.NoError(t, err)
	_, err = uc.Create(ctx, createRequest("Con stock", "SKU-3", 10, 3))
	require.NoError(t, err)

	out, err := uc.LowStock(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(out))
	for _, p := range out {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"En el umbral", "Bajo el umbral"}, names)
}

// Dos llamadas sin mutación intermedia deben devolver lo mismo: la lectura no
// tiene efectos secundarios ni histéresis.
func TestProductUseCase_LowStock_LecturaRepetidaEsEstable(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, createRequest("Bajo", "SKU-1", 1, 3))
	require.NoError(t, err)

	first, err := uc.LowStock(ctx)
	require.NoError(t, err)
	second, err := uc.LowStock(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_List_AscendentePorNombre(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	ctx := context.Background()

	for _, name := range []string{"Zapato", "Abrigo", "Medias"} {
		_, err := uc.Create(ctx, createRequest(name, "SKU-"+name, 1, 0))
		require.NoError(t, err)
	}

	out, err := uc.List(ctx)
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	assert.Equal(t, "Abrigo", out.Items[0].Name)
	assert.Equal(t, "Medias", out.Items[1].Name)
	assert.Equal(t, "Zapato", out.Items[2].Name)
}

func TestProductUseCase_Delete_QuitaElProducto(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	ctx := context.Background()

	created, err := uc.Create(ctx, createRequest("Camisa", "CAM-001", 1, 0))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	out, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, out)
}
