package usecase

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/domain"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// ProductUseCase casos de uso CRUD del inventario más los lookups de barcode
// y búsqueda. El barcode llega como string crudo desde el escáner o entrada
// manual; no se valida formato, solo igualdad.
type ProductUseCase struct {
	store *state.Store
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store *state.Store) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// Create registra un producto nuevo con id generado.
func (uc *ProductUseCase) Create(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if in.Barcode == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	snap := uc.store.Snapshot()
	product := productFromRequest(uuid.New().String(), in)
	products := append(snap.Products, product)
	uc.store.Update(state.Patch{Products: &products})
	return dto.ToProductResponse(&product, &snap.Document), nil
}

// Update reemplaza los campos de un producto existente conservando su id.
func (uc *ProductUseCase) Update(id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if in.Barcode == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	snap := uc.store.Snapshot()
	if snap.FindProductByID(id) == nil {
		return nil, domain.ErrNotFound
	}
	updated := productFromRequest(id, in)
	products := make([]entity.Product, len(snap.Products))
	copy(products, snap.Products)
	for i := range products {
		if products[i].ID == id {
			products[i] = updated
		}
	}
	uc.store.Update(state.Patch{Products: &products})
	return dto.ToProductResponse(&updated, &snap.Document), nil
}

// Delete elimina un producto filtrándolo de la colección.
func (uc *ProductUseCase) Delete(id string) error {
	snap := uc.store.Snapshot()
	if snap.FindProductByID(id) == nil {
		return domain.ErrNotFound
	}
	products := make([]entity.Product, 0, len(snap.Products))
	for _, p := range snap.Products {
		if p.ID != id {
			products = append(products, p)
		}
	}
	uc.store.Update(state.Patch{Products: &products})
	return nil
}

// List devuelve todo el inventario con proveedores resueltos.
func (uc *ProductUseCase) List() []dto.ProductResponse {
	snap := uc.store.Snapshot()
	return toResponses(snap.Products, &snap.Document)
}

// FindByBarcode busca por barcode exacto; primera coincidencia gana.
// Devuelve nil si no hay producto con ese código (el llamador decide si
// ofrecer registrarlo).
func (uc *ProductUseCase) FindByBarcode(barcode string) *dto.ProductResponse {
	snap := uc.store.Snapshot()
	p := snap.FindProductByBarcode(barcode)
	if p == nil {
		return nil
	}
	return dto.ToProductResponse(p, &snap.Document)
}

// Search filtra por nombre (case folding Unicode, cubre alfabetos no
// latinos) o por substring del barcode.
func (uc *ProductUseCase) Search(term string) []dto.ProductResponse {
	snap := uc.store.Snapshot()
	if term == "" {
		return toResponses(snap.Products, &snap.Document)
	}
	fold := cases.Fold()
	needle := fold.String(term)
	matched := make([]entity.Product, 0, len(snap.Products))
	for _, p := range snap.Products {
		if strings.Contains(fold.String(p.Name), needle) || strings.Contains(p.Barcode, term) {
			matched = append(matched, p)
		}
	}
	return toResponses(matched, &snap.Document)
}

func productFromRequest(id string, in dto.SaveProductRequest) entity.Product {
	return entity.Product{
		ID:           id,
		Barcode:      in.Barcode,
		Name:         in.Name,
		CompanyID:    in.CompanyID,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		Stock:        in.Stock,
		Description:  in.Description,
		Unit:         in.Unit,
		Category:     in.Category,
	}
}

func toResponses(products []entity.Product, doc *entity.Document) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *dto.ToProductResponse(&products[i], doc))
	}
	return items
}
