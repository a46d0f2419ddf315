package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/domain"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	"github.com/tu-usuario/supermercado-pro/pkg/serial"
)

// CompanyUseCase aplica reglas de negocio para proveedores (casos de uso).
type CompanyUseCase struct {
	store *state.Store
}

// NewCompanyUseCase construye el caso de uso sobre el contenedor de estado.
func NewCompanyUseCase(store *state.Store) *CompanyUseCase {
	return &CompanyUseCase{store: store}
}

// Create registra un proveedor nuevo: id serial desde 100, código derivado
// COMP-<id> y deuda inicial en cero.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	snap := uc.store.Snapshot()

	ids := make([]string, 0, len(snap.Companies))
	for _, c := range snap.Companies {
		ids = append(ids, c.ID)
	}
	id := serial.Next(ids, entity.CompanySerialFloor)

	company := entity.Company{
		ID:   id,
		Name: in.Name,
		Code: entity.CompanyCode(id),
		Debt: decimal.Zero,
	}
	companies := append(snap.Companies, company)
	uc.store.Update(state.Patch{Companies: &companies})

	return dto.ToCompanyResponse(&company), nil
}

// List devuelve todos los proveedores.
func (uc *CompanyUseCase) List() []dto.CompanyResponse {
	snap := uc.store.Snapshot()
	items := make([]dto.CompanyResponse, 0, len(snap.Companies))
	for i := range snap.Companies {
		items = append(items, *dto.ToCompanyResponse(&snap.Companies[i]))
	}
	return items
}

// Delete elimina un proveedor filtrándolo de la colección. Sin cascada:
// pedidos y productos que lo referencien quedan colgando y las rutas de
// lectura lo muestran como desconocido. Devuelve ErrNotFound si el id no existe.
func (uc *CompanyUseCase) Delete(id string) error {
	snap := uc.store.Snapshot()
	if snap.FindCompanyByID(id) == nil {
		return domain.ErrNotFound
	}
	companies := make([]entity.Company, 0, len(snap.Companies))
	for _, c := range snap.Companies {
		if c.ID != id {
			companies = append(companies, c)
		}
	}
	uc.store.Update(state.Patch{Companies: &companies})
	return nil
}
