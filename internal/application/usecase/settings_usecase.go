package usecase

import (
	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/domain"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// SettingsUseCase lectura y actualización de la configuración global visible.
type SettingsUseCase struct {
	store *state.Store
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store *state.Store) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

// Get devuelve la configuración vigente.
func (uc *SettingsUseCase) Get() entity.GlobalSettings {
	return uc.store.Snapshot().Settings
}

// Update reemplaza nombre de la tienda y margen por defecto.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (entity.GlobalSettings, error) {
	if in.AppName == "" || in.ProfitMargin < 0 {
		return entity.GlobalSettings{}, domain.ErrInvalidInput
	}
	settings := entity.GlobalSettings{AppName: in.AppName, ProfitMargin: in.ProfitMargin}
	uc.store.Update(state.Patch{Settings: &settings})
	return settings, nil
}
