package usecase

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/domain"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// defaultStaffPassword password asignado cuando el alta llega sin uno
// (heredado de la pantalla de administración).
const defaultStaffPassword = "1234"

// UserUseCase casos de uso de administración de usuarios y permisos.
// La exclusión del admin de borrado/edición es una convención de la
// superficie, no una invariante estructural: aquí no se asume.
type UserUseCase struct {
	store *state.Store
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(store *state.Store) *UserUseCase {
	return &UserUseCase{store: store}
}

// Create da de alta un usuario STAFF con los permisos marcados.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" {
		return nil, domain.ErrInvalidInput
	}
	password := in.Password
	if password == "" {
		password = defaultStaffPassword
	}
	user := entity.User{
		ID:          uuid.New().String(),
		Username:    in.Username,
		Password:    password,
		Role:        entity.RoleStaff,
		Permissions: append([]entity.Permission(nil), in.Permissions...),
	}
	snap := uc.store.Snapshot()
	users := append(snap.Users, user)
	uc.store.Update(state.Patch{Users: &users})
	return dto.ToUserResponse(&user), nil
}

// Update edita un usuario. Password vacío conserva el anterior.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" {
		return nil, domain.ErrInvalidInput
	}
	snap := uc.store.Snapshot()
	existing := snap.FindUserByID(id)
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	password := in.Password
	if password == "" {
		password = existing.Password
	}
	updated := entity.User{
		ID:          id,
		Username:    in.Username,
		Password:    password,
		Role:        existing.Role,
		Permissions: append([]entity.Permission(nil), in.Permissions...),
	}
	users := make([]entity.User, len(snap.Users))
	copy(users, snap.Users)
	for i := range users {
		if users[i].ID == id {
			users[i] = updated
		}
	}
	uc.store.Update(state.Patch{Users: &users})
	return dto.ToUserResponse(&updated), nil
}

// TogglePermission alterna una etiqueta de permiso en el usuario: la quita
// si la tiene, la agrega al final si no. No-op silencioso si el id no existe.
func (uc *UserUseCase) TogglePermission(id string, perm entity.Permission) *dto.UserResponse {
	snap := uc.store.Snapshot()
	if snap.FindUserByID(id) == nil {
		return nil
	}
	users := make([]entity.User, len(snap.Users))
	copy(users, snap.Users)
	var toggled *entity.User
	for i := range users {
		if users[i].ID != id {
			continue
		}
		perms := make([]entity.Permission, 0, len(users[i].Permissions)+1)
		removed := false
		for _, p := range users[i].Permissions {
			if p == perm {
				removed = true
				continue
			}
			perms = append(perms, p)
		}
		if !removed {
			perms = append(perms, perm)
		}
		users[i].Permissions = perms
		toggled = &users[i]
	}
	uc.store.Update(state.Patch{Users: &users})
	return dto.ToUserResponse(toggled)
}

// Delete elimina un usuario filtrándolo de la colección. Una sesión
// persistida de ese usuario en otro proceso no se invalida desde aquí.
func (uc *UserUseCase) Delete(id string) error {
	snap := uc.store.Snapshot()
	if snap.FindUserByID(id) == nil {
		return domain.ErrNotFound
	}
	users := make([]entity.User, 0, len(snap.Users))
	for _, u := range snap.Users {
		if u.ID != id {
			users = append(users, u)
		}
	}
	uc.store.Update(state.Patch{Users: &users})
	return nil
}

// List devuelve todos los usuarios (sin passwords).
func (uc *UserUseCase) List() []dto.UserResponse {
	snap := uc.store.Snapshot()
	items := make([]dto.UserResponse, 0, len(snap.Users))
	for i := range snap.Users {
		items = append(items, *dto.ToUserResponse(&snap.Users[i]))
	}
	return items
}
