package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/supermercado-pro/internal/application/dto"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/application/usecase"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

func TestCreateUser_StaffConPasswordPorDefecto(t *testing.T) {
	st := newStore()
	uc := usecase.NewUserUseCase(st)

	out, err := uc.Create(dto.CreateUserRequest{
		Username:    "cajero",
		Permissions: []entity.Permission{entity.PermDashboard, entity.PermInventory},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, out.Role)

	// El alta sin password recibe el valor por defecto; la respuesta nunca lo expone.
	snap := st.Snapshot()
	require.Len(t, snap.Users, 1)
	assert.Equal(t, "1234", snap.Users[0].Password)
}

func TestUpdateUser_PasswordVacioConservaElAnterior(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Users: &[]entity.User{{ID: "7", Username: "cajero", Password: "secreta", Role: entity.RoleStaff}}})
	uc := usecase.NewUserUseCase(st)

	_, err := uc.Update("7", dto.UpdateUserRequest{Username: "cajero2"})
	require.NoError(t, err)

	snap := st.Snapshot()
	assert.Equal(t, "cajero2", snap.Users[0].Username)
	assert.Equal(t, "secreta", snap.Users[0].Password)
}

func TestTogglePermission_QuitaYAgrega(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Users: &[]entity.User{{
		ID: "7", Username: "cajero", Role: entity.RoleStaff,
		Permissions: []entity.Permission{entity.PermDashboard, entity.PermInventory},
	}}})
	uc := usecase.NewUserUseCase(st)

	out := uc.TogglePermission("7", entity.PermInventory)
	require.NotNil(t, out)
	assert.Equal(t, []entity.Permission{entity.PermDashboard}, out.Permissions)

	out = uc.TogglePermission("7", entity.PermInventory)
	require.NotNil(t, out)
	assert.Equal(t, []entity.Permission{entity.PermDashboard, entity.PermInventory}, out.Permissions)
}

func TestTogglePermission_UsuarioInexistenteEsNoOp(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Users: &[]entity.User{{ID: "7", Username: "cajero"}}})
	uc := usecase.NewUserUseCase(st)

	assert.Nil(t, uc.TogglePermission("no-existe", entity.PermInventory))
	// Nada cambió.
	assert.Len(t, st.Snapshot().Users, 1)
}

func TestListUsers_NoExponePasswords(t *testing.T) {
	st := newStore()
	seed(st, state.Patch{Users: &[]entity.User{{ID: "1", Username: "admin", Password: "admin", Role: entity.RoleAdmin}}})
	uc := usecase.NewUserUseCase(st)

	list := uc.List()
	require.Len(t, list, 1)
	// UserResponse no tiene campo de password; verificamos el contenido visible.
	assert.Equal(t, "admin", list[0].Username)
	assert.Equal(t, entity.RoleAdmin, list[0].Role)
}
