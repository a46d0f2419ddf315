package session_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/supermercado-pro/internal/application/session"
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	"github.com/tu-usuario/supermercado-pro/pkg/logger"
)

// fakeTokenStore persistencia de sesión en memoria.
type fakeTokenStore struct {
	mu   sync.Mutex
	user *entity.User
}

func (f *fakeTokenStore) Save(u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = u.Clone()
	return nil
}

func (f *fakeTokenStore) Load() (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user.Clone(), nil
}

func (f *fakeTokenStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = nil
	return nil
}

// nullDocStore almacén remoto mínimo: nunca se usa en estos tests más allá
// de permitir construir el Store sin arrancar Run.
type nullDocStore struct{}

func (nullDocStore) Load(context.Context) (*entity.Document, error)  { return nil, nil }
func (nullDocStore) Save(context.Context, *entity.Document) error    { return nil }
func (nullDocStore) Close(context.Context) error                     { return nil }
func (nullDocStore) Watch(context.Context) (<-chan *entity.Document, error) {
	return make(chan *entity.Document), nil
}

func storeWithUsers(users ...entity.User) *state.Store {
	s := state.New(nullDocStore{}, entity.GlobalSettings{AppName: "Test", ProfitMargin: 15}, logger.Nop())
	s.Update(state.Patch{Users: &users})
	return s
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	st := storeWithUsers(entity.User{ID: "1", Username: "admin", Password: "admin", Role: entity.RoleAdmin})
	tokens := &fakeTokenStore{}
	m := session.New(st, tokens, logger.Nop())

	u := m.Login("admin", "admin")
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Username)

	// El usuario queda como sesión local y el token persiste para restaurar.
	require.NotNil(t, m.Current())
	persisted, err := tokens.Load()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "1", persisted.ID)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	st := storeWithUsers(entity.User{ID: "1", Username: "admin", Password: "admin"})
	m := session.New(st, &fakeTokenStore{}, logger.Nop())

	u := m.Login("admin", "equivocado")
	assert.Nil(t, u)
	// El fallo no muta la sesión.
	assert.Nil(t, m.Current())
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	st := storeWithUsers(entity.User{ID: "1", Username: "admin", Password: "admin"})
	m := session.New(st, &fakeTokenStore{}, logger.Nop())

	assert.Nil(t, m.Login("nadie", "admin"))
}

func TestLogout_BorraSesionYToken(t *testing.T) {
	st := storeWithUsers(entity.User{ID: "1", Username: "admin", Password: "admin"})
	tokens := &fakeTokenStore{}
	m := session.New(st, tokens, logger.Nop())

	require.NotNil(t, m.Login("admin", "admin"))
	m.Logout()

	assert.Nil(t, m.Current())
	persisted, err := tokens.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestRestore_SesionPersistida(t *testing.T) {
	st := storeWithUsers()
	tokens := &fakeTokenStore{}
	require.NoError(t, tokens.Save(&entity.User{ID: "7", Username: "cajero", Role: entity.RoleStaff}))
	m := session.New(st, tokens, logger.Nop())

	// Restore corre antes de que la suscripción remota resuelva: la sesión
	// vuelve aunque la lista de usuarios aún esté vacía.
	m.Restore()
	cur := m.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "cajero", cur.Username)
}

func TestRestore_SinToken(t *testing.T) {
	m := session.New(storeWithUsers(), &fakeTokenStore{}, logger.Nop())
	m.Restore()
	assert.Nil(t, m.Current())
}
