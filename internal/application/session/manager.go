// Package session maneja login/logout contra la lista de usuarios del
// documento compartido y la persistencia local del token de sesión.
package session

import (
	"github.com/tu-usuario/supermercado-pro/internal/application/state"
	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	"github.com/tu-usuario/supermercado-pro/pkg/logger"
)

// Manager casos de uso de sesión.
type Manager struct {
	store  *state.Store
	tokens TokenStore
	log    *logger.Logger
}

// New construye el Manager.
func New(store *state.Store, tokens TokenStore, log *logger.Logger) *Manager {
	return &Manager{store: store, tokens: tokens, log: log}
}

// Restore recarga la sesión persistida, si existe, antes de que la
// sincronización remota resuelva: un reinicio no obliga a re-autenticarse
// mientras el documento todavía está cargando. Si el usuario persistido ya
// no existe en la lista remota (borrado por un admin en otra sesión), la
// sesión NO se invalida aquí; la autorización por permiso lo rechaza al
// no resolverlo en el snapshot.
func (m *Manager) Restore() {
	u, err := m.tokens.Load()
	if err != nil {
		m.log.Warn().Err(err).Msg("restaurar sesión persistida")
		return
	}
	if u == nil {
		return
	}
	m.store.SetCurrentUser(u)
	m.log.Info().Str("username", u.Username).Msg("sesión restaurada")
}

// Login busca coincidencia exacta de username+password en la lista de
// usuarios del snapshot. Con éxito fija el usuario de sesión, persiste el
// token y devuelve el usuario. Con fallo devuelve nil sin revelar cuál de
// los dos campos estaba mal. Nunca lanza.
func (m *Manager) Login(username, password string) *entity.User {
	snap := m.store.Snapshot()
	for i := range snap.Users {
		u := &snap.Users[i]
		if u.Username == username && u.Password == password {
			m.store.SetCurrentUser(u)
			if err := m.tokens.Save(u); err != nil {
				m.log.Warn().Err(err).Msg("persistir token de sesión")
			}
			return u.Clone()
		}
	}
	return nil
}

// Logout borra el usuario de sesión local y el token persistido.
func (m *Manager) Logout() {
	m.store.SetCurrentUser(nil)
	if err := m.tokens.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("borrar token de sesión")
	}
}

// Current devuelve el usuario de sesión vigente, o nil sin sesión.
func (m *Manager) Current() *entity.User {
	return m.store.CurrentUser()
}
