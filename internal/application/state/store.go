// Package state contiene el contenedor de estado compartido: el espejo local
// del documento remoto, la fusión de emisiones remotas preservando los campos
// locales a la sesión, y la publicación optimista de mutaciones.
package state

import (
	"context"
	"sync"

	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	"github.com/tu-usuario/supermercado-pro/pkg/logger"
)

// Store es el dueño del snapshot autoritativo en memoria. Todas las lecturas
// y mutaciones de la aplicación pasan por aquí.
//
// Modelo de consistencia: dentro del proceso un RWMutex protege la memoria;
// entre sesiones no hay transacción alguna y dos Update concurrentes desde
// procesos distintos terminan en last-writer-wins sobre el documento entero.
// Dos sesiones editando colecciones disjuntas a la vez pueden perder el lado
// que publicó primero. Es el modelo aceptado para una tienda única de baja
// contención, no un bug a corregir en silencio.
type Store struct {
	mu      sync.RWMutex
	doc     entity.Document
	current *entity.User
	loading bool

	remote   DocumentStore
	defaults entity.GlobalSettings
	log      *logger.Logger
}

// New construye el Store. El flag de carga queda levantado hasta que la
// primera lectura remota resuelva; si esa lectura falla, el flag queda
// levantado para siempre y Loading() lo hace observable en vez de colgar
// la aplicación sin señal.
func New(remote DocumentStore, defaults entity.GlobalSettings, log *logger.Logger) *Store {
	return &Store{
		remote:   remote,
		defaults: defaults,
		loading:  true,
		log:      log,
	}
}

// DefaultDocument sintetiza el documento de arranque: un único usuario ADMIN
// con todos los permisos, colecciones vacías y los settings por defecto.
// No contiene usuario de sesión por construcción (ver entity.Document).
func DefaultDocument(settings entity.GlobalSettings) *entity.Document {
	return &entity.Document{
		Users: []entity.User{{
			ID:          "1",
			Username:    "admin",
			Password:    "admin",
			Role:        entity.RoleAdmin,
			Permissions: entity.AllPermissions(),
		}},
		Companies: []entity.Company{},
		Products:  []entity.Product{},
		Sales:     []entity.Sale{},
		Orders:    []entity.Order{},
		Settings:  settings,
	}
}

// Run hace la lectura inicial y luego consume la suscripción remota hasta que
// el contexto se cancele. Si el documento remoto no existe todavía, publica
// el documento de arranque como estado inicial compartido.
//
// Cada emisión remota reemplaza el documento local completo; el usuario de
// sesión se conserva tal cual estaba, llegue lo que llegue de remoto.
func (s *Store) Run(ctx context.Context) error {
	doc, err := s.remote.Load(ctx)
	if err != nil {
		// La carga inicial nunca resuelve: Loading() queda en true.
		s.log.Error().Err(err).Msg("lectura inicial del documento remoto")
		return err
	}
	if doc == nil {
		doc = DefaultDocument(s.defaults)
		s.log.Info().Msg("documento remoto ausente: publicando estado inicial")
		if err := s.remote.Save(ctx, doc); err != nil {
			// No fatal: el snapshot local sigue siendo fuente de verdad
			// hasta el próximo round-trip exitoso.
			s.log.Error().Err(err).Msg("publicar documento de arranque")
		}
	}

	s.mu.Lock()
	s.doc = *doc
	s.loading = false
	s.mu.Unlock()

	ch, err := s.remote.Watch(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("suscripción al documento remoto")
		return err
	}
	for remote := range ch {
		if remote == nil {
			continue
		}
		s.mu.Lock()
		s.doc = *remote
		s.mu.Unlock()
	}
	return ctx.Err()
}

// Update aplica el patch al snapshot local de forma optimista y publica el
// documento resultante en segundo plano. Una publicación fallida se registra
// y no revierte el estado local ni llega al usuario desde esta capa.
func (s *Store) Update(p Patch) {
	s.mu.Lock()
	p.apply(&s.doc)
	out := s.doc.Clone()
	s.mu.Unlock()

	go func() {
		if err := s.remote.Save(context.Background(), out); err != nil {
			s.log.Error().Err(err).Msg("publicar documento compartido")
		}
	}()
}

// Snapshot devuelve una copia profunda del estado completo, incluido el
// usuario de sesión local.
func (s *Store) Snapshot() entity.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.AppState{
		Document:    *s.doc.Clone(),
		CurrentUser: s.current.Clone(),
	}
}

// SetCurrentUser fija el usuario de sesión local. nil borra la sesión.
// Este campo jamás se publica: vive fuera de entity.Document.
func (s *Store) SetCurrentUser(u *entity.User) {
	s.mu.Lock()
	s.current = u.Clone()
	s.mu.Unlock()
}

// CurrentUser devuelve una copia del usuario de sesión, o nil sin sesión.
func (s *Store) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Loading indica si la primera lectura remota sigue pendiente (o falló).
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
