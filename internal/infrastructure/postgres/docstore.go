// Package postgres implementa el almacén remoto del documento compartido
// sobre PostgreSQL: una sola fila JSONB por clave lógica y LISTEN/NOTIFY
// como canal de emisiones. Cada Save notifica; cada sesión suscrita (la que
// escribió incluida) relee la fila y recibe el eco.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	"github.com/tu-usuario/supermercado-pro/pkg/logger"
)

// notifyChannel canal de NOTIFY compartido; el payload es la clave del documento.
const notifyChannel = "shared_document_changed"

const createTableSQL = `
CREATE TABLE IF NOT EXISTS shared_documents (
	key        TEXT PRIMARY KEY,
	doc        JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// DocStore almacén del documento sobre una fila JSONB.
type DocStore struct {
	pool *pgxpool.Pool
	key  string
	log  *logger.Logger
}

// NewDocStore construye el almacén y garantiza la tabla.
func NewDocStore(ctx context.Context, pool *pgxpool.Pool, key string, log *logger.Logger) (*DocStore, error) {
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("crear tabla shared_documents: %w", err)
	}
	return &DocStore{pool: pool, key: key, log: log}, nil
}

// Load lee el documento completo. (nil, nil) si la fila no existe todavía.
func (s *DocStore) Load(ctx context.Context) (*entity.Document, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM shared_documents WHERE key = $1`, s.key).Scan(&raw)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer documento: %w", err)
	}
	var doc entity.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decodificar documento: %w", err)
	}
	return &doc, nil
}

// Save reemplaza el documento completo y notifica a todos los suscriptores.
func (s *DocStore) Save(ctx context.Context, doc *entity.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("abrir tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO shared_documents (key, doc, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		s.key, raw)
	if err != nil {
		return fmt.Errorf("guardar documento: %w", err)
	}
	if _, err = tx.Exec(ctx, `SELECT pg_notify($1, $2)`, notifyChannel, s.key); err != nil {
		return fmt.Errorf("notificar cambio: %w", err)
	}
	return tx.Commit(ctx)
}

// Watch mantiene una conexión dedicada en LISTEN y entrega el documento
// releído tras cada notificación de esta clave. El canal se cierra al
// cancelar el contexto.
func (s *DocStore) Watch(ctx context.Context) (<-chan *entity.Document, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("adquirir conexión listener: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		conn.Release()
		return nil, fmt.Errorf("LISTEN: %w", err)
	}

	ch := make(chan *entity.Document)
	go func() {
		defer close(ch)
		defer conn.Release()
		for {
			n, err := conn.Conn().WaitForNotification(ctx)
			if err != nil {
				if ctx.Err() == nil {
					s.log.Error().Err(err).Msg("esperar notificación de documento")
				}
				return
			}
			if n.Payload != s.key {
				continue
			}
			doc, err := s.Load(ctx)
			if err != nil {
				s.log.Error().Err(err).Msg("releer documento tras notificación")
				continue
			}
			if doc == nil {
				continue
			}
			select {
			case ch <- doc:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// Close cierra el pool completo.
func (s *DocStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}
