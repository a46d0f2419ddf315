// Package redis implementa el almacén remoto del documento compartido
// sobre Redis: el documento serializado vive bajo una clave y cada Save
// publica el JSON completo en un canal pub/sub. Todas las sesiones
// suscritas (el escritor incluido) reciben la emisión.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	"github.com/tu-usuario/supermercado-pro/pkg/logger"
)

// NewClient crea y valida un cliente go-redis a partir de la URL.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsear URL de redis: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping a redis: %w", err)
	}
	return rdb, nil
}

// DocStore almacén del documento sobre una clave y un canal pub/sub.
type DocStore struct {
	rdb *redis.Client
	key string
	log *logger.Logger
}

func NewDocStore(rdb *redis.Client, key string, log *logger.Logger) *DocStore {
	return &DocStore{rdb: rdb, key: key, log: log}
}

// channel nombre del canal pub/sub derivado de la clave del documento.
func (s *DocStore) channel() string {
	return s.key + ":changes"
}

// Load lee el documento completo. (nil, nil) si la clave no existe todavía.
func (s *DocStore) Load(ctx context.Context) (*entity.Document, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
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

// Save reemplaza el documento y publica el JSON completo en el canal.
func (s *DocStore) Save(ctx context.Context, doc *entity.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("guardar documento: %w", err)
	}
	if err := s.rdb.Publish(ctx, s.channel(), raw).Err(); err != nil {
		return fmt.Errorf("publicar cambio: %w", err)
	}
	return nil
}

// Watch se suscribe al canal de cambios y entrega cada documento publicado.
// El canal se cierra al cancelar el contexto.
func (s *DocStore) Watch(ctx context.Context) (<-chan *entity.Document, error) {
	sub := s.rdb.Subscribe(ctx, s.channel())
	// Receive fuerza la confirmación de la suscripción antes de devolver.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("suscribirse al canal de cambios: %w", err)
	}

	ch := make(chan *entity.Document)
	go func() {
		defer close(ch)
		defer func() { _ = sub.Close() }()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var doc entity.Document
				if err := json.Unmarshal([]byte(msg.Payload), &doc); err != nil {
					s.log.Error().Err(err).Msg("decodificar documento publicado")
					continue
				}
				select {
				case ch <- &doc:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, nil
}

// Close cierra el cliente subyacente.
func (s *DocStore) Close(context.Context) error {
	return s.rdb.Close()
}
