package state

import (
	"context"

	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// DocumentStore es el puerto hacia el almacén remoto del documento compartido.
// El documento es opaco para el almacén: siempre se lee y escribe completo,
// no existen escrituras parciales. La consistencia entre sesiones es
// last-writer-wins a granularidad de documento.
type DocumentStore interface {
	// Load lee el documento actual. Devuelve (nil, nil) si aún no existe
	// (primer arranque del sistema).
	Load(ctx context.Context) (*entity.Document, error)

	// Save reemplaza el documento completo.
	Save(ctx context.Context, doc *entity.Document) error

	// Watch entrega cada emisión remota del documento, incluido el eco de
	// las escrituras propias. El canal se cierra al cancelar el contexto
	// o al cerrar el almacén.
	Watch(ctx context.Context) (<-chan *entity.Document, error)

	// Close libera conexiones y detiene la suscripción.
	Close(ctx context.Context) error
}
