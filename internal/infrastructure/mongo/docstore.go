// Package mongo implementa el almacén remoto del documento compartido
// sobre MongoDB: un único documento con _id fijo y un change stream como
// canal de emisiones. Cada ReplaceOne dispara un evento que toda sesión
// suscrita (el escritor incluido) recibe con el documento completo.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
	"github.com/tu-usuario/supermercado-pro/pkg/logger"
)

const collectionName = "shared_documents"

// NewClient crea y valida un cliente de MongoDB a partir de la URI.
func NewClient(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("conectar a mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping a mongo: %w", err)
	}
	return client, nil
}

// DocStore almacén del documento sobre un documento de _id fijo.
type DocStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	key    string
	log    *logger.Logger
}

func NewDocStore(client *mongo.Client, database, key string, log *logger.Logger) *DocStore {
	return &DocStore{
		client: client,
		coll:   client.Database(database).Collection(collectionName),
		key:    key,
		log:    log,
	}
}

// envelope documento persistido: el payload completo bajo un _id fijo.
type envelope struct {
	ID  string           `bson:"_id"`
	Doc *entity.Document `bson:"doc"`
}

// Load lee el documento completo. (nil, nil) si todavía no existe.
func (s *DocStore) Load(ctx context.Context) (*entity.Document, error) {
	var env envelope
	err := s.coll.FindOne(ctx, bson.M{"_id": s.key}).Decode(&env)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer documento: %w", err)
	}
	return env.Doc, nil
}

// Save reemplaza el documento completo; el change stream emite el cambio.
func (s *DocStore) Save(ctx context.Context, doc *entity.Document) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": s.key}, envelope{ID: s.key, Doc: doc}, opts)
	if err != nil {
		return fmt.Errorf("guardar documento: %w", err)
	}
	return nil
}

// Watch abre un change stream sobre el documento de esta clave y entrega
// el documento completo tras cada reemplazo. El canal se cierra al
// cancelar el contexto.
func (s *DocStore) Watch(ctx context.Context) (<-chan *entity.Document, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"documentKey._id": s.key}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := s.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("abrir change stream: %w", err)
	}

	ch := make(chan *entity.Document)
	go func() {
		defer close(ch)
		defer func() { _ = stream.Close(context.Background()) }()
		for stream.Next(ctx) {
			var event struct {
				FullDocument envelope `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				s.log.Error().Err(err).Msg("decodificar evento del change stream")
				continue
			}
			if event.FullDocument.Doc == nil {
				continue
			}
			select {
			case ch <- event.FullDocument.Doc:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			s.log.Error().Err(err).Msg("change stream interrumpido")
		}
	}()
	return ch, nil
}

// Close desconecta el cliente subyacente.
func (s *DocStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
