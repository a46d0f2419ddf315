// Package session implementa la persistencia local de sesión sobre un
// archivo JSON en disco, el equivalente de un almacén clave-valor del
// lado del cliente.
package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tu-usuario/supermercado-pro/internal/domain/entity"
)

// FileStore guarda el usuario de la sesión en un archivo JSON.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save persiste el usuario serializado. Escribe el archivo completo.
func (s *FileStore) Save(u *entity.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("escribir sesión: %w", err)
	}
	return nil
}

// Load recupera la sesión persistida. (nil, nil) si el archivo no existe.
func (s *FileStore) Load() (*entity.User, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var u entity.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decodificar sesión: %w", err)
	}
	return &u, nil
}

// Clear borra el archivo de sesión. No falla si ya no existe.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
