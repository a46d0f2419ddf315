package session

import "github.com/tu-usuario/supermercado-pro/internal/domain/entity"

// TokenStore es el puerto hacia la persistencia local de sesión: un par
// clave-valor de vida corta con el usuario serializado. Sobrevive reinicios
// del proceso, se borra en logout y nunca toca el documento compartido.
type TokenStore interface {
	// Save persiste el usuario serializado como token de sesión.
	Save(u *entity.User) error

	// Load recupera el token persistido. Devuelve (nil, nil) si no hay sesión.
	Load() (*entity.User, error)

	// Clear borra el token persistido.
	Clear() error
}
