package dto

import "github.com/tu-usuario/supermercado-pro/internal/domain/entity"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de API más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest entrada para crear un usuario STAFF.
// Password vacío recibe el valor por defecto "1234" (comportamiento heredado
// de la pantalla de administración).
type CreateUserRequest struct {
	Username    string              `json:"username" validate:"required,min=1,max=100"`
	Password    string              `json:"password"`
	Permissions []entity.Permission `json:"permissions" validate:"dive,oneof=DASHBOARD INVENTORY ORDER_REQUESTS BARCODE_PRINT ADMIN_SETTINGS"`
}

// UpdateUserRequest entrada para editar un usuario. Password vacío conserva el anterior.
type UpdateUserRequest struct {
	Username    string              `json:"username" validate:"required,min=1,max=100"`
	Password    string              `json:"password"`
	Permissions []entity.Permission `json:"permissions" validate:"dive,oneof=DASHBOARD INVENTORY ORDER_REQUESTS BARCODE_PRINT ADMIN_SETTINGS"`
}

// TogglePermissionRequest alterna una etiqueta de permiso en un usuario.
type TogglePermissionRequest struct {
	Permission entity.Permission `json:"permission" validate:"required,oneof=DASHBOARD INVENTORY ORDER_REQUESTS BARCODE_PRINT ADMIN_SETTINGS"`
}

// UserResponse usuario hacia afuera: nunca incluye el password.
type UserResponse struct {
	ID          string              `json:"id"`
	Username    string              `json:"username"`
	Role        string              `json:"role"`
	Permissions []entity.Permission `json:"permissions"`
}

// ToUserResponse convierte la entidad al DTO de salida.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		Permissions: append([]entity.Permission(nil), u.Permissions...),
	}
}
