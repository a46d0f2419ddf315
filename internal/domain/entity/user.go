package entity

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// Permission etiqueta de capacidad que habilita un módulo de la aplicación.
type Permission string

// Permisos disponibles (coinciden con las pestañas de la aplicación).
const (
	PermDashboard     Permission = "DASHBOARD"
	PermInventory     Permission = "INVENTORY"
	PermOrderRequests Permission = "ORDER_REQUESTS"
	PermBarcodePrint  Permission = "BARCODE_PRINT"
	PermAdminSettings Permission = "ADMIN_SETTINGS"
)

// AllPermissions devuelve el conjunto completo de permisos, en el orden de la UI.
func AllPermissions() []Permission {
	return []Permission{PermDashboard, PermInventory, PermOrderRequests, PermBarcodePrint, PermAdminSettings}
}

// User representa un usuario del sistema. El password viaja en claro dentro
// del documento compartido: el modelo de datos lo exige legible por cualquier
// sesión y el login es comparación exacta de strings.
// El admin por convención tiene todos los permisos, pero la autorización
// siempre consulta la lista explícita, nunca el nombre del rol.
type User struct {
	ID          string       `json:"id" bson:"id"`
	Username    string       `json:"username" bson:"username"`
	Password    string       `json:"password,omitempty" bson:"password,omitempty"`
	Role        string       `json:"role" bson:"role"` // ADMIN | STAFF
	Permissions []Permission `json:"permissions" bson:"permissions"`
}

// HasPermission indica si el usuario tiene la etiqueta dada.
func (u *User) HasPermission(p Permission) bool {
	if u == nil {
		return false
	}
	for _, perm := range u.Permissions {
		if perm == p {
			return true
		}
	}
	return false
}

// Clone devuelve una copia profunda del usuario (la lista de permisos no se comparte).
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Permissions = append([]Permission(nil), u.Permissions...)
	return &c
}
