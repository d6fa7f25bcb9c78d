package entity

import "time"

// Roles de usuario para el control de acceso por rutas.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// User representa un usuario del sistema. PasswordHash es bcrypt; nunca se
// expone en respuestas.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
