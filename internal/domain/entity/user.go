package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | manager | operator
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
