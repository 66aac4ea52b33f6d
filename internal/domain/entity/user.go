package entity

import "time"

// Estados de usuario.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// User representa una cuenta de acceso al sistema.
// AffiliateID solo viene poblado para usuarios con rol afiliado.
type User struct {
	ID           string
	Email        string // único
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Name         string
	Role         Role
	AffiliateID  *string
	Status       string // ver constantes UserStatus*
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
