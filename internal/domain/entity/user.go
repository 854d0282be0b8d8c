package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User representa un cliente de la tienda (o un administrador).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CPF          string
	Phone        string
	Address      string
	Role         string // USER, ADMIN
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene el rol privilegiado.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
