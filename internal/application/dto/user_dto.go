package dto

import "time"

// RegisterRequest entrada para crear una cuenta. Todos los campos son obligatorios.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	CPF      string `json:"cpf"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest campos vacíos no se modifican. NewPassword exige CurrentPassword.
type UpdateUserRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthResponse salida de registro y login.
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// ProfileResponse usuario con su foto de perfil (nil si no tiene).
type ProfileResponse struct {
	UserResponse
	ProfilePhoto *ProfilePhotoResponse `json:"profilePhoto"`
}

// MeResponse perfil completo para el dashboard.
type MeResponse struct {
	ProfileResponse
	Devices   []DeviceResponse   `json:"devices"`
	Documents []DocumentResponse `json:"documents"`
}

// UserEnvelope {"user": ...}
type UserEnvelope struct {
	User any `json:"user"`
}

// UpdateUserResponse salida de PUT /api/user.
type UpdateUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
