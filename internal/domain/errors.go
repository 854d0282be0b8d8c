package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrDeviceNotFound     = errors.New("aparelho não encontrado")
	ErrWarrantyNotFound   = errors.New("garantia não encontrada para este IMEI")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrCPFAlreadyExists   = errors.New("el CPF ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidDate        = errors.New("fecha inválida")
	ErrInvalidFileType    = errors.New("tipo de archivo no permitido")
	ErrInvalidPassword    = errors.New("contraseña actual incorrecta")
	ErrPasswordTooLong    = errors.New("contraseña de más de 72 bytes")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrStorage            = errors.New("fallo en el almacenamiento de archivos")
)
