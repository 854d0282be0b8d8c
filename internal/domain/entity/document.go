package entity

import "time"

// DocumentType tipos de documento aceptados.
type DocumentType string

const (
	DocumentRG                  DocumentType = "RG"
	DocumentCPF                 DocumentType = "CPF"
	DocumentComprovanteEndereco DocumentType = "COMPROVANTE_ENDERECO"
	DocumentContrato            DocumentType = "CONTRATO"
)

// IsPersonal indica si el tipo se sube por /upload/document (el contrato tiene su propia ruta).
func (t DocumentType) IsPersonal() bool {
	switch t {
	case DocumentRG, DocumentCPF, DocumentComprovanteEndereco:
		return true
	}
	return false
}

// Document una fila por (usuario, tipo); re-subir reemplaza FileURL y UploadedAt.
type Document struct {
	ID           string
	UserID       string
	DocumentType DocumentType
	FileURL      string
	UploadedAt   time.Time
}

// ProfilePhoto foto de perfil, 1:1 con User.
type ProfilePhoto struct {
	ID         string
	UserID     string
	FileURL    string
	UploadedAt time.Time
}
