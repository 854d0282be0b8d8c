package dto

import "time"

// DocumentResponse salida de un documento.
type DocumentResponse struct {
	ID           string    `json:"id"`
	DocumentType string    `json:"documentType"`
	FileURL      string    `json:"fileUrl"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// ProfilePhotoResponse salida de la foto de perfil.
type ProfilePhotoResponse struct {
	ID         string    `json:"id"`
	FileURL    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// DocumentUploadResponse salida de /upload/document y /upload/contract.
type DocumentUploadResponse struct {
	Message  string           `json:"message"`
	Document DocumentResponse `json:"document"`
}

// ProfilePhotoUploadResponse salida de /upload/profile-photo.
type ProfilePhotoUploadResponse struct {
	Message      string               `json:"message"`
	ProfilePhoto ProfilePhotoResponse `json:"profilePhoto"`
}

// DocumentsResponse salida de GET /upload/documents.
type DocumentsResponse struct {
	Documents    []DocumentResponse    `json:"documents"`
	ProfilePhoto *ProfilePhotoResponse `json:"profilePhoto"`
}
