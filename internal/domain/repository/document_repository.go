package repository

import (
	"context"

	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia para Document.
type DocumentRepository interface {
	// Upsert crea o reemplaza el documento del par (UserID, DocumentType) de forma atómica
	// y rellena ID con el de la fila persistida.
	Upsert(ctx context.Context, doc *entity.Document) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Document, error)
}

// ProfilePhotoRepository define el puerto de persistencia para ProfilePhoto (1:1 con User).
type ProfilePhotoRepository interface {
	Upsert(ctx context.Context, photo *entity.ProfilePhoto) error
	GetByUser(ctx context.Context, userID string) (*entity.ProfilePhoto, error)
}
