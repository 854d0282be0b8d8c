package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/repository"
)

var (
	_ repository.DocumentRepository     = (*DocumentRepo)(nil)
	_ repository.ProfilePhotoRepository = (*ProfilePhotoRepo)(nil)
)

// DocumentRepo implementación de DocumentRepository.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador.
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Upsert apoyado en el índice único (user_id, document_type): dos subidas simultáneas
// del mismo tipo terminan en una sola fila con la última URL.
func (r *DocumentRepo) Upsert(ctx context.Context, doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, user_id, document_type, file_url, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, document_type) DO UPDATE
		SET file_url = EXCLUDED.file_url, uploaded_at = EXCLUDED.uploaded_at
		RETURNING id`
	err := r.q.QueryRow(ctx, query, doc.ID, doc.UserID, string(doc.DocumentType), doc.FileURL, doc.UploadedAt).
		Scan(&doc.ID)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

// ListByUser lista los documentos del usuario, subida más reciente primero.
func (r *DocumentRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Document, error) {
	query := `
		SELECT id, user_id, document_type, file_url, uploaded_at
		FROM documents WHERE user_id = $1 ORDER BY uploaded_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Document, 0)
	for rows.Next() {
		var d entity.Document
		var docType string
		if err := rows.Scan(&d.ID, &d.UserID, &docType, &d.FileURL, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.DocumentType = entity.DocumentType(docType)
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ProfilePhotoRepo implementación de ProfilePhotoRepository.
type ProfilePhotoRepo struct {
	q Querier
}

// NewProfilePhotoRepository construye el adaptador.
func NewProfilePhotoRepository(q Querier) *ProfilePhotoRepo {
	return &ProfilePhotoRepo{q: q}
}

// Upsert crea o reemplaza la foto del usuario.
func (r *ProfilePhotoRepo) Upsert(ctx context.Context, photo *entity.ProfilePhoto) error {
	query := `
		INSERT INTO profile_photos (id, user_id, file_url, uploaded_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET file_url = EXCLUDED.file_url, uploaded_at = EXCLUDED.uploaded_at
		RETURNING id`
	err := r.q.QueryRow(ctx, query, photo.ID, photo.UserID, photo.FileURL, photo.UploadedAt).Scan(&photo.ID)
	if err != nil {
		return fmt.Errorf("upsert profile photo: %w", err)
	}
	return nil
}

// GetByUser obtiene la foto del usuario, o nil.
func (r *ProfilePhotoRepo) GetByUser(ctx context.Context, userID string) (*entity.ProfilePhoto, error) {
	query := `SELECT id, user_id, file_url, uploaded_at FROM profile_photos WHERE user_id = $1`
	var p entity.ProfilePhoto
	err := r.q.QueryRow(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.FileURL, &p.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile photo: %w", err)
	}
	return &p, nil
}
