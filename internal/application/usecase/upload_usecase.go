package usecase

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/application/ports"
	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/repository"
	"github.com/gleikstore/gleikstore-api/pkg/metrics"
)

// Tipos de subida; también son la etiqueta "kind" de uploads_total.
const (
	UploadProfilePhoto = "profile-photo"
	UploadDocument     = "document"
	UploadContract     = "contract"
)

// MIME aceptados en cualquier subida.
var allowedMIME = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// IsAllowedMIME indica si el content-type está en la lista permitida.
func IsAllowedMIME(contentType string) bool {
	_, ok := allowedMIME[normalizeMIME(contentType)]
	return ok
}

// IsPDF indica si el content-type es application/pdf.
func IsPDF(contentType string) bool {
	return normalizeMIME(contentType) == "application/pdf"
}

// TempFileName nombre aleatorio uuid + extensión. Sin extensión en el original se usa la del MIME.
func TempFileName(original, contentType string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = allowedMIME[normalizeMIME(contentType)]
	}
	return uuid.New().String() + ext
}

func normalizeMIME(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// UploadedFile archivo ya escrito en el directorio temporal de subidas.
type UploadedFile struct {
	Path        string
	ContentType string
}

// UploadUseCase foto de perfil, documentos personales y contrato.
type UploadUseCase struct {
	storage   ports.FileStorage
	bucket    string
	documents repository.DocumentRepository
	photos    repository.ProfilePhotoRepository
	now       Clock
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(storage ports.FileStorage, bucket string, documents repository.DocumentRepository, photos repository.ProfilePhotoRepository) *UploadUseCase {
	return &UploadUseCase{storage: storage, bucket: bucket, documents: documents, photos: photos, now: time.Now}
}

// ProfilePhoto publica la foto y reemplaza la anterior del usuario.
func (uc *UploadUseCase) ProfilePhoto(ctx context.Context, userID string, f UploadedFile) (res *dto.ProfilePhotoUploadResponse, err error) {
	defer uc.observe(UploadProfilePhoto, &err)
	if !IsAllowedMIME(f.ContentType) {
		discard(f.Path)
		return nil, domain.ErrInvalidFileType
	}
	url, err := uc.store(ctx, f.Path, path.Join("profile-photos", userID, filepath.Base(f.Path)))
	if err != nil {
		return nil, err
	}
	photo := &entity.ProfilePhoto{ID: uuid.New().String(), UserID: userID, FileURL: url, UploadedAt: uc.now()}
	if err := uc.photos.Upsert(ctx, photo); err != nil {
		uc.orphaned(err, userID, url)
		return nil, err
	}
	return &dto.ProfilePhotoUploadResponse{
		Message:      "Foto de perfil atualizada com sucesso",
		ProfilePhoto: *toProfilePhotoResponse(photo),
	}, nil
}

// Document publica RG, CPF o COMPROVANTE_ENDERECO; re-subir el mismo tipo reemplaza la fila.
func (uc *UploadUseCase) Document(ctx context.Context, userID, documentType string, f UploadedFile) (res *dto.DocumentUploadResponse, err error) {
	defer uc.observe(UploadDocument, &err)
	t := entity.DocumentType(strings.ToUpper(strings.TrimSpace(documentType)))
	if !t.IsPersonal() {
		discard(f.Path)
		return nil, fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, documentType)
	}
	if !IsAllowedMIME(f.ContentType) {
		discard(f.Path)
		return nil, domain.ErrInvalidFileType
	}
	doc, err := uc.saveDocument(ctx, userID, t, f.Path, path.Join("documents", userID, string(t), filepath.Base(f.Path)))
	if err != nil {
		return nil, err
	}
	return &dto.DocumentUploadResponse{Message: "Documento enviado com sucesso", Document: toDocumentResponse(doc)}, nil
}

// Contract publica el contrato firmado; solo PDF.
func (uc *UploadUseCase) Contract(ctx context.Context, userID string, f UploadedFile) (res *dto.DocumentUploadResponse, err error) {
	defer uc.observe(UploadContract, &err)
	if !IsPDF(f.ContentType) {
		discard(f.Path)
		return nil, domain.ErrInvalidFileType
	}
	doc, err := uc.saveDocument(ctx, userID, entity.DocumentContrato, f.Path, path.Join("contracts", userID, filepath.Base(f.Path)))
	if err != nil {
		return nil, err
	}
	return &dto.DocumentUploadResponse{Message: "Contrato enviado com sucesso", Document: toDocumentResponse(doc)}, nil
}

// List documentos del usuario (más recientes primero) y su foto de perfil.
func (uc *UploadUseCase) List(ctx context.Context, userID string) (*dto.DocumentsResponse, error) {
	docs, err := uc.documents.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	photo, err := uc.photos.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.DocumentsResponse{Documents: toDocumentResponses(docs), ProfilePhoto: toProfilePhotoResponse(photo)}, nil
}

func (uc *UploadUseCase) saveDocument(ctx context.Context, userID string, t entity.DocumentType, localPath, key string) (*entity.Document, error) {
	url, err := uc.store(ctx, localPath, key)
	if err != nil {
		return nil, err
	}
	doc := &entity.Document{ID: uuid.New().String(), UserID: userID, DocumentType: t, FileURL: url, UploadedAt: uc.now()}
	if err := uc.documents.Upsert(ctx, doc); err != nil {
		uc.orphaned(err, userID, url)
		return nil, err
	}
	return doc, nil
}

func (uc *UploadUseCase) store(ctx context.Context, localPath, key string) (string, error) {
	url, err := uc.storage.Store(ctx, localPath, uc.bucket, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return url, nil
}

// orphaned deja rastro del objeto ya publicado cuyo registro no se pudo guardar,
// para limpiarlo a mano en el bucket.
func (uc *UploadUseCase) orphaned(err error, userID, url string) {
	log.Error().Err(err).
		Str("user_id", userID).
		Str("backend", uc.storage.Backend()).
		Str("url", url).
		Msg("archivo publicado sin fila en la BD: queda huérfano")
}

func (uc *UploadUseCase) observe(kind string, err *error) {
	metrics.UploadsTotal.WithLabelValues(kind, uc.storage.Backend(), metrics.Result(*err)).Inc()
}

func discard(p string) {
	if p != "" {
		_ = os.Remove(p)
	}
}
