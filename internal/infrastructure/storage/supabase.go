package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gleikstore/gleikstore-api/internal/application/ports"
)

// Verificar en tiempo de compilación que SupabaseStorage implementa FileStorage.
var _ ports.FileStorage = (*SupabaseStorage)(nil)

// SupabaseStorage adaptador de FileStorage sobre la API REST de Supabase Storage.
// Usa net/http de la librería estándar; no requiere el SDK oficial.
type SupabaseStorage struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewSupabaseStorage construye el adaptador. baseURL es SUPABASE_URL sin barra final.
func NewSupabaseStorage(baseURL, serviceKey string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Backend nombre del backend para logs y métricas.
func (s *SupabaseStorage) Backend() string { return "supabase" }

type supabaseError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// Store sube el archivo con x-upsert y borra el temporal local; devuelve la URL pública del objeto.
// No hay reintentos ni caída a disco local: el error vuelve al caso de uso.
func (s *SupabaseStorage) Store(ctx context.Context, localPath, bucket, objectKey string) (string, error) {
	defer func() { _ = os.Remove(localPath) }()

	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("storage: leer archivo temporal: %w", err)
	}

	key := escapeKey(objectKey)
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, url.PathEscape(bucket), key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("storage: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Content-Type", contentTypeOf(localPath, data))
	req.Header.Set("x-upsert", "true")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("storage: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("storage: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
		var e supabaseError
		if jsonErr := json.Unmarshal(raw, &e); jsonErr == nil && e.Message != "" {
			return "", fmt.Errorf("storage: Supabase HTTP %d (%s): %s", resp.StatusCode, e.Error, e.Message)
		}
		return "", fmt.Errorf("storage: Supabase HTTP %d: %s", resp.StatusCode, string(raw))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, url.PathEscape(bucket), key), nil
}

// escapeKey escapa cada segmento de la clave y conserva las barras.
func escapeKey(key string) string {
	parts := strings.Split(filepath.ToSlash(key), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func contentTypeOf(path string, data []byte) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}
