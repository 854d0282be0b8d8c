// Package storage implementaciones de ports.FileStorage: Supabase Storage y disco local.
package storage

import (
	"fmt"
	"os"

	"github.com/gleikstore/gleikstore-api/internal/application/ports"
	"github.com/gleikstore/gleikstore-api/pkg/config"
)

// New elige el backend una sola vez al arrancar: Supabase si hay URL y service key, si no disco local.
// Crea UploadDir en ambos casos porque los handlers escriben ahí el temporal.
func New(cfg config.StorageConfig) (ports.FileStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", cfg.UploadDir, err)
	}
	if cfg.RemoteEnabled() {
		return NewSupabaseStorage(cfg.SupabaseURL, cfg.SupabaseServiceKey), nil
	}
	return NewLocalStorage(cfg.UploadDir), nil
}
