package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gleikstore/gleikstore-api/internal/application/ports"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// PublicPrefix ruta desde la que Fiber sirve el directorio de subidas.
const PublicPrefix = "/uploads"

// LocalStorage deja el archivo en el directorio de subidas; se usa sin credenciales de Supabase.
type LocalStorage struct {
	dir string
}

// NewLocalStorage construye el adaptador sobre dir (UPLOAD_DIR).
func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

// Backend nombre del backend para logs y métricas.
func (s *LocalStorage) Backend() string { return "local" }

// Store conserva el archivo y devuelve /uploads/<nombre>. bucket y objectKey no se usan:
// el nombre temporal ya es único.
func (s *LocalStorage) Store(_ context.Context, localPath, _, _ string) (string, error) {
	name := filepath.Base(localPath)
	target := filepath.Join(s.dir, name)
	if filepath.Clean(filepath.Dir(localPath)) != filepath.Clean(s.dir) {
		if err := os.Rename(localPath, target); err != nil {
			return "", fmt.Errorf("storage: mover archivo a %s: %w", s.dir, err)
		}
	} else if _, err := os.Stat(target); err != nil {
		return "", fmt.Errorf("storage: archivo temporal: %w", err)
	}
	return PublicPrefix + "/" + name, nil
}
