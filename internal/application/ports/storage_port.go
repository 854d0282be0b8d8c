package ports

import "context"

// FileStorage puerto de salida para guardar archivos subidos y obtener su URL pública.
// Hay una implementación remota (Supabase Storage) y otra local; se elige una sola vez al arrancar.
type FileStorage interface {
	// Store publica el archivo temporal localPath bajo bucket/objectKey y devuelve la URL pública.
	// Un fallo remoto se devuelve como error, nunca se degrada a disco local.
	Store(ctx context.Context, localPath, bucket, objectKey string) (string, error)
	// Backend nombre corto de la implementación ("supabase", "local") para logs y métricas.
	Backend() string
}
