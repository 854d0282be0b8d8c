package repository

import (
	"context"

	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
)

// WarrantyRepository define el puerto de persistencia para WarrantyTemplate.
type WarrantyRepository interface {
	GetByIMEI(ctx context.Context, imei string) (*entity.WarrantyTemplate, error)
	// Upsert inserta o reemplaza todos los campos por IMEI en una sola sentencia
	// y rellena ID/CreatedAt con los valores persistidos.
	Upsert(ctx context.Context, w *entity.WarrantyTemplate) error
}
