package ports

import (
	"context"

	"github.com/gleikstore/gleikstore-api/internal/domain/repository"
)

// WarrantyTxRunner ejecuta fn dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace rollback.
type WarrantyTxRunner interface {
	Run(ctx context.Context, fn func(
		warranties repository.WarrantyRepository,
		devices repository.DeviceRepository,
	) error) error
}
