package repository

import (
	"context"
	"time"

	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
)

// DeviceRepository define el puerto de persistencia para Device.
// Las operaciones del cliente siempre filtran por userID.
type DeviceRepository interface {
	Create(ctx context.Context, device *entity.Device) error
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Device, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Device, error)
	Update(ctx context.Context, device *entity.Device) error
	DeleteByIDAndUser(ctx context.Context, id, userID string) (bool, error)
	// FindFirstByIMEI aparelho vinculado más antiguo con ese IMEI (panel admin legado).
	FindFirstByIMEI(ctx context.Context, imei string) (*entity.Device, error)
	// SyncWarranty refresca modelo y fechas informativas de todos los aparelhos con ese IMEI.
	SyncWarranty(ctx context.Context, imei, model string, purchaseDate, warrantyEnd time.Time) (int64, error)
}
