package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/repository"
)

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

const deviceColumns = `id, user_id, model, imei, purchase_date, warranty_end, created_at, updated_at`

// DeviceRepo implementación de DeviceRepository (usable con pool o tx).
type DeviceRepo struct {
	q Querier
}

// NewDeviceRepository construye el adaptador.
func NewDeviceRepository(q Querier) *DeviceRepo {
	return &DeviceRepo{q: q}
}

// Create persiste un nuevo aparelho.
func (r *DeviceRepo) Create(ctx context.Context, d *entity.Device) error {
	query := `INSERT INTO devices (` + deviceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.UserID, d.Model, d.IMEI, nullableDate(d.PurchaseDate), nullableDate(d.WarrantyEnd),
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert device: %w", err)
	}
	return nil
}

// GetByIDAndUser obtiene un aparelho solo si pertenece a userID.
func (r *DeviceRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Device, error) {
	row := r.q.QueryRow(ctx, `SELECT `+deviceColumns+` FROM devices WHERE id = $1 AND user_id = $2`, id, userID)
	return scanDeviceRow(row, "get device")
}

// FindFirstByIMEI obtiene el aparelho más antiguo con ese IMEI, de cualquier usuario.
func (r *DeviceRepo) FindFirstByIMEI(ctx context.Context, imei string) (*entity.Device, error) {
	row := r.q.QueryRow(ctx, `SELECT `+deviceColumns+` FROM devices WHERE imei = $1 ORDER BY created_at LIMIT 1`, imei)
	return scanDeviceRow(row, "get device by imei")
}

// ListByUser lista los aparelhos del usuario, más recientes primero.
func (r *DeviceRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Device, error) {
	rows, err := r.q.Query(ctx, `SELECT `+deviceColumns+` FROM devices WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Device, 0)
	for rows.Next() {
		var d entity.Device
		if err := rows.Scan(&d.ID, &d.UserID, &d.Model, &d.IMEI, &d.PurchaseDate, &d.WarrantyEnd, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza modelo, IMEI y fechas informativas.
func (r *DeviceRepo) Update(ctx context.Context, d *entity.Device) error {
	query := `
		UPDATE devices SET model = $2, imei = $3, purchase_date = $4, warranty_end = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Model, d.IMEI, nullableDate(d.PurchaseDate), nullableDate(d.WarrantyEnd), d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update device: %w", err)
	}
	return nil
}

// DeleteByIDAndUser elimina el aparelho si pertenece a userID; false si no existía.
func (r *DeviceRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM devices WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete device: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SyncWarranty copia modelo y fechas de la plantilla a todos los aparelhos con ese IMEI.
func (r *DeviceRepo) SyncWarranty(ctx context.Context, imei, model string, purchaseDate, warrantyEnd time.Time) (int64, error) {
	query := `
		UPDATE devices SET model = $2, purchase_date = $3, warranty_end = $4, updated_at = now()
		WHERE imei = $1`
	tag, err := r.q.Exec(ctx, query, imei, model, purchaseDate, warrantyEnd)
	if err != nil {
		return 0, fmt.Errorf("sync device warranty: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanDeviceRow(row pgx.Row, op string) (*entity.Device, error) {
	var d entity.Device
	err := row.Scan(&d.ID, &d.UserID, &d.Model, &d.IMEI, &d.PurchaseDate, &d.WarrantyEnd, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &d, nil
}
