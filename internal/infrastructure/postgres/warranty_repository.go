package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/repository"
)

var _ repository.WarrantyRepository = (*WarrantyRepo)(nil)

// WarrantyRepo implementación de WarrantyRepository.
type WarrantyRepo struct {
	q Querier
}

// NewWarrantyRepository construye el adaptador.
func NewWarrantyRepository(q Querier) *WarrantyRepo {
	return &WarrantyRepo{q: q}
}

// GetByIMEI obtiene la plantilla por IMEI exacto.
func (r *WarrantyRepo) GetByIMEI(ctx context.Context, imei string) (*entity.WarrantyTemplate, error) {
	query := `
		SELECT id, imei, model, purchase_date, warranty_end, created_at, updated_at
		FROM warranty_templates WHERE imei = $1`
	var w entity.WarrantyTemplate
	err := r.q.QueryRow(ctx, query, imei).Scan(
		&w.ID, &w.IMEI, &w.Model, &w.PurchaseDate, &w.WarrantyEnd, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warranty template: %w", err)
	}
	return &w, nil
}

// Upsert inserta o reemplaza la plantilla por IMEI (última escritura gana).
func (r *WarrantyRepo) Upsert(ctx context.Context, w *entity.WarrantyTemplate) error {
	query := `
		INSERT INTO warranty_templates (id, imei, model, purchase_date, warranty_end, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (imei) DO UPDATE
		SET model = EXCLUDED.model,
		    purchase_date = EXCLUDED.purchase_date,
		    warranty_end = EXCLUDED.warranty_end,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, w.ID, w.IMEI, w.Model, w.PurchaseDate, w.WarrantyEnd, w.UpdatedAt).
		Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert warranty template: %w", err)
	}
	return nil
}
