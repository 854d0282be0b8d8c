package repository

import (
	"context"

	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para el catálogo.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	ListAvailable(ctx context.Context) ([]*entity.Product, error)
}
