package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/internal/testutil"
)

func TestCatalogSave_CreaYFormateaPrecio(t *testing.T) {
	store := testutil.NewStore()
	uc := usecase.NewCatalogUseCase(store.Products())

	p, created, err := uc.Save(ctx, dto.SaveProductRequest{
		Model: "iPhone 15 Pro", Storage: "256GB", Price: decimal.RequireFromString("7499"),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, p.Available, "por defecto el producto queda disponible")
	assert.Equal(t, "R$ 7.499,00", p.PriceFormatted)

	off := false
	_, created, err = uc.Save(ctx, dto.SaveProductRequest{ID: p.ID, Model: "iPhone 15 Pro", Price: decimal.RequireFromString("6999.9"), Available: &off})
	require.NoError(t, err)
	assert.False(t, created)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "los no disponibles no salen en la vitrine")
}

func TestCatalogSave_Validacion(t *testing.T) {
	uc := usecase.NewCatalogUseCase(testutil.NewStore().Products())

	_, _, err := uc.Save(ctx, dto.SaveProductRequest{Model: "X", Price: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = uc.Save(ctx, dto.SaveProductRequest{ID: "00000000-0000-0000-0000-000000000009", Model: "X", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
