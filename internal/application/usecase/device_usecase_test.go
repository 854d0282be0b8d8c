package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/internal/testutil"
)

func newDeviceUC(store *testutil.Store) *usecase.DeviceUseCase {
	return usecase.NewDeviceUseCase(store.Devices(), store.Warranties(), newWarrantyUC(store))
}

func TestDeviceCreate_ConPlantilla_CopiaFechasYResuelve(t *testing.T) {
	store := testutil.NewStore()
	seedUser(t, store, "u1", "a@x.com", "1")
	seedTemplate(t, store, "123", "iPhone 14", date(2024, 1, 1), date(2025, 1, 1))

	res, err := newDeviceUC(store).Create(ctx, "u1", dto.CreateDeviceRequest{Model: "iPhone 14", IMEI: "123"})
	require.NoError(t, err)

	require.NotNil(t, res.Device.WarrantyEnd)
	assert.Equal(t, date(2025, 1, 1), *res.Device.WarrantyEnd)
	require.NotNil(t, res.Warranty)
	assert.True(t, res.Warranty.IsActive)
	assert.Empty(t, res.WarrantyMessage)
}

func TestDeviceCreate_ConPlantilla_ConservaModeloDelCliente(t *testing.T) {
	store := testutil.NewStore()
	seedUser(t, store, "u1", "a@x.com", "1")
	seedTemplate(t, store, "123", "iPhone 15 Pro", date(2024, 1, 1), date(2025, 1, 1))

	res, err := newDeviceUC(store).Create(ctx, "u1", dto.CreateDeviceRequest{Model: "Meu iPhone", IMEI: "123"})
	require.NoError(t, err)

	assert.Equal(t, "Meu iPhone", res.Device.Model)
	require.NotNil(t, res.Device.PurchaseDate)
	assert.Equal(t, date(2024, 1, 1), *res.Device.PurchaseDate)
	require.NotNil(t, res.Warranty)
	assert.Equal(t, "iPhone 15 Pro", res.Warranty.Model, "el panel de garantía muestra el modelo de la plantilla")
}

func TestDeviceCreate_SinPlantilla_GuardaYAvisa(t *testing.T) {
	store := testutil.NewStore()
	seedUser(t, store, "u1", "a@x.com", "1")
	uc := newDeviceUC(store)

	res, err := uc.Create(ctx, "u1", dto.CreateDeviceRequest{Model: "iPhone 14", IMEI: "999"})
	require.NoError(t, err, "la falta de garantía no impide guardar")
	assert.Nil(t, res.Warranty)
	assert.Nil(t, res.Device.PurchaseDate)
	assert.Equal(t, usecase.WarrantyMissingMessage, res.WarrantyMessage)

	list, err := uc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeviceCreate_CamposObligatorios(t *testing.T) {
	_, err := newDeviceUC(testutil.NewStore()).Create(ctx, "u1", dto.CreateDeviceRequest{Model: "iPhone"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDevice_AjenoONoUUID_NotFound(t *testing.T) {
	store := testutil.NewStore()
	seedUser(t, store, "u1", "a@x.com", "1")
	seedUser(t, store, "u2", "b@x.com", "2")
	uc := newDeviceUC(store)

	res, err := uc.Create(ctx, "u1", dto.CreateDeviceRequest{Model: "iPhone 14", IMEI: "123"})
	require.NoError(t, err)
	id := res.Device.ID

	_, err = uc.Get(ctx, "u2", id)
	assert.ErrorIs(t, err, domain.ErrDeviceNotFound)
	_, err = uc.Update(ctx, "u2", id, dto.UpdateDeviceRequest{Model: "hack"})
	assert.ErrorIs(t, err, domain.ErrDeviceNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "u2", id), domain.ErrDeviceNotFound)

	_, err = uc.Get(ctx, "u1", "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrDeviceNotFound)

	got, err := uc.Get(ctx, "u1", id)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 14", got.Model, "el dueño sigue viendo su aparelho intacto")
}

func TestDeviceUpdate_CambioDeIMEIRecalculaFechas(t *testing.T) {
	store := testutil.NewStore()
	seedUser(t, store, "u1", "a@x.com", "1")
	seedTemplate(t, store, "123", "iPhone 14", date(2024, 1, 1), date(2025, 1, 1))
	uc := newDeviceUC(store)

	res, err := uc.Create(ctx, "u1", dto.CreateDeviceRequest{Model: "iPhone 14", IMEI: "123"})
	require.NoError(t, err)

	upd, err := uc.Update(ctx, "u1", res.Device.ID, dto.UpdateDeviceRequest{IMEI: "456"})
	require.NoError(t, err)
	assert.Equal(t, "456", upd.Device.IMEI)
	assert.Nil(t, upd.Device.WarrantyEnd, "sin plantilla para el IMEI nuevo las fechas quedan vacías")
	assert.Equal(t, usecase.WarrantyMissingMessage, upd.WarrantyMessage)
}

func TestDeviceDelete(t *testing.T) {
	store := testutil.NewStore()
	seedUser(t, store, "u1", "a@x.com", "1")
	uc := newDeviceUC(store)
	res, err := uc.Create(ctx, "u1", dto.CreateDeviceRequest{Model: "iPhone 14", IMEI: "123"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "u1", res.Device.ID))
	assert.ErrorIs(t, uc.Delete(ctx, "u1", res.Device.ID), domain.ErrDeviceNotFound)
}
