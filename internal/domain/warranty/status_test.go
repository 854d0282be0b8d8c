package warranty_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/warranty"
)

var saoPaulo = mustLoad("America/Sao_Paulo")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("BRT", -3*3600)
	}
	return loc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func template(end time.Time) *entity.WarrantyTemplate {
	return &entity.WarrantyTemplate{
		IMEI:         "123",
		Model:        "iPhone 14",
		PurchaseDate: date(2024, 1, 1),
		WarrantyEnd:  end,
	}
}

func TestResolve_VenceHoyEsInactiva(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 59, 0, 0, saoPaulo)
	st := warranty.Resolve(template(date(2025, 3, 10)), now, saoPaulo)

	assert.Equal(t, 0, st.DaysRemaining)
	assert.False(t, st.IsActive, "vence hoy: 0 días y no activa")
}

func TestResolve_VenceMananaEsActiva(t *testing.T) {
	for _, hour := range []int{0, 9, 23} {
		now := time.Date(2025, 3, 10, hour, 30, 0, 0, saoPaulo)
		st := warranty.Resolve(template(date(2025, 3, 11)), now, saoPaulo)

		assert.Equal(t, 1, st.DaysRemaining, "la hora del día (%d) no altera el resultado", hour)
		assert.True(t, st.IsActive)
	}
}

func TestResolve_VencidaSeRecortaACero(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, saoPaulo)
	st := warranty.Resolve(template(date(2024, 6, 1)), now, saoPaulo)

	assert.Equal(t, 0, st.DaysRemaining)
	assert.False(t, st.IsActive)
}

func TestResolve_CopiaCampos(t *testing.T) {
	now := time.Date(2024, 5, 2, 8, 0, 0, 0, saoPaulo)
	st := warranty.Resolve(template(date(2024, 6, 1)), now, saoPaulo)

	assert.Equal(t, "iPhone 14", st.Model)
	assert.Equal(t, "123", st.IMEI)
	assert.Equal(t, date(2024, 1, 1), st.PurchaseDate)
	assert.Equal(t, date(2024, 6, 1), st.WarrantyEnd)
	assert.Equal(t, 30, st.DaysRemaining)
	assert.True(t, st.IsActive)
}

func TestDaysRemaining_UsaElDiaDeLaZonaConfigurada(t *testing.T) {
	// 01:00 UTC del día 11 todavía es día 10 en São Paulo.
	now := time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, warranty.DaysRemaining(date(2025, 3, 11), now, saoPaulo))
	assert.Equal(t, 0, warranty.DaysRemaining(date(2025, 3, 11), now, time.UTC))
}

func TestDaysRemaining_CruceDeHorarioDeVerano(t *testing.T) {
	ny := mustLoad("America/New_York")
	now := time.Date(2025, 3, 8, 22, 0, 0, 0, ny) // día anterior al cambio de hora

	assert.Equal(t, 2, warranty.DaysRemaining(date(2025, 3, 10), now, ny))
}

func TestDaysRemaining_FechasMuyLejanas(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 136965, warranty.DaysRemaining(date(2400, 1, 1), now, time.UTC), "más allá del rango de time.Duration")
	assert.Equal(t, 0, warranty.DaysRemaining(date(1600, 1, 1), now, time.UTC))
}

func TestParseDate(t *testing.T) {
	got, err := warranty.ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 1), got)

	got, err = warranty.ParseDate("2024-06-01T22:00:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 1), got, "respeta el día del offset enviado")

	for _, bad := range []string{"", "  ", "01/06/2024", "2024-13-01", "mañana"} {
		_, err := warranty.ParseDate(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidDate, bad)
	}
}
