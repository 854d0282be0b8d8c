package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
)

func (e *testEnv) createDevice(t *testing.T, userID, model, imei string) map[string]any {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/device", bearer(t, userID), map[string]string{"model": model, "imei": imei})
	require.Equal(t, http.StatusCreated, status, "cuerpo: %v", body)
	return body
}

func (e *testEnv) adminUpsert(t *testing.T, imei, model, purchase, end string) map[string]any {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/admin/warranty", bearer(t, adminID), map[string]string{
		"imei": imei, "model": model, "purchaseDate": purchase, "warrantyEnd": end,
	})
	require.Equal(t, http.StatusOK, status, "cuerpo: %v", body)
	return body
}

func TestDevice_SinGarantiaDevuelveAviso(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)

	body := env.createDevice(t, customerID, "iPhone 14", "356789")
	device := body["device"].(map[string]any)
	assert.Nil(t, device["purchaseDate"])
	assert.Nil(t, device["warrantyEnd"])
	assert.Nil(t, body["warranty"])
	assert.Equal(t, usecase.WarrantyMissingMessage, body["warrantyMessage"])
}

func TestDevice_CopiaFechasDeLaPlantilla(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)
	env.seedUser(t, adminID, "admin@x.com", "333", entity.RoleAdmin)
	env.adminUpsert(t, "356789", "iPhone 14", "2024-01-01", "2025-01-01")

	body := env.createDevice(t, customerID, "iPhone 14", "356789")
	device := body["device"].(map[string]any)
	assert.Contains(t, device["purchaseDate"], "2024-01-01")
	assert.Contains(t, device["warrantyEnd"], "2025-01-01")
	warranty := body["warranty"].(map[string]any)
	assert.Equal(t, true, warranty["isActive"])
	assert.NotContains(t, body, "warrantyMessage")
}

func TestDevice_CamposObligatorios(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)

	status, body := env.do(t, http.MethodPost, "/api/device", bearer(t, customerID), map[string]string{"model": "iPhone"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, true, body["error"])
}

func TestDevice_OtroUsuarioRecibe404(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)
	env.seedUser(t, otherID, "o@x.com", "222", entity.RoleUser)
	id := env.createDevice(t, customerID, "iPhone 14", "356789")["device"].(map[string]any)["id"].(string)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		status, body := env.do(t, method, "/api/device/"+id, bearer(t, otherID), map[string]string{"model": "x", "imei": "1"})
		assert.Equal(t, http.StatusNotFound, status, method)
		assert.Equal(t, "DEVICE_NOT_FOUND", errorCode(body), method)
	}

	status, body := env.do(t, http.MethodGet, "/api/device", bearer(t, otherID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["devices"])

	status, _ = env.do(t, http.MethodGet, "/api/device/"+id, bearer(t, customerID), nil)
	assert.Equal(t, http.StatusOK, status, "el dueño sí lo ve")
}

func TestDevice_IDNoUUID404(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)

	status, body := env.do(t, http.MethodGet, "/api/device/no-es-uuid", bearer(t, customerID), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "DEVICE_NOT_FOUND", errorCode(body))
}

func TestDevice_UpdateYDelete(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)
	env.seedUser(t, adminID, "admin@x.com", "333", entity.RoleAdmin)
	env.adminUpsert(t, "999", "iPhone 15", "2024-02-01", "2025-02-01")
	id := env.createDevice(t, customerID, "iPhone 14", "356789")["device"].(map[string]any)["id"].(string)

	status, body := env.do(t, http.MethodPut, "/api/device/"+id, bearer(t, customerID), map[string]string{"model": "iPhone 15", "imei": "999"})
	require.Equal(t, http.StatusOK, status)
	device := body["device"].(map[string]any)
	assert.Equal(t, "999", device["imei"])
	assert.Contains(t, device["warrantyEnd"], "2025-02-01", "el nuevo IMEI trae su plantilla")

	status, body = env.do(t, http.MethodDelete, "/api/device/"+id, bearer(t, customerID), nil)
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["message"])

	status, _ = env.do(t, http.MethodDelete, "/api/device/"+id, bearer(t, customerID), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta pública de garantía y certificado
// ──────────────────────────────────────────────────────────────────────────────

func TestWarrantyLookup_PublicoSinToken(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, adminID, "admin@x.com", "333", entity.RoleAdmin)

	status, body := env.do(t, http.MethodGet, "/api/device/warranty/123", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "WARRANTY_NOT_FOUND", errorCode(body))

	env.adminUpsert(t, "123", "iPhone 13", "2024-01-01", "2024-06-01")
	status, body = env.do(t, http.MethodGet, "/api/device/warranty/123", "", nil)
	require.Equal(t, http.StatusOK, status)
	warranty := body["warranty"].(map[string]any)
	assert.Equal(t, "iPhone 13", warranty["model"])
	assert.Equal(t, true, warranty["isActive"])
	assert.Equal(t, float64(92), warranty["daysRemaining"], "de 2024-03-01 a 2024-06-01")
}

func TestAdminWarranty_VencidaTrasLaFecha(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)
	env.seedUser(t, adminID, "admin@x.com", "333", entity.RoleAdmin)
	env.createDevice(t, customerID, "iPhone 13", "123")

	body := env.adminUpsert(t, "123", "iPhone 13", "2024-01-01", "2024-06-01")
	assert.Equal(t, float64(1), body["devicesUpdated"], "el aparelho ya registrado se sincroniza")

	env.now = time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)
	status, body := env.do(t, http.MethodGet, "/api/device/warranty/123", "", nil)
	require.Equal(t, http.StatusOK, status)
	warranty := body["warranty"].(map[string]any)
	assert.Equal(t, false, warranty["isActive"])
	assert.Equal(t, float64(0), warranty["daysRemaining"])

	status, body = env.do(t, http.MethodGet, "/api/device", bearer(t, customerID), nil)
	require.Equal(t, http.StatusOK, status)
	device := body["devices"].([]any)[0].(map[string]any)
	assert.Contains(t, device["warrantyEnd"], "2024-06-01")
}

func TestAdminWarranty_Validaciones(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, adminID, "admin@x.com", "333", entity.RoleAdmin)

	cases := []struct {
		name string
		in   map[string]string
		code string
	}{
		{"fecha ilegible", map[string]string{"imei": "1", "model": "m", "purchaseDate": "01/02/2024", "warrantyEnd": "2024-06-01"}, "INVALID_DATE"},
		{"fin antes de compra", map[string]string{"imei": "1", "model": "m", "purchaseDate": "2024-06-01", "warrantyEnd": "2024-01-01"}, "INVALID_DATE"},
		{"sin modelo", map[string]string{"imei": "1", "purchaseDate": "2024-01-01", "warrantyEnd": "2024-06-01"}, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := env.do(t, http.MethodPost, "/api/admin/warranty", bearer(t, adminID), tc.in)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tc.code, errorCode(body))
		})
	}
}

func TestAdminDevices_LegacyActualizaPlantilla(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)
	env.seedUser(t, adminID, "admin@x.com", "333", entity.RoleAdmin)

	in := map[string]string{"imei": "555", "model": "iPhone 12", "purchaseDate": "2024-01-10", "warrantyEnd": "2024-12-10"}
	status, _ := env.do(t, http.MethodPost, "/api/admin/devices", bearer(t, adminID), in)
	assert.Equal(t, http.StatusNotFound, status, "sin aparelho vinculado")

	env.createDevice(t, customerID, "iPhone 12", "555")
	status, body := env.do(t, http.MethodPost, "/api/admin/devices", bearer(t, adminID), in)
	require.Equal(t, http.StatusOK, status, "cuerpo: %v", body)
	assert.Contains(t, body["device"].(map[string]any)["warrantyEnd"], "2024-12-10")

	status, body = env.do(t, http.MethodGet, "/api/admin/devices/555", bearer(t, adminID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "555", body["device"].(map[string]any)["imei"])

	status, body = env.do(t, http.MethodGet, "/api/admin/warranty/555", bearer(t, adminID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "iPhone 12", body["warranty"].(map[string]any)["model"])
}

func TestCertificate_PDF(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, adminID, "admin@x.com", "333", entity.RoleAdmin)

	status, _ := env.do(t, http.MethodGet, "/api/device/warranty/777/certificate", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	env.adminUpsert(t, "777", "iPhone 15", "2024-01-01", "2025-01-01")
	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/device/warranty/777/certificate", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `inline; filename="garantia-777.pdf"`, resp.Header.Get("Content-Disposition"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}
