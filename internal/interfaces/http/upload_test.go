package http_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfoto")

func TestUpload_FotoDePerfil(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)

	req := multipartRequest(t, "/api/upload/profile-photo", bearer(t, customerID), "photo", "eu.png", "image/png", pngBytes, nil)
	status, body := env.send(t, req)
	require.Equal(t, http.StatusOK, status, "cuerpo: %v", body)

	photo := body["profilePhoto"].(map[string]any)
	assert.Contains(t, photo["fileUrl"], "https://storage.test/gleikstore/profile-photos/"+customerID+"/")
	require.Len(t, env.files.Keys, 1)

	status, body = env.do(t, http.MethodGet, "/api/user", bearer(t, customerID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, photo["fileUrl"], body["user"].(map[string]any)["profilePhoto"].(map[string]any)["fileUrl"])
}

func TestUpload_Rechazos400(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)
	auth := bearer(t, customerID)

	cases := []struct {
		name string
		req  *http.Request
		code string
	}{
		{"tipo no permitido", multipartRequest(t, "/api/upload/profile-photo", auth, "photo", "a.txt", "text/plain", []byte("hola"), nil), "INVALID_FILE_TYPE"},
		{"contrato no PDF", multipartRequest(t, "/api/upload/contract", auth, "contract", "c.png", "image/png", pngBytes, nil), "INVALID_FILE_TYPE"},
		{"demasiado grande", multipartRequest(t, "/api/upload/profile-photo", auth, "photo", "g.png", "image/png", bytes.Repeat([]byte("x"), testMaxUpload+1), nil), "FILE_TOO_LARGE"},
		{"sin archivo", multipartRequest(t, "/api/upload/document", auth, "", "", "", nil, map[string]string{"documentType": "RG"}), "MISSING_FILE"},
		{"campo equivocado", multipartRequest(t, "/api/upload/document", auth, "photo", "rg.png", "image/png", pngBytes, map[string]string{"documentType": "RG"}), "MISSING_FILE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := env.send(t, tc.req)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, true, body["error"])
			assert.Equal(t, tc.code, errorCode(body))
		})
	}
	assert.Empty(t, env.files.Keys, "nada llega al almacenamiento")
}

func TestUpload_DocumentoReemplazaAlAnterior(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)
	auth := bearer(t, customerID)

	for _, name := range []string{"rg-1.png", "rg-2.png"} {
		req := multipartRequest(t, "/api/upload/document", auth, "document", name, "image/png", pngBytes, map[string]string{"documentType": "RG"})
		status, body := env.send(t, req)
		require.Equal(t, http.StatusOK, status, "cuerpo: %v", body)
		assert.Equal(t, "RG", body["document"].(map[string]any)["documentType"])
	}

	status, body := env.do(t, http.MethodGet, "/api/upload/documents", auth, nil)
	require.Equal(t, http.StatusOK, status)
	docs := body["documents"].([]any)
	require.Len(t, docs, 1, "un documento por tipo y usuario")
	assert.Contains(t, docs[0].(map[string]any)["fileUrl"], "/documents/"+customerID+"/RG/")
}

func TestUpload_DocumentoTipoInvalido(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)
	auth := bearer(t, customerID)

	status, body := env.send(t, multipartRequest(t, "/api/upload/document", auth, "document", "x.png", "image/png", pngBytes, map[string]string{"documentType": "PASSAPORTE"}))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, true, body["error"])

	status, _ = env.send(t, multipartRequest(t, "/api/upload/document", auth, "document", "x.png", "image/png", pngBytes, nil))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUpload_ContratoPDF(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)

	req := multipartRequest(t, "/api/upload/contract", bearer(t, customerID), "contract", "contrato.pdf", "application/pdf", []byte("%PDF-1.4"), nil)
	status, body := env.send(t, req)
	require.Equal(t, http.StatusOK, status, "cuerpo: %v", body)
	assert.Equal(t, "CONTRATO", body["document"].(map[string]any)["documentType"])
}

func TestUpload_FalloDelStorage500(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, customerID, "m@x.com", "111", entity.RoleUser)
	env.files.Fail = true

	req := multipartRequest(t, "/api/upload/profile-photo", bearer(t, customerID), "photo", "eu.png", "image/png", pngBytes, nil)
	status, body := env.send(t, req)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "STORAGE_ERROR", errorCode(body))
}

func TestUpload_SinToken401(t *testing.T) {
	env := newTestEnv(t)
	status, body := env.send(t, multipartRequest(t, "/api/upload/profile-photo", "", "photo", "eu.png", "image/png", pngBytes, nil))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", errorCode(body))
}
