package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gleikstore/gleikstore-api/internal/application/auth"
	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	apphttp "github.com/gleikstore/gleikstore-api/internal/interfaces/http"
	"github.com/gleikstore/gleikstore-api/internal/testutil"
	pkgjwt "github.com/gleikstore/gleikstore-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "gleikstore-test"
	testExpMin    = 60
	testMaxUpload = 1024

	customerID = "00000000-0000-0000-0000-000000000001"
	otherID    = "00000000-0000-0000-0000-000000000002"
	adminID    = "00000000-0000-0000-0000-000000000003"
)

type testEnv struct {
	app   *fiber.App
	store *testutil.Store
	files *testutil.FileStorage
	now   time.Time
}

// newTestEnv aplicación completa sobre repos en memoria; "hoy" es 2024-03-01 en São Paulo.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store: testutil.NewStore(),
		files: &testutil.FileStorage{},
		now:   time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC),
	}
	s := env.store
	clock := func() time.Time { return env.now }

	warrantyUC := usecase.NewWarrantyUseCase(
		s.Warranties(), s.Devices(), s.TxRunner(), &testutil.CertificateGenerator{},
		"http://api.test", time.FixedZone("BRT", -3*3600),
	).WithClock(clock)
	userUC := usecase.NewUserUseCase(s.Users(), s.Devices(), s.Documents(), s.Photos()).WithBcryptCost(bcrypt.MinCost)
	authUC := auth.NewAuthUseCase(s.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}).
		WithBcryptCost(bcrypt.MinCost)

	env.app = apphttp.NewApp(apphttp.AppConfig{Name: "test", MaxUploadBytes: testMaxUpload})
	apphttp.Router(env.app, apphttp.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		DeviceUC:       usecase.NewDeviceUseCase(s.Devices(), s.Warranties(), warrantyUC),
		WarrantyUC:     warrantyUC,
		UploadUC:       usecase.NewUploadUseCase(env.files, "gleikstore", s.Documents(), s.Photos()),
		CatalogUC:      usecase.NewCatalogUseCase(s.Products()),
		JWTSecret:      testJWTSecret,
		UploadDir:      t.TempDir(),
		MaxUploadBytes: testMaxUpload,
	})
	return env
}

// seedUser crea un usuario con password "segredo123".
func (e *testEnv) seedUser(t *testing.T, id, email, cpf, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, e.store.Users().Create(t.Context(), &entity.User{
		ID: id, Name: "User " + email, Email: email, CPF: cpf, PasswordHash: string(hash),
		Phone: "11", Address: "Rua", Role: role, CreatedAt: e.now, UpdatedAt: e.now,
	}))
}

// bearer genera "Bearer <jwt>" para userID.
func bearer(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// do lanza la petición y devuelve status y cuerpo decodificado.
func (e *testEnv) do(t *testing.T, method, path, authHeader string, body any) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return e.send(t, req)
}

func (e *testEnv) send(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && resp.Header.Get("Content-Type") != "application/pdf" {
		require.NoError(t, json.Unmarshal(raw, &out), "cuerpo: %s", raw)
	}
	return resp.StatusCode, out
}

// multipartRequest arma un POST multipart con un archivo y campos extra.
func multipartRequest(t *testing.T, path, authHeader, field, filename, contentType string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if field != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

func errorCode(body map[string]any) any { return body["code"] }
