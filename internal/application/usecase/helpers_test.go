package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gleikstore/gleikstore-api/internal/application/usecase"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/testutil"
)

var ctx = context.Background()

// fixedNow 2024-03-01 12:00 en São Paulo.
var fixedNow = time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newWarrantyUC(store *testutil.Store) *usecase.WarrantyUseCase {
	return newWarrantyUCWith(store, &testutil.CertificateGenerator{})
}

func newWarrantyUCWith(store *testutil.Store, gen *testutil.CertificateGenerator) *usecase.WarrantyUseCase {
	return usecase.NewWarrantyUseCase(
		store.Warranties(), store.Devices(), store.TxRunner(), gen,
		"http://api.test/", time.FixedZone("BRT", -3*3600),
	).WithClock(func() time.Time { return fixedNow })
}

func seedUser(t *testing.T, store *testutil.Store, id, email, cpf string) *entity.User {
	t.Helper()
	u := &entity.User{
		ID: id, Name: "Cliente " + id, Email: email, CPF: cpf,
		PasswordHash: "x", Role: entity.RoleUser, CreatedAt: fixedNow, UpdatedAt: fixedNow,
	}
	require.NoError(t, store.Users().Create(ctx, u))
	return u
}

func seedTemplate(t *testing.T, store *testutil.Store, imei, model string, purchase, end time.Time) {
	t.Helper()
	require.NoError(t, store.Warranties().Upsert(ctx, &entity.WarrantyTemplate{
		ID: "w-" + imei, IMEI: imei, Model: model, PurchaseDate: purchase, WarrantyEnd: end,
		CreatedAt: fixedNow, UpdatedAt: fixedNow,
	}))
}

// tempUpload escribe un archivo temporal como lo dejaría el handler.
func tempUpload(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte("contenido"), 0o600))
	return p
}
