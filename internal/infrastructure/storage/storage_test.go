package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleikstore/gleikstore-api/internal/infrastructure/storage"
	"github.com/gleikstore/gleikstore-api/pkg/config"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestSupabaseStorage_SubeYDevuelveURLPublica(t *testing.T) {
	var gotPath, gotAuth, gotUpsert, gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotUpsert = r.Header.Get("x-upsert")
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Key":"gleikstore/documents/u1/RG/a.pdf"}`))
	}))
	defer srv.Close()

	local := writeTemp(t, t.TempDir(), "a.pdf", "%PDF-1.4")
	s := storage.NewSupabaseStorage(srv.URL+"/", "service-key")

	url, err := s.Store(context.Background(), local, "gleikstore", "documents/u1/RG/a.pdf")
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/gleikstore/documents/u1/RG/a.pdf", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "true", gotUpsert)
	assert.Equal(t, "application/pdf", gotType)
	assert.Equal(t, "%PDF-1.4", gotBody)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/gleikstore/documents/u1/RG/a.pdf", url)

	_, statErr := os.Stat(local)
	assert.True(t, os.IsNotExist(statErr), "el temporal se borra tras subir")
}

func TestSupabaseStorage_ErrorRemotoNoCaeADisco(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"404","error":"Bucket not found","message":"Bucket not found"}`))
	}))
	defer srv.Close()

	local := writeTemp(t, t.TempDir(), "a.png", "png")
	s := storage.NewSupabaseStorage(srv.URL, "k")

	url, err := s.Store(context.Background(), local, "nope", "profile-photos/u1/a.png")
	require.Error(t, err)
	assert.Empty(t, url)
	assert.Contains(t, err.Error(), "Bucket not found")
}

func TestLocalStorage_DevuelveRutaPublica(t *testing.T) {
	dir := t.TempDir()
	local := writeTemp(t, dir, "abc.pdf", "x")
	s := storage.NewLocalStorage(dir)

	url, err := s.Store(context.Background(), local, "gleikstore", "contracts/u1/abc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.pdf", url)

	_, statErr := os.Stat(local)
	assert.NoError(t, statErr, "el archivo queda en disco para servirlo")
}

func TestNew_EligeBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")

	fs, err := storage.New(config.StorageConfig{UploadDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "local", fs.Backend())
	assert.DirExists(t, dir)

	fs, err = storage.New(config.StorageConfig{UploadDir: dir, SupabaseURL: "https://x.supabase.co", SupabaseServiceKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "supabase", fs.Backend())
}
