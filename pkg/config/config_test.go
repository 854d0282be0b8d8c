package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleikstore/gleikstore-api/pkg/config"
)

func TestLoad_DefaultsYSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("HTTP_PORT", "4000")
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "secreto", cfg.JWT.Secret)
	assert.Equal(t, 7*24*60, cfg.JWT.Expiration, "por defecto el token dura 7 días")
	assert.Equal(t, 4000, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:4000", cfg.HTTP.Addr())
	assert.Equal(t, "https://abc.supabase.co", cfg.Storage.SupabaseURL, "sin barra final")
	assert.Equal(t, int64(10*1024*1024), cfg.Storage.MaxUploadBytes)
	assert.False(t, cfg.Storage.RemoteEnabled(), "sin service key no hay almacenamiento remoto")
}

func TestLoad_SinSecretFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "gleik", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/gleik?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestAppConfig_LocationInvalidaUsaLocal(t *testing.T) {
	assert.NotNil(t, config.AppConfig{Timezone: "No/Existe"}.Location())
	assert.Equal(t, "America/Sao_Paulo", config.AppConfig{Timezone: "America/Sao_Paulo"}.Location().String())
}
