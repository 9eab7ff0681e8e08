package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, int64(10<<20), cfg.Content.MaxUploadBytes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NOTIF_SERVER_PORT", "9000")
	t.Setenv("NOTIF_DB_NAME", "notif_test")
	t.Setenv("NOTIF_REDIS_ADDR", "redis.internal:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "notif_test", cfg.Database.Name)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
}

func TestLoad_ContainerEnvFallbacks(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PASSWORD", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "hunter2", cfg.Database.Password)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("NOTIF_SERVER_PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9443
database:
  host: pg.internal
  name: notifmanager
content:
  storagePath: /srv/content
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9443, cfg.Server.Port)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
	assert.Equal(t, "/srv/content", cfg.Content.StoragePath)
	// Unset fields keep their defaults.
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadFile_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9443\n"), 0o644))

	t.Setenv("NOTIF_SERVER_PORT", "9001")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9001, cfg.Server.Port)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestValidate_TLSPairRequired(t *testing.T) {
	cfg := defaults()
	cfg.Server.TLSCert = "/etc/ssl/cert.pem"

	assert.Error(t, cfg.validate())

	cfg.Server.TLSKey = "/etc/ssl/key.pem"
	assert.NoError(t, cfg.validate())
}
