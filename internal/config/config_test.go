package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: "127.0.0.1:9000"
storage:
  path: /tmp/chores.db
log:
  format: json
`), 0o600))

	t.Setenv("SWEEP_SERVER_ADDR", ":7070")
	t.Setenv("SWEEP_STORAGE_KEY", "chores")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr, "env beats file")
	assert.Equal(t, "/tmp/chores.db", cfg.Storage.Path, "file beats default")
	assert.Equal(t, "chores", cfg.Storage.Key)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend, "default kept")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("SWEEP_STORAGE_BACKEND", "postgres")
	_, err := Load("")
	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.addr", envKey("SWEEP_SERVER_ADDR"))
	assert.Equal(t, "storage.backend", envKey("SWEEP_STORAGE_BACKEND"))
	assert.Equal(t, "log", envKey("SWEEP_LOG"))
}
