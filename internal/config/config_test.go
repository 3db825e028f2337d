package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	want := &Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Path: "./data/haleway.db"},
		Auth:     AuthConfig{TokenTTL: 24 * time.Hour},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	require.ErrorIs(t, cfg.RequireSecret(), ErrNoJWTSecret)
}

func TestFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "haleway.yaml")
	yaml := `server:
  port: 9090
auth:
  jwt_secret: from-file
  token_ttl: 1h
log:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("HALEWAY_DATABASE_PATH", "/var/lib/haleway/db.sqlite")
	t.Setenv("HALEWAY_LOG_LEVEL", "debug")

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/var/lib/haleway/db.sqlite", cfg.Database.Path)
	require.Equal(t, "from-file", cfg.Auth.JWTSecret)
	require.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	require.NoError(t, cfg.RequireSecret())
}

func TestMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"port", "server.port", 70000},
		{"format", "log.format", "xml"},
		{"ttl", "auth.token_ttl", "-1h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Set(tt.key, tt.val)
			_, err := Load(v, "")
			require.Error(t, err)
		})
	}
}
