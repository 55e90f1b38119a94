package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8544, cfg.Port)
	assert.Equal(t, "https://github.com/Justina18/qr-code-app", cfg.DefaultText)
	assert.Equal(t, "https://api.whatsapp.com/send", cfg.ShareURL)
	assert.Equal(t, 30*time.Second, cfg.PreviewCacheTTL.Duration)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: 9000
default_text: "https://example.org"
share_url: "https://t.me/share/url"
preview_cache_ttl: 5s
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "https://example.org", cfg.DefaultText)
	assert.Equal(t, "https://t.me/share/url", cfg.ShareURL)
	assert.Equal(t, 5*time.Second, cfg.PreviewCacheTTL.Duration)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preview_cache_ttl: soon\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("QR_APP_PORT", "7777")
	t.Setenv("QR_APP_DEFAULT_TEXT", "https://override.example")
	t.Setenv("QR_APP_PREVIEW_CACHE_TTL", "90s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Port)
	assert.Equal(t, "https://override.example", cfg.DefaultText)
	assert.Equal(t, 90*time.Second, cfg.PreviewCacheTTL.Duration)
}

func TestExportDir(t *testing.T) {
	cfg := &Config{DataDir: "/data"}
	assert.Equal(t, filepath.Join("/data", "exports"), cfg.ExportDir())

	cfg.OutputDir = "/tmp/out"
	assert.Equal(t, "/tmp/out", cfg.ExportDir())
}

func TestEnsureDataDir(t *testing.T) {
	cfg := &Config{DataDir: filepath.Join(t.TempDir(), "app")}
	require.NoError(t, cfg.EnsureDataDir())
	assert.DirExists(t, filepath.Join(cfg.DataDir, "logos"))
}
