package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
	require.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	require.Equal(t, BackendHTTP, cfg.LLMBackend)
	require.Empty(t, cfg.GeminiAPIKey)
	require.Zero(t, cfg.CacheCapacity)
	require.Zero(t, cfg.CacheTTL)
	require.False(t, cfg.PDICacheEnabled)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_ADDRESS=localhost:9090\nGEMINI_MODEL=gemini-2.0-flash\nCACHE_CAPACITY=128\nCACHE_TTL=15m\nPDI_CACHE_ENABLED=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, "localhost:9090", cfg.ServerAddress)
	require.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	require.Equal(t, 128, cfg.CacheCapacity)
	require.Equal(t, 15*time.Minute, cfg.CacheTTL)
	require.True(t, cfg.PDICacheEnabled)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("GEMINI_API_KEY=from-file\n"), 0o600))
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.GeminiAPIKey)
}
