package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 6379, cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.Upstream.Host)
	assert.Equal(t, 16379, cfg.Upstream.Port)
}

func TestLoadWithNoPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "celeritas.yaml")
	content := "host: 0.0.0.0\nport: 7000\nupstream:\n  host: 10.0.0.1\n  port: 6379\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "10.0.0.1", cfg.Upstream.Host)
	assert.Equal(t, 6379, cfg.Upstream.Port)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("CELERITAS_PORT", "9999")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
}
