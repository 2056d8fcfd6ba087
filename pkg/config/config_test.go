package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gateway.yaml", `
server:
  port: 9090
mollie:
  base_url: https://file.example/v2
  timeout: 5s
`)
	t.Setenv("CONFIG_PATH", dir)
	t.Setenv("GATEWAY_SERVER_PORT", "7070")
	t.Setenv("MOLLIE_BASE_URL", "")

	cfg, err := Load("gateway", WithEnvBinding("mollie.base_url", "MOLLIE_BASE_URL"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.GetInt("server.port"))
	assert.Equal(t, "https://file.example/v2", cfg.GetString("mollie.base_url"))
	assert.Equal(t, 5*time.Second, cfg.GetDuration("mollie.timeout"))
	assert.Equal(t, filepath.Join(dir, "gateway.yaml"), cfg.ConfigFile())
}

func TestLoad_ExplicitFilePath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "service:\n  name: from-file\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load("gateway")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.GetString("service.name"))
}

func TestLoad_EnvBindingWithoutPrefix(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())
	t.Setenv("MOLLIE_API_KEY", "test_key")

	cfg, err := Load("gateway",
		WithOptionalFile(),
		WithEnvBinding("mollie.api_key", "MOLLIE_API_KEY"),
	)
	require.NoError(t, err)
	assert.Equal(t, "test_key", cfg.GetString("mollie.api_key"))
	assert.Empty(t, cfg.ConfigFile())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())

	cfg, err := Load("gateway",
		WithOptionalFile(),
		WithDefaults(map[string]interface{}{
			"server.port":         8080,
			"server.allow_origins": []string{"*"},
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.GetInt("server.port"))
	assert.Equal(t, []string{"*"}, cfg.GetStringSlice("server.allow_origins"))
	assert.True(t, cfg.IsSet("server.port"))
}

func TestLoad_MissingFileIsErrorUnlessOptional(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())

	_, err := Load("gateway")
	assert.Error(t, err)
}
