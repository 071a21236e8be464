package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/postfix"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, postfix.Precedence, cfg.ConvertMode())
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	assert.Equal(t, DefaultMaxLength, cfg.MaxLength)
}

func TestDecode(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		cfg := Default()
		err := cfg.Decode(strings.NewReader(`
env: prod
port: "9090"
mode: flush
log_level: debug
cors_origins: ["https://a.example", "https://b.example"]
max_length: 128
`))
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "prod", cfg.Env)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, postfix.FlushAll, cfg.ConvertMode())
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Len(t, cfg.CorsOrigins, 2)
		assert.Equal(t, 128, cfg.MaxLength)
	})

	t.Run("partial keeps defaults", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, cfg.Decode(strings.NewReader("mode: precedence\n")))
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, DefaultMaxLength, cfg.MaxLength)
	})

	t.Run("empty", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, cfg.Decode(strings.NewReader("")))
		assert.Equal(t, Default(), cfg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg := Default()
		assert.Error(t, cfg.Decode(strings.NewReader("port: [1, 2")))
	})
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(mapLookup(map[string]string{
		"ENV":                  "local",
		"POSTFIX_PORT":         "7000",
		"POSTFIX_MODE":         "flush",
		"POSTFIX_LOG_LEVEL":    "warn",
		"POSTFIX_CORS_ORIGINS": " https://a.example , ,https://b.example",
		"POSTFIX_MAX_LENGTH":   "64",
	}))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, postfix.FlushAll, cfg.ConvertMode())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsOrigins)
	assert.Equal(t, 64, cfg.MaxLength)

	level, err := ParseLevel(cfg.LogLevel)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestApplyEnvIgnoresBadLength(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(mapLookup(map[string]string{"POSTFIX_MAX_LENGTH": "lots"}))
	assert.Equal(t, DefaultMaxLength, cfg.MaxLength)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
		msg    string
	}{
		{"port not number", func(c *Config) { c.Port = "http" }, "port must be a number"},
		{"port range", func(c *Config) { c.Port = "70000" }, "port must be between 1 and 65535"},
		{"mode", func(c *Config) { c.Mode = "rpn" }, "unknown conversion mode"},
		{"level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"length", func(c *Config) { c.MaxLength = 0 }, "max length must be positive"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "postfix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9191\"\nmode: flush\n"), 0o600))
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("POSTFIX_LOG_LEVEL=debug\n"), 0o600))

	t.Setenv("ENV_PATH", envPath)
	t.Setenv("POSTFIX_PORT", "9292")
	t.Setenv("POSTFIX_LOG_LEVEL", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9292", cfg.Port, "environment overrides file")
	assert.Equal(t, postfix.FlushAll, cfg.ConvertMode())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postfix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: sideways\n"), 0o600))
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("POSTFIX_MODE", "")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}
