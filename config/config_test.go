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
	assert.NotNil(t, cfg)
	assert.Equal(t, "USD", cfg.Account.Currency)
	assert.Equal(t, 0.0, cfg.Account.Size)
	assert.Equal(t, 1.0, cfg.Defaults.RiskPercent)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mod    func(c *Config)
		errMsg string
	}{
		{"valid config", func(c *Config) {}, ""},
		{"missing currency", func(c *Config) { c.Account.Currency = "" }, "account.currency is required"},
		{"unknown currency", func(c *Config) { c.Account.Currency = "XYZW" }, "display"},
		{"negative size", func(c *Config) { c.Account.Size = -1000 }, "account.size must not be negative"},
		{"zero risk", func(c *Config) { c.Defaults.RiskPercent = 0 }, "defaults.risk_percent must be between 0 and 100"},
		{"risk over 100", func(c *Config) { c.Defaults.RiskPercent = 150 }, "defaults.risk_percent must be between 0 and 100"},
		{"missing locale", func(c *Config) { c.Display.Locale = "" }, "display.locale is required"},
		{"bad encoding", func(c *Config) { c.Log.Encoding = "xml" }, "log.encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParserFollowsLocale(t *testing.T) {
	cfg := Default()
	p, err := cfg.Parser()
	require.NoError(t, err)
	assert.Equal(t, 1.5, p.Parse("1.5"))

	cfg.Display.Locale = "de-DE"
	p, err = cfg.Parser()
	require.NoError(t, err)
	assert.Equal(t, 1.5, p.Parse("1,5"))
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
		{"yml format", ".yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Account.Size = 25000
			cfg.Account.Currency = "EUR"
			cfg.Display.Locale = "de-DE"
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  size: 5000\n  currency: USD\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, cfg.Account.Size)
	assert.Equal(t, 1.0, cfg.Defaults.RiskPercent)
	assert.Equal(t, "en-US", cfg.Display.Locale)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  risk_percent: 250\n"), 0644))
	_, err = LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAccountSize, "12000")
	t.Setenv(EnvRiskPercent, " 0.5 ")
	t.Setenv(EnvLocale, "en-GB")
	t.Setenv(EnvCurrency, "gbp")
	t.Setenv(EnvLogLevel, "debug")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, 12000.0, cfg.Account.Size)
	assert.Equal(t, 0.5, cfg.Defaults.RiskPercent)
	assert.Equal(t, "en-GB", cfg.Display.Locale)
	assert.Equal(t, "GBP", cfg.Account.Currency)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv(EnvAccountSize, "lots")
	assert.ErrorContains(t, Default().ApplyEnv(), EnvAccountSize)

	t.Setenv(EnvAccountSize, "")
	t.Setenv(EnvRiskPercent, "101")
	assert.ErrorContains(t, Default().ApplyEnv(), "defaults.risk_percent")
}

func TestLoadEnv(t *testing.T) {
	assert.NoError(t, LoadEnv(""))
	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvLocale+"=fr-FR\n"), 0644))

	t.Setenv(EnvLocale, "")
	os.Unsetenv(EnvLocale)

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "fr-FR", os.Getenv(EnvLocale))
}
