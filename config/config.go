package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/possize/form"
	"github.com/rustyeddy/possize/format"
)

// Environment variables read by ApplyEnv.
const (
	EnvAccountSize = "POSSIZE_ACCOUNT_SIZE"
	EnvRiskPercent = "POSSIZE_RISK_PERCENT"
	EnvLocale      = "POSSIZE_LOCALE"
	EnvCurrency    = "POSSIZE_CURRENCY"
	EnvLogLevel    = "POSSIZE_LOG_LEVEL"
)

// Config holds the defaults the CLI starts from. Flags override it.
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`
	Display  DisplayConfig  `json:"display" yaml:"display"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// AccountConfig describes the trading account. Size may be zero, in
// which case the account size must be given on the command line.
type AccountConfig struct {
	Currency string  `json:"currency" yaml:"currency"`
	Size     float64 `json:"size" yaml:"size"`
}

// DefaultsConfig contains sizing defaults. RiskPercent is a percentage,
// 1 means 1% of the account.
type DefaultsConfig struct {
	RiskPercent float64 `json:"risk_percent" yaml:"risk_percent"`
}

type DisplayConfig struct {
	Locale string `json:"locale" yaml:"locale"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"` // "console" or "json"
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Size < 0 {
		return fmt.Errorf("account.size must not be negative")
	}
	if c.Defaults.RiskPercent <= 0 || c.Defaults.RiskPercent > 100 {
		return fmt.Errorf("defaults.risk_percent must be between 0 and 100")
	}
	if c.Display.Locale == "" {
		return fmt.Errorf("display.locale is required")
	}
	if _, err := c.Formatter(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	switch c.Log.Encoding {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.encoding must be 'console' or 'json'")
	}
	return nil
}

// Formatter builds the number formatter for the configured locale and currency.
func (c *Config) Formatter() (format.Formatter, error) {
	return format.New(c.Display.Locale, c.Account.Currency)
}

// Parser reads numbers typed in the configured locale, so input uses the
// same separators as the formatted output.
func (c *Config) Parser() (form.Parser, error) {
	return form.ParserFor(c.Display.Locale)
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency: "USD",
		},
		Defaults: DefaultsConfig{
			RiskPercent: 1,
		},
		Display: DisplayConfig{
			Locale: "en-US",
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// LoadEnv loads a .env file into the process environment. A missing file
// is not an error; variables already set are not overwritten.
func LoadEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from POSSIZE_* environment variables and
// re-validates the result.
func (c *Config) ApplyEnv() error {
	if err := envFloat(EnvAccountSize, &c.Account.Size); err != nil {
		return err
	}
	if err := envFloat(EnvRiskPercent, &c.Defaults.RiskPercent); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvLocale); ok && v != "" {
		c.Display.Locale = v
	}
	if v, ok := os.LookupEnv(EnvCurrency); ok && v != "" {
		c.Account.Currency = strings.ToUpper(v)
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	return c.Validate()
}

func envFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}
