package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/postfix"
)

const (
	DefaultPort      = "8080"
	DefaultMaxLength = 4096
	DefaultEnvPath   = ".env"
)

type Config struct {
	Env         string   `yaml:"env"`
	Port        string   `yaml:"port"`
	Mode        string   `yaml:"mode"`
	LogLevel    string   `yaml:"log_level"`
	CorsOrigins []string `yaml:"cors_origins"`
	// MaxLength is the longest expression, in bytes, the server accepts.
	MaxLength int `yaml:"max_length"`
}

func Default() *Config {
	return &Config{
		Port:        DefaultPort,
		Mode:        postfix.Precedence.String(),
		LogLevel:    "info",
		CorsOrigins: []string{"*"},
		MaxLength:   DefaultMaxLength,
	}
}

// Load builds the configuration from defaults, then the YAML file at path if
// path is not empty, then the .env file, then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		defer f.Close()
		if err := cfg.Decode(f); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := LoadDotEnv(os.Getenv("ENV"), DefaultEnvPath); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}
	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode reads YAML from r over the current values.
func (c *Config) Decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides values from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("ENV"); ok {
		c.Env = v
	}
	if v, ok := lookup("POSTFIX_PORT"); ok && v != "" {
		c.Port = v
	}
	if v, ok := lookup("POSTFIX_MODE"); ok && v != "" {
		c.Mode = v
	}
	if v, ok := lookup("POSTFIX_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("POSTFIX_CORS_ORIGINS"); ok && v != "" {
		origins := strings.Split(v, ",")
		c.CorsOrigins = c.CorsOrigins[:0]
		for _, origin := range origins {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.CorsOrigins = append(c.CorsOrigins, origin)
			}
		}
	}
	if v, ok := lookup("POSTFIX_MAX_LENGTH"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("Ignoring invalid POSTFIX_MAX_LENGTH", "value", v)
		} else {
			c.MaxLength = n
		}
	}
	if len(c.CorsOrigins) == 0 {
		c.CorsOrigins = []string{"*"}
	}
}

func (c *Config) Validate() error {
	if err := validatePort(c.Port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	if _, err := postfix.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("invalid mode: %w", err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxLength <= 0 {
		return errors.New("max length must be positive")
	}
	return nil
}

// ConvertMode returns the configured conversion mode. It must only be called
// on a validated Config.
func (c *Config) ConvertMode() postfix.Mode {
	m, err := postfix.ParseMode(c.Mode)
	if err != nil {
		panic("config: ConvertMode on unvalidated config: " + err.Error())
	}
	return m
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
