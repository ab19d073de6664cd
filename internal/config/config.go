package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Auth strategies.
const (
	AuthStrategyHeader = "header"
	AuthStrategyToken  = "token"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = "tracker.yaml"

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port        int      `mapstructure:"port" yaml:"port"`
	StaticDir   string   `mapstructure:"static_dir" yaml:"static_dir"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // json, console
	Output string `mapstructure:"output" yaml:"output"` // stdout, stderr, or file path
}

// AuthConfig selects how callers are identified.
type AuthConfig struct {
	Strategy    string        `mapstructure:"strategy" yaml:"strategy"`
	Header      string        `mapstructure:"header" yaml:"header"`
	TokenSecret string        `mapstructure:"token_secret" yaml:"token_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl" yaml:"token_ttl"`
	BcryptCost  int           `mapstructure:"bcrypt_cost" yaml:"bcrypt_cost"`
	// KeyringDir is the fallback file keyring location used to look up the
	// token secret when it is not configured directly.
	KeyringDir string `mapstructure:"keyring_dir" yaml:"keyring_dir"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Auth     AuthConfig     `mapstructure:"auth" yaml:"auth"`
}

// Default returns a sensible default configuration.
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:            3000,
			StaticDir:       "public",
			CORSOrigins:     []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{Path: "database.sqlite"},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
		Auth: AuthConfig{
			Strategy:   AuthStrategyHeader,
			Header:     "User-Id",
			TokenTTL:   24 * time.Hour,
			BcryptCost: 10,
			KeyringDir: "~/.config/project-tracker/credentials",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.static_dir", d.Server.StaticDir)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
	v.SetDefault("auth.strategy", d.Auth.Strategy)
	v.SetDefault("auth.header", d.Auth.Header)
	v.SetDefault("auth.token_secret", "")
	v.SetDefault("auth.token_ttl", d.Auth.TokenTTL)
	v.SetDefault("auth.bcrypt_cost", d.Auth.BcryptCost)
	v.SetDefault("auth.keyring_dir", d.Auth.KeyringDir)
}

// Load reads configuration from the given YAML file path using Viper.
// A missing file is not an error: defaults apply. Environment variables
// prefixed TRACKER_ override both (e.g. TRACKER_SERVER_PORT).
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *os.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	switch c.Auth.Strategy {
	case AuthStrategyHeader:
		if strings.TrimSpace(c.Auth.Header) == "" {
			return fmt.Errorf("auth.header must not be empty")
		}
	case AuthStrategyToken:
		if c.Auth.TokenTTL <= 0 {
			return fmt.Errorf("auth.token_ttl must be positive")
		}
	default:
		return fmt.Errorf("unknown auth.strategy %q", c.Auth.Strategy)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
