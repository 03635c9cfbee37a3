package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Checker CheckerConfig `mapstructure:"checker"`
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CheckerConfig holds validation engine configuration. Both knobs are
// fixed at engine construction time.
type CheckerConfig struct {
	// Concurrency caps the number of simultaneously in-flight checks.
	Concurrency int `mapstructure:"concurrency"`
	// DNSTimeout bounds each MX query.
	DNSTimeout time.Duration `mapstructure:"dns_timeout"`
	// Nameservers overrides the system resolvers (host:port entries).
	Nameservers []string `mapstructure:"nameservers"`
}

// APIConfig holds REST API server configuration.
type APIConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	Output    string `mapstructure:"output"` // stdout (default), file
	FilePath  string `mapstructure:"file_path"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
	MaxFiles  int    `mapstructure:"max_files"`
}

// Load reads configuration from the given config directory path.
// It looks for a file named "config.yaml" in that directory; a missing
// file is not an error, defaults apply. Environment variables with
// prefix MXVERIFY_ override file values. For example,
// MXVERIFY_CHECKER_CONCURRENCY overrides checker.concurrency.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetEnvPrefix("MXVERIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("checker.concurrency", 50)
	v.SetDefault("checker.dns_timeout", 3*time.Second)
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.read_timeout", 10*time.Second)
	v.SetDefault("api.write_timeout", 30*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.output", "stdout")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Checker.Concurrency < 1 {
		return fmt.Errorf("checker.concurrency must be at least 1, got %d", c.Checker.Concurrency)
	}
	if c.Checker.DNSTimeout <= 0 {
		return fmt.Errorf("checker.dns_timeout must be positive, got %v", c.Checker.DNSTimeout)
	}
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("api.port out of range: %d", c.API.Port)
	}
	return nil
}
