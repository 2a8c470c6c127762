// Package config loads server settings from .env, an optional strapcalc.yaml
// and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"Strapcalc/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Addr            string         `mapstructure:"addr"`
	TLSCert         string         `mapstructure:"tls_cert"`
	TLSKey          string         `mapstructure:"tls_key"`
	DatabaseURL     string         `mapstructure:"database_url"`
	TokenKey        string         `mapstructure:"token_key"`
	RateLimit       float64        `mapstructure:"rate_limit"` // requests per second per IP
	RateBurst       int            `mapstructure:"rate_burst"`
	ShutdownTimeout time.Duration  `mapstructure:"shutdown_timeout"`
	Log             logging.Config `mapstructure:"log"`
}

var ErrMissingTokenKey = errors.New("TOKEN_KEY is not set")

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func defaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("rate_limit", 5.0)
	v.SetDefault("rate_burst", 10)
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Load reads the configuration. dir is searched for .env and strapcalc.yaml;
// both are optional.
func Load(dir string) (Config, error) {
	if err := godotenv.Load(dir + "/.env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	defaults(v)
	v.SetConfigName("strapcalc")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config failed: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"addr", "tls_cert", "tls_key", "database_url", "token_key", "rate_limit", "rate_burst", "shutdown_timeout", "log.level", "log.format"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c Config) Validate() error {
	if c.TokenKey == "" {
		return ErrMissingTokenKey
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return fmt.Errorf("TLS_CERT and TLS_KEY must be set together")
	}
	return nil
}
