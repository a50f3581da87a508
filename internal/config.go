package internal

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"http_server"`
	Database DatabaseConfig `mapstructure:"database"`
	Security SecurityConfig `mapstructure:"security"`
	Env      string         `mapstructure:"env"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Source       string `mapstructure:"source"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type SecurityConfig struct {
	AccessTokenSecret  string        `mapstructure:"access_token_secret"`
	RefreshTokenSecret string        `mapstructure:"refresh_token_secret"`
	AccessTokenTTL     time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL    time.Duration `mapstructure:"refresh_token_ttl"`
}

// LoadConfigFromEnv builds a Config purely from environment variables, used
// for containerized deployments where no config file is mounted.
func LoadConfigFromEnv() *Config {
	return &Config{
		Env: envOr("APP_ENV", "production"),
		Server: ServerConfig{
			Port:              envIntOr("SERVER_PORT", 8080),
			BaseURL:           envOr("SERVER_BASE_URL", ""),
			AllowedOrigins:    envOr("SERVER_ALLOWED_ORIGINS", "*"),
			ReadHeaderTimeout: envDurationOr("SERVER_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       envDurationOr("SERVER_READ_TIMEOUT", 15*time.Second),
			IdleTimeout:       envDurationOr("SERVER_IDLE_TIMEOUT", 60*time.Second),
			WriteTimeout:      envDurationOr("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Source:       os.Getenv("DATABASE_SOURCE"),
			MaxIdleConns: envIntOr("DATABASE_MAX_IDLE_CONNS", 5),
			MaxOpenConns: envIntOr("DATABASE_MAX_OPEN_CONNS", 20),
		},
		Security: SecurityConfig{
			AccessTokenSecret:  os.Getenv("SECURITY_ACCESS_TOKEN_SECRET"),
			RefreshTokenSecret: os.Getenv("SECURITY_REFRESH_TOKEN_SECRET"),
			AccessTokenTTL:     envDurationOr("SECURITY_ACCESS_TOKEN_TTL", 15*time.Minute),
			RefreshTokenTTL:    envDurationOr("SECURITY_REFRESH_TOKEN_TTL", 7*24*time.Hour),
		},
	}
}

func (c *Config) Validate() error {
	if c.Database.Source == "" {
		return errors.New("database source is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Security.AccessTokenSecret == "" || c.Security.RefreshTokenSecret == "" {
		return errors.New("token secrets are required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
