package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"checklist_api/internal/repository/db"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingSecret is returned when no JWT signing secret is configured.
var ErrMissingSecret = errors.New("auth.jwt_secret (JWT_SECRET) is required")

const (
	defaultPort         = "3000"
	defaultDBPath       = "app.db"
	defaultMaxOpenConns = 10
	defaultTokenTTL     = time.Hour
)

// Config is the resolved process configuration.
type Config struct {
	Port      string
	LogLevel  string
	DB        db.Config
	JWTSecret string
	TokenTTL  time.Duration
}

// env variable names, bound to their config keys
var envBindings = map[string]string{
	"port":              "PORT",
	"log_level":         "LOG_LEVEL",
	"db.driver":         "DB_DRIVER",
	"db.url":            "DATABASE_URL",
	"db.path":           "DB_PATH",
	"db.max_open_conns": "DB_MAX_OPEN_CONNS",
	"auth.jwt_secret":   "JWT_SECRET",
	"auth.token_ttl":    "TOKEN_TTL",
}

// Load reads configs/config.yml (optional) under dir, with environment
// overrides. A .env file in the working directory is loaded first.
func Load(dir string) (*Config, error) {
	// missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetDefault("port", defaultPort)
	v.SetDefault("log_level", "info")
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("db.max_open_conns", defaultMaxOpenConns)
	v.SetDefault("auth.token_ttl", defaultTokenTTL)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:      v.GetString("port"),
		LogLevel:  v.GetString("log_level"),
		JWTSecret: v.GetString("auth.jwt_secret"),
		TokenTTL:  v.GetDuration("auth.token_ttl"),
		DB: db.Config{
			Driver:       strings.ToLower(strings.TrimSpace(v.GetString("db.driver"))),
			URL:          v.GetString("db.url"),
			Path:         v.GetString("db.path"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
		},
	}

	if cfg.DB.Driver == "" {
		cfg.DB.Driver = db.DriverSQLite
		if cfg.DB.URL != "" {
			cfg.DB.Driver = db.DriverMySQL
		}
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, ErrMissingSecret
	}
	return cfg, nil
}
