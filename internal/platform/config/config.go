// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config is the full process configuration.
type Config struct {
	Env      string `env:"APP_ENV" env-default:"local"`
	HTTPAddr string `env:"HTTP_ADDR" env-default:":8080"`

	// CORSOrigins lists browser origins allowed to call the API.
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`

	DB    DB
	Redis Redis
	JWT   JWT
	Mail  Mail

	BcryptCost int           `env:"BCRYPT_COST" env-default:"10"`
	CacheTTL   time.Duration `env:"CACHE_TTL" env-default:"5m"`
}

// DB describes the relational store connection.
type DB struct {
	Driver        string `env:"DB_DRIVER" env-default:"postgres"`
	Host          string `env:"DB_HOST" env-default:"localhost"`
	Port          string `env:"DB_PORT" env-default:"5432"`
	User          string `env:"DB_USER"`
	Password      string `env:"DB_PASSWORD"`
	Name          string `env:"DB_NAME"`
	SSLMode       string `env:"DB_SSLMODE" env-default:"disable"`
	InstanceName  string `env:"INSTANCE_CONNECTION_NAME"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" env-default:"false"`
}

// Redis describes the optional cache connection. An empty Host disables it.
type Redis struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD"`
}

// JWT holds the token signing settings.
type JWT struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL" env-default:"24h"`
}

// Mail holds the SMTP relay settings. An empty Host selects the stdout outbox.
type Mail struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" env-default:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"MAIL_FROM" env-default:"no-reply@carrental.local"`
}

// ErrMissingJWTSecret is returned by Load when JWT_SECRET is empty.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Load reads the configuration. When dotenvPath names an existing file it is
// read first; real environment variables still take precedence.
func Load(dotenvPath string) (*Config, error) {
	var cfg Config

	var err error
	if dotenvPath != "" && fileExists(dotenvPath) {
		err = cleanenv.ReadConfig(dotenvPath, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	switch c.DB.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unsupported APP_ENV %q", c.Env)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
