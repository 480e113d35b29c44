// Package db opens the relational store behind the gorm adapters.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"

	retryInterval = 3 * time.Second
)

// Config describes where the database lives.
// InstanceName selects a Cloud SQL unix socket and wins over Host/Port.
type Config struct {
	Driver       string
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	SSLMode      string
	InstanceName string
}

// Opener opens a gorm handle for a DSN. It exists so retries can be tested.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN renders the driver-specific connection string.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverMySQL {
		if cfg.InstanceName != "" {
			return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	}

	host := cfg.Host
	port := cfg.Port
	if cfg.InstanceName != "" {
		host = "/cloudsql/" + cfg.InstanceName
		port = ""
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		host, cfg.User, cfg.Password, cfg.Name, sslmode)
	if port != "" {
		dsn += " port=" + port
	}
	return dsn
}

// OpenerFor returns the gorm opener for the configured driver.
func OpenerFor(driver string, gcfg *gorm.Config) (Opener, error) {
	switch driver {
	case DriverPostgres, "":
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gcfg)
		}, nil
	case DriverMySQL:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(mysql.Open(dsn), gcfg)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// ConnectWithRetry keeps calling open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open connects using cfg and, when migrate is set, auto-migrates models.
func Open(cfg Config, timeout time.Duration, migrate bool, models ...any) (*gorm.DB, error) {
	open, err := OpenerFor(cfg.Driver, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), timeout, open)
	if err != nil {
		return nil, err
	}

	if migrate {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		slog.Info("database migrated", "driver", cfg.Driver, "models", len(models))
	}
	return db, nil
}
