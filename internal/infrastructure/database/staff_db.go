package database

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultStaffDSN = "data/staff.sqlite"
)

// StaffDBConfig selects the relational store behind the staff directory.
type StaffDBConfig struct {
	Driver string
	DSN    string
}

// StaffDBConfigFromEnv reads STAFF_DB_DRIVER (default sqlite) and STAFF_DB_DSN.
func StaffDBConfigFromEnv() StaffDBConfig {
	return StaffDBConfig{
		Driver: getenvDefault("STAFF_DB_DRIVER", DriverSQLite),
		DSN:    getenvDefault("STAFF_DB_DSN", defaultStaffDSN),
	}
}

func OpenStaffDB(ctx context.Context, cfg StaffDBConfig) (*gorm.DB, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "check context")
	}

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var (
		db  *gorm.DB
		err error
	)
	switch strings.ToLower(cfg.Driver) {
	case DriverPostgres, "postgresql":
		db, err = gorm.Open(postgres.Open(cfg.DSN), gormCfg)
		if err != nil {
			return nil, errors.Wrap(err, "open postgres db")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "postgres pool")
		}
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
	case DriverSQLite, "sqlite3":
		if err := ensureSQLiteDirectory(cfg.DSN); err != nil {
			return nil, err
		}
		db, err = gorm.Open(sqlite.Open(cfg.DSN), gormCfg)
		if err != nil {
			return nil, errors.Wrap(err, "open sqlite db")
		}
	default:
		return nil, errors.Errorf("unsupported staff db driver %q", cfg.Driver)
	}

	log.Printf("[database] staff db opened driver=%s", cfg.Driver)
	return db, nil
}

func ensureSQLiteDirectory(dsn string) error {
	candidate := strings.TrimSpace(dsn)
	if candidate == "" || strings.Contains(candidate, ":memory:") {
		return nil
	}
	candidate = strings.TrimPrefix(candidate, "file:")
	if idx := strings.Index(candidate, "?"); idx >= 0 {
		candidate = candidate[:idx]
	}

	dir := filepath.Dir(candidate)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create sqlite directory %q", dir)
	}
	return nil
}
