package database

import (
	"context"
	"fmt"
	stdlog "log"
	"strings"
	"time"

	"github.com/pathway-infinity/pathway-api/config"
	"github.com/pathway-infinity/pathway-api/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the configured relational store. The returned handle is
// shared by every repository for the life of the process.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		log.Info().Str("path", cfg.Database.SQLitePath).Msg("Opening SQLite database")
		return OpenSQLite(cfg.Database.SQLitePath)
	default:
		log.Info().Str("host", cfg.Database.Host).Str("name", cfg.Database.Name).Msg("Connecting to PostgreSQL")
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		return db, nil
	}
}

// OpenSQLite opens a SQLite database. In-memory databases are pinned to a
// single connection so every query sees the same data.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(),
	}
}

// newGormLogger sends GORM's warnings and errors to the zerolog global
// writer. Misses are reported through ErrRecordNotFound, not the log.
func newGormLogger() gormlogger.Interface {
	writer := log.With().Str("component", "gorm").Logger()
	return gormlogger.New(stdlog.New(writer, "", 0), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.User{}, &model.SavedResult{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
