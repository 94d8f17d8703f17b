package database

import (
	"embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/EchoNews615/komibot/internal/shared/config"
	appLogger "github.com/EchoNews615/komibot/internal/shared/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	db   *gorm.DB
	dbMu sync.RWMutex
)

// Init opens the embedded sqlite store and switches it to WAL journaling
// so readers never block on in-flight writes and crash recovery replays
// committed transactions only.
func Init(cfg *config.DatabaseConfig) error {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	database, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return fmt.Errorf("failed to enable WAL journaling: %w", err)
	}
	if err := database.Exec("PRAGMA busy_timeout = 5000").Error; err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// Single logical writer stream against one file.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	dbMu.Lock()
	db = database
	dbMu.Unlock()

	appLogger.Info("database opened", "path", cfg.Path)
	return nil
}

// Migrate applies the embedded goose migrations.
func Migrate() error {
	current := Get()
	if current == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := current.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	appLogger.Info("database migrations applied")
	return nil
}

// MigrationStatus prints the applied/pending state of each migration.
func MigrationStatus() error {
	current := Get()
	if current == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := current.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(log.New(os.Stdout, "", 0))
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	return goose.Status(sqlDB, "migrations")
}

// Get returns the database connection
func Get() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	return db
}

// Close closes the database connection
func Close() error {
	dbMu.RLock()
	currentDB := db
	dbMu.RUnlock()

	if currentDB == nil {
		return nil
	}

	sqlDB, err := currentDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	appLogger.Info("database closed")
	return nil
}
