package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/studypulse/studypulse-be/internal/config"
	"github.com/studypulse/studypulse-be/internal/models"
)

// Init opens the store and runs migrations. AutoMigrate creates
// tables, missing columns and indexes; it never drops columns.
// DB_DRIVER=sqlite gives a file-backed store for local dev.
func Init(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DSN())
	case "sqlite":
		dial = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.StudySession{}, &models.Task{}); err != nil {
		return nil, err
	}
	return db, nil
}
