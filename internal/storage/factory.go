// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/ahmed-reda-301/truck-tracker/internal/config"
	"github.com/ahmed-reda-301/truck-tracker/internal/database"
	gormstore "github.com/ahmed-reda-301/truck-tracker/internal/storage/gorm"
	"github.com/ahmed-reda-301/truck-tracker/internal/storage/memory"
	"github.com/rs/zerolog"
)

// NewBackend creates a storage backend based on configuration.
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		mgr := database.NewManager(log, cfg.Sqlite.Path)
		if err := mgr.ConnectSqlite(); err != nil {
			return nil, err
		}
		return gormstore.New(mgr), nil
	case "postgres":
		// falls back to SQLite internally when Postgres is unreachable
		mgr := database.NewManager(log, cfg.Sqlite.Path)
		if err := mgr.Connect(); err != nil {
			return nil, err
		}
		return gormstore.New(mgr), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
