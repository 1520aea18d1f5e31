package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

func NewSQLiteService(cfg Config, logg *logger.Logger) (*Service, error) {
	serviceLog := logg.With("service", "SQLiteService")

	path := cfg.SQLitePath
	if cfg.DSN != "" {
		path = cfg.DSN
	}
	if path == "" {
		path = "person.db"
	}

	db, err := gorm.Open(sqlite.Open(SQLiteDSN(path)), gormConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite at %s: %w", path, err)
	}
	return &Service{db: db, driver: DriverSQLite, log: serviceLog}, nil
}

// SQLiteDSN enables foreign keys (cascade deletes) and a busy timeout on path.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}
