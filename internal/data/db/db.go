package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver string
	// DSN overrides the postgres connection string built from the parts below.
	DSN string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresName     string

	SQLitePath string

	SlowThreshold time.Duration
	Silent        bool
}

// Service owns the gorm handle for the configured driver.
type Service struct {
	db     *gorm.DB
	driver string
	log    *logger.Logger
}

// Open connects to the configured database, migrates the schema and seeds the
// reference rows.
func Open(cfg Config, logg *logger.Logger) (*Service, error) {
	var (
		svc *Service
		err error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverSQLite:
		svc, err = NewSQLiteService(cfg, logg)
	case DriverPostgres:
		svc, err = NewPostgresService(cfg, logg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := AutoMigrateAll(svc.db); err != nil {
		return nil, closeOnError(svc, fmt.Errorf("automigrate: %w", err))
	}
	if err := Seed(svc.db); err != nil {
		return nil, closeOnError(svc, fmt.Errorf("seed: %w", err))
	}
	svc.log.Info("Database ready", "driver", svc.driver)
	return svc, nil
}

func closeOnError(svc *Service, err error) error {
	if cerr := svc.Close(); cerr != nil {
		svc.log.Warn("Closing database after failed setup", "error", cerr)
	}
	return err
}

func (s *Service) DB() *gorm.DB { return s.db }

func (s *Service) Driver() string { return s.driver }

func (s *Service) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormConfig(cfg Config) *gorm.Config {
	level := gormLogger.Warn
	if cfg.Silent {
		level = gormLogger.Silent
	}
	slow := cfg.SlowThreshold
	if slow <= 0 {
		slow = time.Second
	}
	return &gorm.Config{
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold:             slow,
				LogLevel:                  level,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}
