package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/personservice-backend/internal/platform/envutil"
)

// ConfigPathEnv names an optional YAML file loaded over the defaults.
const ConfigPathEnv = "PERSON_CONFIG_PATH"

type Config struct {
	LogMode string        `yaml:"log_mode"`
	HTTP    HTTPConfig    `yaml:"http"`
	DB      DBConfig      `yaml:"db"`
	Redis   RedisConfig   `yaml:"redis"`
	CORS    CORSConfig    `yaml:"cors"`
	Metrics MetricsConfig `yaml:"metrics"`
	Otel    OtelConfig    `yaml:"otel"`
}

type HTTPConfig struct {
	Addr                   string `yaml:"addr"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

type DBConfig struct {
	Driver     string         `yaml:"driver"`
	DSN        string         `yaml:"dsn"`
	SQLitePath string         `yaml:"sqlite_path"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type RedisConfig struct {
	// Addr enables the account cache when set.
	Addr                   string `yaml:"addr"`
	AccountCacheTTLSeconds int    `yaml:"account_cache_ttl_seconds"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type OtelConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Exporter    string  `yaml:"exporter"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

func defaultConfig() Config {
	return Config{
		LogMode: "development",
		HTTP: HTTPConfig{
			Addr:                   ":8080",
			ShutdownTimeoutSeconds: 15,
		},
		DB: DBConfig{
			Driver:     "sqlite",
			SQLitePath: "person.db",
			Postgres: PostgresConfig{
				Host: "localhost",
				Port: "5432",
				User: "postgres",
				Name: "persons",
			},
		},
		Redis:   RedisConfig{AccountCacheTTLSeconds: 300},
		CORS:    CORSConfig{AllowedOrigins: []string{"http://localhost:4200"}},
		Metrics: MetricsConfig{Enabled: true},
		Otel:    OtelConfig{Exporter: "stdout", SampleRatio: 1},
	}
}

// LoadConfig layers defaults, the optional YAML file and the environment, in
// that order.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()

	if path := strings.TrimSpace(os.Getenv(ConfigPathEnv)); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)
	cfg.HTTP.Addr = envutil.String("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.ShutdownTimeoutSeconds = envutil.Int("SHUTDOWN_TIMEOUT_SECONDS", cfg.HTTP.ShutdownTimeoutSeconds)

	cfg.DB.Driver = strings.ToLower(envutil.String("DB_DRIVER", cfg.DB.Driver))
	cfg.DB.DSN = envutil.String("DB_DSN", cfg.DB.DSN)
	cfg.DB.SQLitePath = envutil.String("SQLITE_PATH", cfg.DB.SQLitePath)
	cfg.DB.Postgres.Host = envutil.String("POSTGRES_HOST", cfg.DB.Postgres.Host)
	cfg.DB.Postgres.Port = envutil.String("POSTGRES_PORT", cfg.DB.Postgres.Port)
	cfg.DB.Postgres.User = envutil.String("POSTGRES_USER", cfg.DB.Postgres.User)
	cfg.DB.Postgres.Password = envutil.String("POSTGRES_PASSWORD", cfg.DB.Postgres.Password)
	cfg.DB.Postgres.Name = envutil.String("POSTGRES_NAME", cfg.DB.Postgres.Name)

	cfg.Redis.Addr = envutil.String("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.AccountCacheTTLSeconds = envutil.Int("ACCOUNT_CACHE_TTL_SECONDS", cfg.Redis.AccountCacheTTLSeconds)

	cfg.CORS.AllowedOrigins = envutil.List("CORS_ALLOWED_ORIGINS", cfg.CORS.AllowedOrigins)
	cfg.Metrics.Enabled = envutil.Bool("METRICS_ENABLED", cfg.Metrics.Enabled)

	cfg.Otel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.Otel.Enabled)
	cfg.Otel.Exporter = envutil.String("OTEL_EXPORTER", cfg.Otel.Exporter)
	cfg.Otel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint)
	cfg.Otel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Otel.Insecure)
}

func (c Config) validate() error {
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DB.Driver)
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("HTTP_ADDR cannot be empty")
	}
	return nil
}

func (c Config) ShutdownTimeout() time.Duration {
	if c.HTTP.ShutdownTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.HTTP.ShutdownTimeoutSeconds) * time.Second
}

func (c Config) AccountCacheTTL() time.Duration {
	if c.Redis.AccountCacheTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.Redis.AccountCacheTTLSeconds) * time.Second
}
