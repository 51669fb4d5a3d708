package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the service configuration, read from the environment
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	StoreTimeZone string `env:"STORE_TIMEZONE" envDefault:"UTC"`
	Port          string `env:"PORT" envDefault:"8080"`

	Redis RedisConfig
	Minio MinioConfig

	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL" envDefault:"24h"`
	ReportCron     string        `env:"REPORT_CRON" envDefault:"5 0 * * *"`
}

// RedisConfig configures the report cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// MinioConfig configures the report archive. An empty Endpoint disables archiving.
type MinioConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY" envDefault:"minioadmin"`
	SecretKey string `env:"MINIO_SECRET_KEY" envDefault:"minioadmin"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"sales-reports"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARN: failed to read .env file: %v", err)
	}
	return Parse()
}

// Parse parses the current environment into a Config.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location returns the store time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.StoreTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEZONE %q: %w", c.StoreTimeZone, err)
	}
	return loc, nil
}

func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}

func (c *Config) ArchiveEnabled() bool {
	return c.Minio.Endpoint != ""
}
