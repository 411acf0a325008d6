package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const PROD_STRING = "prod"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration.
// Values come from defaults, then an optional YAML file, then environment variables.
type Config struct {
	AppEnv         string        `yaml:"app_env"`
	IsProduction   bool          `yaml:"-"`
	ProdOrigins    string        `yaml:"prod_origins"`
	HTTPAddr       string        `yaml:"http_addr"`
	DBDriver       string        `yaml:"db_driver"`
	DBDSN          string        `yaml:"db_dsn"`
	SQLitePath     string        `yaml:"sqlite_path"`
	XSRFSecret     string        `yaml:"xsrf_secret"`
	XSRFTokenTTL   time.Duration `yaml:"xsrf_token_ttl"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps"`
	RateLimitBurst int           `yaml:"rate_limit_burst"`
	LogLevel       string        `yaml:"log_level"`
}

func defaults() *Config {
	return &Config{
		AppEnv:         "dev",
		HTTPAddr:       ":8080",
		DBDriver:       DriverPostgres,
		SQLitePath:     "./data/bulletin.db",
		XSRFTokenTTL:   2 * time.Hour,
		RateLimitRPS:   10,
		RateLimitBurst: 20,
		LogLevel:       "info",
	}
}

// Load loads configuration from .env (optional), the YAML file named by
// CONFIG_FILE (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (cfg *Config) applyEnv() error {
	var err error

	// Application environment (default: dev)
	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.IsProduction = cfg.AppEnv == PROD_STRING

	// Production origins, comma separated (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", cfg.ProdOrigins)

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", cfg.HTTPAddr)

	cfg.DBDriver = getEnv("DB_DRIVER", cfg.DBDriver)
	cfg.DBDSN = getEnv("DB_DSN", cfg.DBDSN)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)

	cfg.XSRFSecret = getEnv("XSRF_SECRET", cfg.XSRFSecret)

	// XSRF token TTL, parse as time.Duration (e.g. "15m", "1h").
	if ttlStr := getEnv("XSRF_TOKEN_TTL", ""); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return fmt.Errorf("invalid XSRF_TOKEN_TTL: %w", err)
		}
		cfg.XSRFTokenTTL = ttl
	}

	if rpsStr := getEnv("RATE_LIMIT_RPS", ""); rpsStr != "" {
		rps, err := strconv.ParseFloat(rpsStr, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimitRPS = rps
	}

	cfg.RateLimitBurst, err = getEnvAsInt("RATE_LIMIT_BURST", cfg.RateLimitBurst)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	return nil
}

func (cfg *Config) validate() error {
	switch cfg.DBDriver {
	case DriverPostgres:
		// Database DSN is required
		if cfg.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	// XSRF secret is required for signing tokens
	if cfg.XSRFSecret == "" {
		return fmt.Errorf("XSRF_SECRET is required")
	}
	if cfg.XSRFTokenTTL <= 0 {
		return fmt.Errorf("XSRF_TOKEN_TTL must be positive")
	}

	return nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Return 0 and a wrapped error to provide context
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
