package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/employees/internal/employees/store/drivers/mysql"
	"github.com/joho/godotenv"
)

// Supported DB_DRIVER values.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	DBDriver         string        // Storage backend: mysql, sqlite or memory (default: mysql)
	DBHost           string        // MySQL host (default: localhost)
	DBPort           int           // MySQL port (default: 3306)
	DBUser           string        // MySQL user (default: root)
	DBPassword       string        // MySQL password
	DBName           string        // MySQL database (default: employees)
	DBDSN            string        // Optional: full MySQL DSN, overrides the discrete settings
	DBFile           string        // SQLite database file (default: ./employees.db)
	DBConnectTimeout time.Duration // How long to wait for the database at startup (default: 30s)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Config{
		DBDriver:         getEnvOrDefault("DB_DRIVER", DriverMySQL),
		DBHost:           getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:           getEnvIntOrDefault("DB_PORT", 3306),
		DBUser:           getEnvOrDefault("DB_USER", "root"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           getEnvOrDefault("DB_NAME", "employees"),
		DBDSN:            os.Getenv("DB_DSN"),
		DBFile:           getEnvOrDefault("DB_FILE", "employees.db"),
		DBConnectTimeout: getEnvDurationOrDefault("DB_CONNECT_TIMEOUT", 30*time.Second),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the application cannot start with.
func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want mysql, sqlite or memory)", c.DBDriver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

// MySQLDSN returns DB_DSN when set, otherwise a DSN built from the discrete
// DB_* settings.
func (c Config) MySQLDSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	return mysql.FormatDSN(mysql.Options{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Database: c.DBName,
	})
}

// SQLiteDSN returns the modernc.org/sqlite DSN for DBFile.
func (c Config) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", c.DBFile)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
