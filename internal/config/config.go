package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Monitor  MonitorConfig
	SMTP     SMTPConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	// StorageDriver selects the repository backing: "memory" (default) or
	// "postgres".
	StorageDriver string
	FrontendURL   string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// MonitorConfig holds the late-arrival monitor policy. Defaults mirror the
// original behavior: sweep every minute, 9 AM cutoff.
type MonitorConfig struct {
	CutoffHour    int
	SweepInterval time.Duration
}

// SMTPConfig holds mail settings for the late-arrival alert. An empty Host
// disables delivery; the alert is still recorded as sent.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	Recipients []string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:          appPort,
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StorageDriver: getEnv("STORAGE_DRIVER", "memory"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timeclock"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Monitor configuration
	cutoffHour, err := strconv.Atoi(getEnv("LATE_CUTOFF_HOUR", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_CUTOFF_HOUR: %w", err)
	}

	sweepInterval, err := time.ParseDuration(getEnv("LATE_SWEEP_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_SWEEP_INTERVAL: %w", err)
	}

	config.Monitor = MonitorConfig{
		CutoffHour:    cutoffHour,
		SweepInterval: sweepInterval,
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:       getEnv("SMTP_HOST", ""),
		Port:       smtpPort,
		Username:   getEnv("SMTP_USERNAME", ""),
		Password:   getEnv("SMTP_PASSWORD", ""),
		From:       getEnv("SMTP_FROM", "timeclock@localhost"),
		Recipients: getEnvSlice("ALERT_RECIPIENTS"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.App.StorageDriver {
	case "memory":
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when STORAGE_DRIVER is postgres")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER: %s", c.App.StorageDriver)
	}

	if c.Monitor.CutoffHour < 0 || c.Monitor.CutoffHour > 23 {
		return fmt.Errorf("LATE_CUTOFF_HOUR must be between 0 and 23")
	}
	if c.Monitor.SweepInterval <= 0 {
		return fmt.Errorf("LATE_SWEEP_INTERVAL must be positive")
	}

	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
