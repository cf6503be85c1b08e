package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Workday  WorkdayConfig
	Export   ExportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// WorkdayConfig holds the company-wide engine parameters: night window,
// minimum break and overtime rates.
type WorkdayConfig struct {
	NightWindowStart      string
	NightWindowEnd        string
	MinBreakMinutes       int
	DiurnalOvertimeRate   float64
	NocturnalOvertimeRate float64
}

// ExportConfig holds settings for scheduled report exports.
type ExportConfig struct {
	Dir string
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timekeeper"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	minBreak, err := strconv.Atoi(getEnv("MIN_BREAK_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIN_BREAK_MINUTES: %w", err)
	}
	diurnalRate, err := strconv.ParseFloat(getEnv("OVERTIME_DIURNAL_RATE", "1.25"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_DIURNAL_RATE: %w", err)
	}
	nocturnalRate, err := strconv.ParseFloat(getEnv("OVERTIME_NOCTURNAL_RATE", "1.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OVERTIME_NOCTURNAL_RATE: %w", err)
	}

	config.Workday = WorkdayConfig{
		NightWindowStart:      getEnv("NIGHT_WINDOW_START", "22:00"),
		NightWindowEnd:        getEnv("NIGHT_WINDOW_END", "05:00"),
		MinBreakMinutes:       minBreak,
		DiurnalOvertimeRate:   diurnalRate,
		NocturnalOvertimeRate: nocturnalRate,
	}

	config.Export = ExportConfig{
		Dir: getEnv("EXPORT_DIR", "exports"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
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
