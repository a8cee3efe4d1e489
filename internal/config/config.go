package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds the verification key for administrative tokens. Token
// issuance lives in the auth collaborator, not in this service.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AttendanceConfig holds the time-accounting parameters. Tolerance is the
// grace period after the scheduled entry time before lateness accrues;
// FallbackWorkdayMinutes is the assumed scheduled workday when an employee
// has neither a shift nor an individual schedule for a date.
type AttendanceConfig struct {
	ToleranceMinutes       int
	FallbackWorkdayMinutes int
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments; values then come
	// from the process environment.
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
		Name:     getEnv("DB_NAME", "asistpro"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	tolerance, err := strconv.Atoi(getEnv("ATTENDANCE_TOLERANCE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_TOLERANCE_MINUTES: %w", err)
	}

	fallbackWorkday, err := strconv.Atoi(getEnv("ATTENDANCE_FALLBACK_WORKDAY_MINUTES", "540"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_FALLBACK_WORKDAY_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		ToleranceMinutes:       tolerance,
		FallbackWorkdayMinutes: fallbackWorkday,
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
	if c.Attendance.ToleranceMinutes < 0 {
		return fmt.Errorf("ATTENDANCE_TOLERANCE_MINUTES must not be negative")
	}
	if c.Attendance.FallbackWorkdayMinutes <= 0 {
		return fmt.Errorf("ATTENDANCE_FALLBACK_WORKDAY_MINUTES must be positive")
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
