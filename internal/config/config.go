package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Auth       AuthConfig
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

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AuthConfig holds the shop owner credential. The backend is single-tenant;
// there is no user table, just one bcrypt-hashed owner password.
type AuthConfig struct {
	OwnerEmail        string
	OwnerPasswordHash string
}

// AttendanceConfig holds attendance tunables.
// DefaultShiftLength is the expected shift duration used as the provisional
// end time when a staff member checks in without checking out yet.
type AttendanceConfig struct {
	DefaultShiftLength time.Duration
}

func Load() (*Config, error) {
	// Missing .env is fine; env vars may come from the host.
	_ = godotenv.Load()

	config := &Config{}

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
		Name:     getEnv("DB_NAME", "beautyhub"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
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

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Owner credential
	config.Auth = AuthConfig{
		OwnerEmail:        getEnv("OWNER_EMAIL", ""),
		OwnerPasswordHash: getEnv("OWNER_PASSWORD_HASH", ""),
	}

	// Attendance configuration
	shiftLength, err := time.ParseDuration(getEnv("ATTENDANCE_DEFAULT_SHIFT", "9h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_DEFAULT_SHIFT: %w", err)
	}
	config.Attendance = AttendanceConfig{
		DefaultShiftLength: shiftLength,
	}

	// Validate required fields
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
	if c.Auth.OwnerEmail == "" {
		return fmt.Errorf("OWNER_EMAIL is required")
	}
	if c.Auth.OwnerPasswordHash == "" {
		return fmt.Errorf("OWNER_PASSWORD_HASH is required")
	}
	if c.Attendance.DefaultShiftLength <= 0 {
		return fmt.Errorf("ATTENDANCE_DEFAULT_SHIFT must be positive")
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
