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
	Site       SiteConfig
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
	Port     int
	Env      string
	LogLevel string
}

// SiteConfig holds the geofence center and the kiosk's installed position.
type SiteConfig struct {
	Latitude       float64
	Longitude      float64
	RadiusMeters   float64
	KioskLatitude  float64
	KioskLongitude float64
	KioskPosition  bool
	SampleInterval time.Duration
}

// AttendanceConfig holds reconciliation policy knobs.
type AttendanceConfig struct {
	AllowedLateMinutes int
	Timezone           string
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way
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
		Name:     getEnv("DB_NAME", "staffpoint"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Geofence site configuration
	siteLat, err := getEnvFloat("SITE_LATITUDE", 0)
	if err != nil {
		return nil, err
	}
	siteLon, err := getEnvFloat("SITE_LONGITUDE", 0)
	if err != nil {
		return nil, err
	}
	siteRadius, err := getEnvFloat("SITE_RADIUS_METERS", 100)
	if err != nil {
		return nil, err
	}

	sampleInterval, err := time.ParseDuration(getEnv("GEOFENCE_SAMPLE_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_SAMPLE_INTERVAL: %w", err)
	}

	kioskPosition := os.Getenv("KIOSK_LATITUDE") != "" && os.Getenv("KIOSK_LONGITUDE") != ""
	kioskLat, err := getEnvFloat("KIOSK_LATITUDE", 0)
	if err != nil {
		return nil, err
	}
	kioskLon, err := getEnvFloat("KIOSK_LONGITUDE", 0)
	if err != nil {
		return nil, err
	}

	config.Site = SiteConfig{
		Latitude:       siteLat,
		Longitude:      siteLon,
		RadiusMeters:   siteRadius,
		KioskLatitude:  kioskLat,
		KioskLongitude: kioskLon,
		KioskPosition:  kioskPosition,
		SampleInterval: sampleInterval,
	}

	// Attendance policy configuration
	allowedLate, err := strconv.Atoi(getEnv("ALLOWED_LATE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALLOWED_LATE_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		AllowedLateMinutes: allowedLate,
		Timezone:           getEnv("TIMEZONE", "Asia/Jakarta"),
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
	if c.Site.RadiusMeters <= 0 {
		return fmt.Errorf("SITE_RADIUS_METERS must be positive")
	}
	if c.Attendance.AllowedLateMinutes < 0 {
		return fmt.Errorf("ALLOWED_LATE_MINUTES must not be negative")
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

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
