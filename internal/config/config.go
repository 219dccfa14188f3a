package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/pizzaria-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port      int    `json:"port"`
	Host      string `json:"host"`
	AppEnv    string `json:"app_env"`
	StaticDir string `json:"static_dir"`

	// Database configuration
	Database database.DatabaseConfig `json:"-"`
	SeedMenu bool                    `json:"seed_menu"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// CORS configuration, "*" allows every origin
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`

	// Telemetry configuration, exporters are disabled when the endpoint is empty
	OTelEndpoint string `json:"otel_endpoint"`
	ServiceName  string `json:"service_name"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, AppEnv: %s, DBDriver: %s, DatabaseURL: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, LogLevel: %s, StaticDir: %s, CORSAllowedOrigins: %v, OTelEndpoint: %s, ServiceName: %s}",
		c.Port, c.Host, c.AppEnv, c.Database.Driver, maskDatabaseURL(c.Database.URL), c.Database.Host,
		c.Database.Name, c.Database.User, c.Database.Path, c.LogLevel, c.StaticDir,
		c.CORSAllowedOrigins, c.OTelEndpoint, c.ServiceName)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		// Replace password with [REDACTED]
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates formats like APP_PORT and DATABASE_URL
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", GetEnvWithDefault("PORT", "3000")))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	dbURL := GetEnvWithDefault("DATABASE_URL", "")
	if dbURL != "" {
		// validate URL with net/url
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL format: %w", err)
		}
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "postgres", "postgresql", "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: postgres, mysql, sqlite)", driver)
	}

	config := &Config{
		Port:      port,
		Host:      GetEnvWithDefault("APP_HOST", "0.0.0.0"),
		AppEnv:    GetEnvWithDefault("APP_ENV", "development"),
		StaticDir: GetEnvWithDefault("STATIC_DIR", "public"),
		Database: database.DatabaseConfig{
			Driver:     driver,
			URL:        dbURL,
			Host:       GetEnvWithDefault("DB_HOST", "localhost"),
			Port:       GetEnvWithDefault("DB_PORT", defaultDBPort(driver)),
			User:       GetEnvWithDefault("DB_USER", "postgres"),
			Password:   GetEnvWithDefault("DB_PASSWORD", ""),
			Name:       GetEnvWithDefault("DB_NAME", "pizzaria"),
			SSLMode:    GetEnvWithDefault("DB_SSLMODE", "disable"),
			Path:       GetEnvWithDefault("DB_PATH", "pizzaria.db"),
			MaxRetries: GetEnvAsType("DB_MAX_RETRIES", 5),
		},
		SeedMenu:           GetEnvAsType("SEED_MENU", false),
		LogLevel:           GetEnvWithDefault("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		OTelEndpoint:       GetEnvWithDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:        GetEnvWithDefault("SERVICE_NAME", "pizzaria-api"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func defaultDBPort(driver string) string {
	if driver == "mysql" {
		return "3306"
	}
	return "5432"
}

// splitList turns a comma separated value into a trimmed list without empty entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
