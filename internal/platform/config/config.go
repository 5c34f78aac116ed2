package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	StorageDriver     string
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Operator credentials for /auth/login; the password is a bcrypt hash.
	AdminUsername     string
	AdminPasswordHash string

	CORSAllowedOrigins []string
	LoginRateLimit     string // ulule limiter format, e.g. "5-M"
	LogLevel           slog.Level
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORAGE_DRIVER", StoragePostgres)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "warehouse-management-app")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:     strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		MigrationsPath:    viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		JWTIssuer:         viper.GetString("JWT_ISSUER"),
		AdminUsername:     viper.GetString("ADMIN_USERNAME"),
		AdminPasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		LoginRateLimit:    viper.GetString("LOGIN_RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(viper.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER is %q", StoragePostgres)
		}
	case StorageMemory:
		if cfg.IsProduction {
			log.Println("Warning: in-memory storage in production loses all data on restart.")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Login is disabled.")
	}

	return cfg, nil
}
