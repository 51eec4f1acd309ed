package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string
	LogLevel       string

	JWTSecret string
	JWTIssuer string

	RateLimit          string   // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string // empty disables CORS handling

	Locale          string // locale of change notices, e.g. "en-US"
	DisplayCurrency string // ISO code used to format prices in notices
	ReconcileOnRead bool   // snapshot lookups also reconcile the cached rate

	PropertiesFile string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables, a .env file if
// present and, when PROPERTIES_FILE is set, a .properties file. Environment
// variables win over the properties file, which wins over defaults.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "md-util")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("LOCALE", "en-US")
	v.SetDefault("DISPLAY_CURRENCY", "USD")
	v.SetDefault("RECONCILE_ON_READ", true)
	v.SetDefault("PROPERTIES_FILE", "")
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.PropertiesFile = v.GetString("PROPERTIES_FILE")
	if cfg.PropertiesFile != "" {
		props, err := LoadProps(cfg.PropertiesFile)
		if err != nil {
			return nil, err
		}
		values := make(map[string]any, props.Len())
		for _, key := range props.Keys() {
			values[key] = props.GetString(key, "")
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, fmt.Errorf("failed to merge properties %s: %w", cfg.PropertiesFile, err)
		}
	}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set. Using default.", slog.String("port", cfg.Port))
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.DisplayCurrency = strings.ToUpper(v.GetString("DISPLAY_CURRENCY"))
	if len(cfg.DisplayCurrency) != 3 {
		slog.Warn("Invalid DISPLAY_CURRENCY. Defaulting to USD.", slog.String("value", cfg.DisplayCurrency))
		cfg.DisplayCurrency = "USD"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = v.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.Locale = v.GetString("LOCALE")
	cfg.ReconcileOnRead = v.GetBool("RECONCILE_ON_READ")

	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
