package initializers

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction = "production"

	defaultPort            = "5000"
	defaultClientURL       = "http://localhost:5173"
	defaultShopPhone       = "919511537448"
	defaultWhatsAppAPIURL  = "https://graph.facebook.com/v20.0"
	defaultAccessTokenTTL  = 15 * time.Minute
	defaultRefreshTokenTTL = 90 * 24 * time.Hour
	defaultCacheTTL        = 5 * time.Minute
	defaultAuthRateLimit   = 10
	devJWTSecret           = "woven-magic-dev-secret"
	devJWTRefreshSecret    = "woven-magic-dev-refresh-secret"
)

// Config is built once in main and handed to every component that needs it.
type Config struct {
	Port     string
	Env      string
	LogLevel slog.Level

	DBDriver    string
	DatabaseURL string

	JWTSecret        string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration

	AllowedOrigins []string

	RedisURL string
	CacheTTL time.Duration

	WhatsAppPhone         string
	WhatsAppAPIURL        string
	WhatsAppAPIToken      string
	WhatsAppPhoneNumberID string

	AuthRateLimit int
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// LoadEnv reads a .env file when one is present. Real environment variables win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                  getEnv("PORT", defaultPort),
		Env:                   getEnv("APP_ENV", "development"),
		DBDriver:              strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		JWTRefreshSecret:      os.Getenv("JWT_REFRESH_SECRET"),
		RedisURL:              os.Getenv("REDIS_URL"),
		WhatsAppPhone:         getEnv("WHATSAPP_PHONE", defaultShopPhone),
		WhatsAppAPIURL:        getEnv("WHATSAPP_API_URL", defaultWhatsAppAPIURL),
		WhatsAppAPIToken:      os.Getenv("WHATSAPP_API_TOKEN"),
		WhatsAppPhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
	}

	var err error
	if cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	if cfg.AccessTokenTTL, err = getDuration("ACCESS_TOKEN_TTL", defaultAccessTokenTTL); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenTTL, err = getDuration("REFRESH_TOKEN_TTL", defaultRefreshTokenTTL); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", defaultCacheTTL); err != nil {
		return nil, err
	}
	if cfg.AuthRateLimit, err = getInt("AUTH_RATE_LIMIT", defaultAuthRateLimit); err != nil {
		return nil, err
	}

	if cfg.AuthRateLimit < 1 {
		return nil, fmt.Errorf("AUTH_RATE_LIMIT must be positive, got %d", cfg.AuthRateLimit)
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	switch cfg.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DatabaseURL == "" {
		if cfg.DBDriver != DriverSQLite {
			return nil, errors.New("DATABASE_URL is not set")
		}
		cfg.DatabaseURL = "woven_magic.db"
	}

	if cfg.JWTSecret == "" || cfg.JWTRefreshSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET and JWT_REFRESH_SECRET must be set in production")
		}
		slog.Warn("JWT secrets not set, using development defaults. PLEASE SET THEM IN PRODUCTION!")
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = devJWTSecret
		}
		if cfg.JWTRefreshSecret == "" {
			cfg.JWTRefreshSecret = devJWTRefreshSecret
		}
	}

	cfg.AllowedOrigins = allowedOrigins(getEnv("CLIENT_URL", defaultClientURL))

	return cfg, nil
}

// allowedOrigins mirrors the storefront deployments. Entries are stored without a trailing slash.
func allowedOrigins(clientURLs string) []string {
	origins := []string{defaultClientURL, "https://woven-magic.vercel.app"}
	for _, u := range strings.Split(clientURLs, ",") {
		u = strings.TrimRight(strings.TrimSpace(u), "/")
		if u == "" {
			continue
		}
		if !slices.Contains(origins, u) {
			origins = append(origins, u)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", raw)
	}
	return level, nil
}
