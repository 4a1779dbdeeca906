package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/passport/pkg/httpx"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

var ErrMissingSecret = errors.New("JWT_SECRET is required outside dev")

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	Port                int           // HTTP server port (default: 8090)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	JWTSecret string // Required outside dev: HS256 signing secret
	Issuer    string // Optional: iss claim (default: passport)

	StoreDriver   string // sqlite or mongo (default: sqlite)
	DatabaseFile  string // SQLite database file (default: passport.db)
	MongoURI      string // MongoDB connection string (default: mongodb://localhost:27017)
	MongoDatabase string // MongoDB database name (default: passport)
	PepperFile    string // Pepper for password hashing (default: ./pepper)

	AllowedOrigins []string              // CORS origins, comma separated (default: *)
	TrustedProxies httpx.TrustedProxies // Peers whose X-Forwarded-For is honoured (default: none)

	RateLimitCredentials   httpx.RateLimitConfig // RATELIMIT_CREDENTIALS_*
	RateLimitAuthenticated httpx.RateLimitConfig // RATELIMIT_AUTHENTICATED_*
	RateLimitPublic        httpx.RateLimitConfig // RATELIMIT_PUBLIC_*
}

// LoadConfig reads the environment, after an optional .env file.
func LoadConfig() (Config, error) {
	// A missing .env is normal in containers.
	_ = godotenv.Load()

	cfg := Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		Port:                getEnvIntOrDefault("PORT", 8090),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		JWTSecret: os.Getenv("JWT_SECRET"),
		Issuer:    getEnvOrDefault("AUTH_ISSUER", "passport"),

		StoreDriver:   strings.ToLower(getEnvOrDefault("STORE_DRIVER", DriverSQLite)),
		DatabaseFile:  getEnvOrDefault("DATABASE_FILE", "passport.db"),
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "passport"),
		PepperFile:    getEnvOrDefault("PEPPER_FILE", "pepper"),

		AllowedOrigins: splitList(getEnvOrDefault("ALLOWED_ORIGINS", "*")),

		RateLimitCredentials:   httpx.ParseRateLimitFromEnv("CREDENTIALS", httpx.StrictLimit),
		RateLimitAuthenticated: httpx.ParseRateLimitFromEnv("AUTHENTICATED", httpx.ModerateLimit),
		RateLimitPublic:        httpx.ParseRateLimitFromEnv("PUBLIC", httpx.PublicLimit),
	}

	proxies, err := httpx.ParseTrustedProxies(os.Getenv("TRUSTED_PROXIES"))
	if err != nil {
		return cfg, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	cfg.TrustedProxies = proxies

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.JWTSecret == "" && c.Env != "dev" {
		return ErrMissingSecret
	}
	switch c.StoreDriver {
	case DriverSQLite, DriverMongo:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
