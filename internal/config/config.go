package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the movie discovery service.
type Config struct {
	DB        DBConfig
	Redis     RedisConfig
	TMDB      TMDBConfig
	Catalog   CatalogConfig
	Storage   StorageConfig
	Auth      AuthConfig
	Chat      ChatConfig
	RateLimit RateLimitConfig
	Port      string
	LogLevel  slog.Level
	PageSize  int
}

// DBConfig holds PostgreSQL configuration.
type DBConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SSLRootCert string
}

// DSN returns the PostgreSQL connection string.
func (d DBConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
	if d.SSLRootCert != "" {
		dsn += fmt.Sprintf(" sslrootcert=%s", d.SSLRootCert)
	}
	return dsn
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// TMDBConfig holds TMDB API configuration used by the catalog sync.
type TMDBConfig struct {
	APIKey  string
	BaseURL string
}

// Catalog sources.
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// CatalogConfig selects where the movie catalog is loaded from.
type CatalogConfig struct {
	Source string
	Path   string
}

// Storage backends for interactions and reviews.
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string
}

// AuthConfig holds token settings for the demo auth service.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	DemoMode  bool
}

// Chat modes.
const (
	ChatModeStatic = "static"
	ChatModeLLM    = "llm"
)

// ChatConfig configures the chat completion backend.
type ChatConfig struct {
	Mode        string
	APIURL      string
	APIKey      string
	Model       string
	Timeout     time.Duration
	StaticDelay time.Duration
}

// RateLimitConfig configures the Redis request limiter.
type RateLimitConfig struct {
	Max           int
	WindowSeconds int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	pageSize, err := strconv.Atoi(getEnv("PAGE_SIZE", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAGE_SIZE: %w", err)
	}
	rateLimitMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "100"))
	rateLimitWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))

	tokenTTL, err := time.ParseDuration(getEnv("JWT_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	chatTimeout, err := time.ParseDuration(getEnv("CHAT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_TIMEOUT: %w", err)
	}
	chatDelay, err := time.ParseDuration(getEnv("CHAT_STATIC_DELAY", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_STATIC_DELAY: %w", err)
	}
	demoMode, err := strconv.ParseBool(getEnv("AUTH_DEMO_MODE", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_DEMO_MODE: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		DB: DBConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        dbPort,
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "movie_discovery"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			SSLRootCert: getEnv("DB_SSLROOTCERT", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		TMDB: TMDBConfig{
			APIKey:  getEnv("TMDB_API_KEY", ""),
			BaseURL: getEnv("TMDB_BASE_URL", "http://api.themoviedb.org/3"),
		},
		Catalog: CatalogConfig{
			Source: strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceFile)),
			Path:   getEnv("CATALOG_PATH", "data/movies.json"),
		},
		Storage: StorageConfig{
			Backend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageMemory)),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "moboe-demo-secret-key"),
			TokenTTL:  tokenTTL,
			DemoMode:  demoMode,
		},
		Chat: ChatConfig{
			Mode:        strings.ToLower(getEnv("CHAT_MODE", ChatModeStatic)),
			APIURL:      getEnv("CHAT_API_URL", "https://generativelanguage.googleapis.com/v1beta"),
			APIKey:      getEnv("CHAT_API_KEY", ""),
			Model:       getEnv("CHAT_MODEL", "gemini-1.5-flash"),
			Timeout:     chatTimeout,
			StaticDelay: chatDelay,
		},
		RateLimit: RateLimitConfig{
			Max:           rateLimitMax,
			WindowSeconds: rateLimitWindow,
		},
		Port:     getEnv("SERVER_PORT", "8080"),
		LogLevel: level,
		PageSize: pageSize,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	switch c.Catalog.Source {
	case CatalogSourceFile, CatalogSourcePostgres:
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}
	switch c.Storage.Backend {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}
	switch c.Chat.Mode {
	case ChatModeStatic:
	case ChatModeLLM:
		if c.Chat.APIKey == "" {
			return fmt.Errorf("CHAT_API_KEY is required when CHAT_MODE=llm")
		}
	default:
		return fmt.Errorf("unknown CHAT_MODE %q", c.Chat.Mode)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.Chat.Timeout <= 0 {
		return fmt.Errorf("CHAT_TIMEOUT must be positive")
	}
	return nil
}

// NeedsPostgres reports whether any component reads from PostgreSQL.
func (c *Config) NeedsPostgres() bool {
	return c.Catalog.Source == CatalogSourcePostgres || c.Storage.Backend == StoragePostgres
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
