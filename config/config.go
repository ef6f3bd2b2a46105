package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings of the portal, read from the environment.
type Config struct {
	Address        string        `env:"ADDRESS" envDefault:":3000"`
	BackendBaseURL string        `env:"BACKEND_BASE_URL,required,notEmpty"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`

	JWTSecret    string        `env:"JWT_SECRET,required,notEmpty"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`

	CacheTTL   time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	CacheSweep time.Duration `env:"CACHE_SWEEP" envDefault:"1m"`

	DefaultPageSize  int `env:"DEFAULT_PAGE_SIZE" envDefault:"20"`
	MaxPageSize      int `env:"MAX_PAGE_SIZE" envDefault:"100"`
	SearchDebounceMS int `env:"SEARCH_DEBOUNCE_MS" envDefault:"300"`

	CORSOrigins          string        `env:"CORS_ORIGINS" envDefault:""`
	LoginRateLimitMax    int           `env:"LOGIN_RATE_LIMIT_MAX" envDefault:"10"`
	LoginRateLimitWindow time.Duration `env:"LOGIN_RATE_LIMIT_WINDOW" envDefault:"1m"`

	Log LogConfig `envPrefix:"LOG_"`
}

// LogConfig configures the logger. Output is "stdout", "file" or "both".
type LogConfig struct {
	Level      string `env:"LEVEL" envDefault:"info"`
	Format     string `env:"FORMAT" envDefault:"text"`
	Output     string `env:"OUTPUT" envDefault:"stdout"`
	File       string `env:"FILE" envDefault:"logs/portal.log"`
	MaxSizeMB  int    `env:"MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"MAX_AGE_DAYS" envDefault:"30"`
	Compress   bool   `env:"COMPRESS" envDefault:"true"`
}

// Load reads the given .env files (".env" when none are given; a missing
// file is fine) and parses the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file loaded, using environment variables")
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	if c.DefaultPageSize < 1 || c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("invalid page sizes: default %d, max %d", c.DefaultPageSize, c.MaxPageSize)
	}
	if c.SearchDebounceMS < 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE_MS must not be negative")
	}
	return nil
}
