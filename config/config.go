package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application-level configuration
type Config struct {
	// Database
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// OLX site
	BaseURL     string
	OlxEmail    string
	OlxPassword string

	// Proxy (optional)
	ProxyServer   string
	ProxyUsername string
	ProxyPassword string

	// Browser session
	StateFilePath string
	Headless      bool

	// Scraper timing
	Workers            int
	RateLimitDelay     int // milliseconds between navigations
	MaxRetries         int
	NavigationTimeout  time.Duration
	BlockCooldown      time.Duration
	FooterWaitTimeout  time.Duration
	FieldProbeTimeout  time.Duration
	ViewCounterTimeout time.Duration
	PhoneRevealTimeout time.Duration

	// Output
	CSVFilePath string
}

// Load reads configuration from a .env file (if present) and environment
// variables, falling back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("POSTGRES_HOST", "localhost"),
		DBPort:     getEnvInt("POSTGRES_PORT", 5432),
		DBUser:     getEnv("POSTGRES_USER", "user"),
		DBPassword: getEnv("POSTGRES_PASSWORD", "password"),
		DBName:     getEnv("POSTGRES_DB", "olx_db"),
		DBSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		BaseURL:     getEnv("OLX_URL", "https://www.olx.ua/uk/"),
		OlxEmail:    getEnv("OLX_EMAIL", ""),
		OlxPassword: getEnv("OLX_PASSWORD", ""),

		ProxyServer:   getEnv("PROXY_SERVER", ""),
		ProxyUsername: getEnv("PROXY_USERNAME", ""),
		ProxyPassword: getEnv("PROXY_PASSWORD", ""),

		StateFilePath: getEnv("STATE_FILE_PATH", "state.json"),
		Headless:      getEnvBool("HEADLESS", true),

		Workers:            getEnvInt("WORKERS", 1),
		RateLimitDelay:     getEnvInt("RATE_LIMIT_DELAY_MS", 1000),
		MaxRetries:         getEnvInt("MAX_RETRIES", 2),
		NavigationTimeout:  getEnvDuration("NAVIGATION_TIMEOUT", 30*time.Second),
		BlockCooldown:      getEnvDuration("BLOCK_COOLDOWN", 30*time.Second),
		FooterWaitTimeout:  getEnvDuration("FOOTER_WAIT_TIMEOUT", 10*time.Second),
		FieldProbeTimeout:  getEnvDuration("FIELD_PROBE_TIMEOUT", time.Second),
		ViewCounterTimeout: getEnvDuration("VIEW_COUNTER_TIMEOUT", 3*time.Second),
		PhoneRevealTimeout: getEnvDuration("PHONE_REVEAL_TIMEOUT", 2*time.Second),

		CSVFilePath: getEnv("CSV_FILE_PATH", "output/ads.csv"),
	}
}

// DatabaseDSN assembles the Postgres connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
