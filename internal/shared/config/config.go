package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	MaxBodyBytes   int64

	// Upstream booking provider
	Roller RollerConfig

	// Redis configuration (rate limiting; optional)
	Redis RedisConfig

	// Kafka configuration (payment-link notifications; optional)
	Kafka KafkaConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// CORS
	AllowedOrigins []string

	// Logging
	LogLevel string
}

// RollerConfig holds upstream booking-provider configuration
type RollerConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Audience     string
	TokenPath    string
	VenueID      string
	// Mock forces synthetic responses unconditionally; no network access.
	Mock bool
	// StrictErrors surfaces upstream failures as errors instead of
	// synthetic fallbacks. Default false: availability over accuracy.
	StrictErrors bool
	// CheckoutFallbackBase is the base of the deterministic synthetic
	// checkout link used when the upstream checkout call fails.
	CheckoutFallbackBase string

	HTTPTimeout time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string
}

// KafkaConfig holds Kafka configuration for the notification producer
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled         bool          `json:"enabled"`
	WindowDuration  time.Duration `json:"window_duration"`
	DefaultRequests int           `json:"default_requests"`
	BookingRequests int           `json:"booking_requests"`
	HealthRequests  int           `json:"health_requests"`
	WhitelistedIPs  []string      `json:"whitelisted_ips"`
}

// placeholderClientID is what the sample .env ships with; treating it as
// unconfigured avoids hammering the token endpoint with junk credentials.
const placeholderClientID = "your_roller_client_id_here"

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server configuration
		Port:           getEnv("PORT", "3000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB
		MaxBodyBytes:   getInt64Env("MAX_BODY_BYTES", 1<<20), // 1 MB

		Roller: RollerConfig{
			BaseURL:              strings.TrimRight(getEnv("ROLLER_BASE_URL", ""), "/"),
			ClientID:             getEnv("ROLLER_CLIENT_ID", ""),
			ClientSecret:         getEnv("ROLLER_CLIENT_SECRET", ""),
			Audience:             getEnv("ROLLER_AUDIENCE", ""),
			TokenPath:            getEnv("ROLLER_TOKEN_PATH", "/token"),
			VenueID:              getEnv("ROLLER_VENUE_ID", ""),
			Mock:                 getEnv("ROLLER_MOCK", "") == "1",
			StrictErrors:         getBoolEnv("UPSTREAM_STRICT_ERRORS", false),
			CheckoutFallbackBase: strings.TrimRight(getEnv("CHECKOUT_FALLBACK_BASE", "https://checkout.roller.app/s"), "/"),
			HTTPTimeout:          getDurationEnv("ROLLER_HTTP_TIMEOUT", 10*time.Second),
		},

		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},

		Kafka: KafkaConfig{
			Enabled: getBoolEnv("KAFKA_ENABLED", false),
			Brokers: getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_PAYMENT_LINK_TOPIC", "payment-links"),
		},

		RateLimit: RateLimitConfig{
			Enabled:         getBoolEnv("RATE_LIMIT_ENABLED", false),
			WindowDuration:  getDurationEnv("RATE_LIMIT_WINDOW_DURATION", 60*time.Second),
			DefaultRequests: getIntEnv("RATE_LIMIT_DEFAULT_REQUESTS", 60),
			BookingRequests: getIntEnv("RATE_LIMIT_BOOKING_REQUESTS", 20),
			HealthRequests:  getIntEnv("RATE_LIMIT_HEALTH_REQUESTS", 120),
			WhitelistedIPs:  getStringSliceEnv("RATE_LIMIT_WHITELISTED_IPS", []string{}),
		},

		AllowedOrigins: getStringSliceEnv("ALLOWED_ORIGINS", []string{
			"https://*.vapi.ai",
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}

	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// Configured reports whether the upstream provider has usable credentials.
// Placeholder credentials from a sample .env count as unconfigured.
func (r RollerConfig) Configured() bool {
	return r.BaseURL != "" &&
		r.ClientID != "" &&
		r.ClientSecret != "" &&
		!strings.Contains(r.ClientID, placeholderClientID)
}

// Live reports whether live upstream calls should be attempted
func (r RollerConfig) Live() bool {
	return !r.Mock && r.Configured()
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getInt64Env gets an int64 environment variable with a fallback value
func getInt64Env(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// getStringSliceEnv gets a comma-separated string environment variable as a slice
func getStringSliceEnv(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		var result []string
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
