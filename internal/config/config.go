package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL         string        `mapstructure:"DATABASE_URL"`
	DatabaseHost        string        `mapstructure:"DB_HOST"`
	DatabasePort        string        `mapstructure:"DB_PORT"`
	DatabaseUser        string        `mapstructure:"DB_USER"`
	DatabasePassword    string        `mapstructure:"DB_PASSWORD"`
	DatabaseName        string        `mapstructure:"DB_NAME"`
	DatabaseSSLMode     string        `mapstructure:"DB_SSL_MODE"`
	StatementTimeout    time.Duration `mapstructure:"DB_STATEMENT_TIMEOUT"`
	LockTimeout         time.Duration `mapstructure:"DB_LOCK_TIMEOUT"`
	DatabaseAutoMigrate bool          `mapstructure:"DB_AUTO_MIGRATE"`

	// JWT configuration
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTExpiry time.Duration `mapstructure:"JWT_EXPIRY"`
	JWTIssuer string        `mapstructure:"JWT_ISSUER"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Selection retry policy
	SelectionMaxAttempts    int           `mapstructure:"SELECTION_MAX_ATTEMPTS"`
	SelectionRetryBaseDelay time.Duration `mapstructure:"SELECTION_RETRY_BASE_DELAY"`

	// Login throttling; Redis is optional, an in-memory limiter is used without it
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int           `mapstructure:"REDIS_DB"`
	LoginRateLimit  int           `mapstructure:"LOGIN_RATE_LIMIT"`
	LoginRateWindow time.Duration `mapstructure:"LOGIN_RATE_WINDOW"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults; DATABASE_URL wins over the DB_* parts when set
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "problem_selection")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_STATEMENT_TIMEOUT", "5s")
	viper.SetDefault("DB_LOCK_TIMEOUT", "2s")
	viper.SetDefault("DB_AUTO_MIGRATE", true)

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY", "24h")
	viper.SetDefault("JWT_ISSUER", "problem-selection-backend")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Selection defaults
	viper.SetDefault("SELECTION_MAX_ATTEMPTS", 3)
	viper.SetDefault("SELECTION_RETRY_BASE_DELAY", "50ms")

	// Login throttling defaults
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LOGIN_RATE_LIMIT", 10)
	viper.SetDefault("LOGIN_RATE_WINDOW", "1m")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.SelectionMaxAttempts < 1 {
		return fmt.Errorf("SELECTION_MAX_ATTEMPTS must be at least 1")
	}

	if config.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
