package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values. It is loaded once in main and
// passed explicitly into the components that need it.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	JWTSecret   string `mapstructure:"JWT_SECRET"`
	JWTTTLHours int    `mapstructure:"JWT_TTL_HOURS"`

	// Redis configuration. The queue DB backs asynq, the cache DB backs
	// short-lived listing caches.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	WorkerConcurrency int `mapstructure:"WORKER_CONCURRENCY"`

	// Payment gateway configuration.
	ChapaBaseURL          string `mapstructure:"CHAPA_BASE_URL"`
	ChapaSecretKey        string `mapstructure:"CHAPA_SECRET_KEY"`
	PaymentCurrency       string `mapstructure:"PAYMENT_CURRENCY"`
	PaymentCallbackURL    string `mapstructure:"PAYMENT_CALLBACK_URL"`
	GatewayTimeoutSeconds int    `mapstructure:"GATEWAY_TIMEOUT_SECONDS"`

	// Email transport configuration.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	EmailFrom    string `mapstructure:"EMAIL_FROM"`
}

// Load reads configuration from config.yaml (if present) and the
// environment, applies defaults, and returns the populated Config.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "voyago")
	viper.SetDefault("JWT_TTL_HOURS", 72)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_QUEUE_DB", 0)
	viper.SetDefault("REDIS_CACHE_DB", 1)
	viper.SetDefault("WORKER_CONCURRENCY", 10)
	viper.SetDefault("CHAPA_BASE_URL", "https://api.chapa.co")
	viper.SetDefault("PAYMENT_CURRENCY", "ETB")
	viper.SetDefault("PAYMENT_CALLBACK_URL", "https://yourdomain.com/api/verify-payment/")
	viper.SetDefault("GATEWAY_TIMEOUT_SECONDS", 15)
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("EMAIL_FROM", "noreply@voyago.app")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GatewayTimeout returns the HTTP timeout for payment gateway calls.
func (c *Config) GatewayTimeout() time.Duration {
	return time.Duration(c.GatewayTimeoutSeconds) * time.Second
}

// JWTTTL returns the lifetime of issued auth tokens.
func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// IsProduction reports whether the service runs with the production profile.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
