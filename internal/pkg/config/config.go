package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - default: Values common across all environments (port, timeout, etc.)
// - Collaborator settings (DB, Redis, CAPTCHA, email) are all optional: when
//   unset the relevant step degrades to a no-op instead of failing at boot.
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Captcha   CaptchaConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DBConfig struct {
	// Full DSN for the submission store. Empty means submissions are not
	// persisted (warn-and-continue for environments without a database).
	URL string `envconfig:"DATABASE_URL"`
}

type RedisConfig struct {
	// When set, rate limiting moves from the in-process table to a shared
	// Redis backend so multiple instances enforce one window.
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CaptchaConfig struct {
	Secret string `envconfig:"RECAPTCHA_SECRET_KEY"`
}

type EmailConfig struct {
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	From           string `envconfig:"SENDGRID_FROM_EMAIL"`
	To             string `envconfig:"CONTACT_EMAIL_TO"`
}

type RateLimitConfig struct {
	// Kept as a raw string: a missing, unparsable, or non-positive value must
	// fall back to the default limit instead of failing config load.
	MaxPerMinute string `envconfig:"RATE_LIMIT_PER_MINUTE"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length", "Retry-After"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
