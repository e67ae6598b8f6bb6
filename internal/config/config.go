package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	DSN string
}

type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
	CookieName string
}

type MailConfig struct {
	SMTPHost   string
	SMTPPort   int
	Username   string
	Password   string
	From       string
	AdminEmail string
	AppURL     string
}

// Enabled reports whether outbound mail is configured. Without an SMTP
// host every send becomes a logged no-op, matching the dev setup.
func (m MailConfig) Enabled() bool {
	return m.SMTPHost != ""
}

type RateLimitConfig struct {
	SubmissionsPerHour int
	DonationsPerMinute int
	ContactsPerMinute  int
}

type LoggingConfig struct {
	Level string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DATABASE_DSN", "hromada.db"),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
			SessionTTL: getDurationEnv("SESSION_TTL", 24*time.Hour),
			CookieName: getEnv("SESSION_COOKIE_NAME", "hromada_session"),
		},
		Mail: MailConfig{
			SMTPHost:   getEnv("SMTP_HOST", ""),
			SMTPPort:   getIntEnv("SMTP_PORT", 587),
			Username:   getEnv("SMTP_USERNAME", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			From:       getEnv("MAIL_FROM", "Hromada <noreply@hromada.org>"),
			AdminEmail: getEnv("ADMIN_EMAIL", "admin@hromada.org"),
			AppURL:     getEnv("APP_URL", "http://localhost:3000"),
		},
		RateLimit: RateLimitConfig{
			SubmissionsPerHour: getIntEnv("RATE_LIMIT_SUBMISSIONS_PER_HOUR", 3),
			DonationsPerMinute: getIntEnv("RATE_LIMIT_DONATIONS_PER_MINUTE", 5),
			ContactsPerMinute:  getIntEnv("RATE_LIMIT_CONTACTS_PER_MINUTE", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
