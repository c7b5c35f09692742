package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go-hris-console/internal/shared/connection"
)

type Config struct {
	Port string

	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	// JWTSecret is optional. When empty the console trusts the HR backend
	// to verify tokens and only reads the claims.
	JWTSecret string

	RedisAddr   string
	KafkaBroker string
	AuditDB     *connection.PostgresConfig

	FlashTTL       time.Duration
	RateLimitRPS   float64
	RateLimitBurst int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// OTLPEndpoint enables trace export when set.
	OTLPEndpoint string
	OTLPInsecure bool
}

func Load() Config {
	cfg := Config{
		Port:            readString("PORT", "3000"),
		UpstreamBaseURL: strings.TrimRight(readString("UPSTREAM_BASE_URL", "http://localhost:8080"), "/"),
		UpstreamTimeout: readDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		FlashTTL:        readDuration("FLASH_TTL", 3*time.Second),
		RateLimitRPS:    readFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:  readInt("RATE_LIMIT_BURST", 40),
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    readDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:     60 * time.Second,
		OTLPEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure:    os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true",
	}

	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.AuditDB = &connection.PostgresConfig{
			Host:     host,
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     readString("DB_PORT", "5432"),
			SSLMode:  readString("DB_SSLMODE", "disable"),
		}
	}

	return cfg
}

func readString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func readFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

// readDuration accepts Go durations ("3s") or plain seconds ("3").
func readDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
