package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process-level configuration. Values come from the
// environment so main stays lean; an optional .env file is loaded before
// FromEnv runs.
type Server struct {
	Addr       string
	AdminToken string

	// StrictCibilCeiling makes a CIBIL score above a bank's stated maximum a
	// hard disqualifier. Off by default: most partner banks publish the
	// ceiling as a display bound only.
	StrictCibilCeiling bool

	Redis    RedisConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig
	MCA      MCAConfig
}

// RedisConfig configures the key-value record store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PostgresConfig configures the PIN-code directory database. Empty URL means
// the directory falls back to the Redis/in-memory store.
type PostgresConfig struct {
	URL string
}

// KafkaConfig configures the audit event publisher. No brokers means audit
// events go to the log only.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// MCAConfig configures the corporate-registry lookup client. Empty BaseURL
// means CIN lookups are served from the built-in sample dataset.
type MCAConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("FICLEAR_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// An empty admin token is left empty here; main generates a random one
	// and logs it, so the admin surface is never open by accident.
	adminToken := os.Getenv("FICLEAR_ADMIN_TOKEN")

	kafkaTopic := os.Getenv("FICLEAR_KAFKA_AUDIT_TOPIC")
	if kafkaTopic == "" {
		kafkaTopic = "ficlear.audit"
	}

	return Server{
		Addr:               addr,
		AdminToken:         adminToken,
		StrictCibilCeiling: os.Getenv("STRICT_CIBIL_CEILING") == "true",
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Postgres: PostgresConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Kafka: KafkaConfig{
			Brokers: envList("FICLEAR_KAFKA_BROKERS"),
			Topic:   kafkaTopic,
		},
		MCA: MCAConfig{
			BaseURL: os.Getenv("MCA_API_BASE_URL"),
			APIKey:  os.Getenv("MCA_API_KEY"),
			Timeout: envDuration("MCA_API_TIMEOUT", 10*time.Second),
		},
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
