package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the explicit runtime configuration, built once at startup and
// injected where needed. No package reads the environment after FromEnv.
type Config struct {
	Addr string

	// APIKey is the shared secret callers must present. Startup fails
	// without it; requests must never be processed unauthenticated.
	APIKey string

	DatabaseURL string
	Redis       RedisConfig
	Kafka       KafkaConfig

	Verification VerificationConfig
}

// RedisConfig configures the optional address-lookup cache.
type RedisConfig struct {
	URL string
	TTL time.Duration
}

// KafkaConfig configures the optional audit event publisher.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// VerificationConfig holds the external verification service endpoints and
// the per-call timeout applied to each of them.
type VerificationConfig struct {
	PhoneBaseURL   string
	EmailBaseURL   string
	AddressBaseURL string
	CallTimeout    time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
// It returns an error (rather than defaulting) for the shared secret: a
// missing secret is a configuration error that must stop the process.
func FromEnv() (Config, error) {
	apiKey := os.Getenv("LOANDRAFT_API_KEY")
	if apiKey == "" {
		return Config{}, fmt.Errorf("LOANDRAFT_API_KEY is required")
	}

	addr := os.Getenv("LOANDRAFT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	cfg := Config{
		Addr:        addr,
		APIKey:      apiKey,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
			TTL: durationEnv("ADDRESS_CACHE_TTL", 5*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers: splitEnv("KAFKA_BROKERS"),
			Topic:   envDefault("KAFKA_AUDIT_TOPIC", "loandraft.audit"),
		},
		Verification: VerificationConfig{
			PhoneBaseURL:   os.Getenv("PHONE_VERIFY_URL"),
			EmailBaseURL:   os.Getenv("EMAIL_VERIFY_URL"),
			AddressBaseURL: os.Getenv("ADDRESS_LOOKUP_URL"),
			CallTimeout:    durationEnv("VERIFY_CALL_TIMEOUT", 10*time.Second),
		},
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func splitEnv(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
