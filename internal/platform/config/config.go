package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures service-level configuration so main stays lean.
type Config struct {
	Addr     string `env:"LABDESK_ADDR" envDefault:":8080"`
	LogLevel string `env:"LABDESK_LOG_LEVEL" envDefault:"info"`

	// SeedDemoData loads the demo registry records on startup.
	SeedDemoData bool `env:"LABDESK_SEED" envDefault:"true"`

	Redis RedisConfig `envPrefix:"LABDESK_REDIS_"`
	Kafka KafkaConfig `envPrefix:"LABDESK_KAFKA_"`

	RateLimit RateLimitConfig `envPrefix:"LABDESK_RATELIMIT_"`

	// AuditBuffer sizes the audit worker inbox.
	AuditBuffer int `env:"LABDESK_AUDIT_BUFFER" envDefault:"256"`
}

// RedisConfig configures the optional Redis backend for rate limiting.
// An empty URL disables Redis and the limiter falls back to memory.
type RedisConfig struct {
	URL          string        `env:"URL"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
}

// KafkaConfig configures the optional Kafka audit sink. Empty brokers keep
// audit events in the in-memory sink.
type KafkaConfig struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"labdesk.audit"`
}

// RateLimitConfig bounds checkout requests per client per window.
type RateLimitConfig struct {
	Limit  int           `env:"LIMIT" envDefault:"30"`
	Window time.Duration `env:"WINDOW" envDefault:"1m"`
}

// FromEnv builds a Config from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
