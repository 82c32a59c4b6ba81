package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Env       string
	Locale    string
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Leave     LeaveConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Broker       string
	GroupID      string
	PollInterval time.Duration
}

type JWTConfig struct {
	Secret string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type LeaveConfig struct {
	// InitialAllocations is granted to every new membership by the consumer,
	// keyed by leave type.
	InitialAllocations map[string]decimal.Decimal
}

// DSN returns the PostgreSQL connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	allocations, err := ParseAllocations(getEnv("LEAVE_INITIAL_ALLOCATIONS", ""))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:    getEnv("APP_ENV", "development"),
		Locale: getEnv("APP_LOCALE", "fr"),
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			ReadTimeout:  getEnvDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			Name:       getEnv("DB_NAME", "go_leave"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: getEnvInt("DB_MAX_RETRIES", 5),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Broker:       getEnv("KAFKA_BROKER", ""),
			GroupID:      getEnv("KAFKA_GROUP_ID", "go-leave-balance-seeder"),
			PollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
			Burst: getEnvInt("RATE_LIMIT_BURST", 20),
		},
		Leave: LeaveConfig{
			InitialAllocations: allocations,
		},
	}

	if cfg.JWT.Secret == "" && cfg.IsProduction() {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	return cfg, nil
}

// ParseAllocations parses "PAID:25,RTT:10.5" into a per-type allocation map.
func ParseAllocations(raw string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		typ, amount, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("invalid allocation %q, expected TYPE:DAYS", part)
		}
		typ = strings.ToUpper(strings.TrimSpace(typ))
		days, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return nil, fmt.Errorf("invalid allocation days for %s: %w", typ, err)
		}
		if typ == "" || !days.IsPositive() {
			return nil, fmt.Errorf("invalid allocation %q", part)
		}
		out[typ] = days
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
