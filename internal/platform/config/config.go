package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	LogLevel      string
	StorageType   string
	DatabaseURL   string
	EnableDBCheck bool

	MigrationsPath string
	SeedFile       string

	SupportedCurrencies []string

	TransferMinLatency       time.Duration
	TransferMaxLatency       time.Duration
	TransferTimeout          time.Duration
	TransferFailureRate      float64
	TransferOutcomeCapacity  int
	TransferOutcomeRetention time.Duration

	KafkaBrokers       []string
	KafkaExchangeTopic string

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_BACKEND", StorageMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SEED_FILE", "config/seed.yaml")
	v.SetDefault("SUPPORTED_CURRENCIES", strings.Join(domain.DefaultSupportedCurrencies, ","))
	v.SetDefault("TRANSFER_MIN_LATENCY", "200ms")
	v.SetDefault("TRANSFER_MAX_LATENCY", "400ms")
	v.SetDefault("TRANSFER_TIMEOUT", "2s")
	v.SetDefault("TRANSFER_FAILURE_RATE", 0.0)
	v.SetDefault("TRANSFER_OUTCOME_CAPACITY", 100000)
	v.SetDefault("TRANSFER_OUTCOME_RETENTION", "1h")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_EXCHANGE_TOPIC", "exchange.results")
	v.SetDefault("RATE_LIMIT", "100-S")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                     v.GetString("PORT"),
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		LogLevel:                 v.GetString("LOG_LEVEL"),
		StorageType:              strings.ToLower(v.GetString("STORAGE_BACKEND")),
		DatabaseURL:              v.GetString("PGSQL_URL"),
		EnableDBCheck:            v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:           v.GetString("MIGRATIONS_PATH"),
		SeedFile:                 v.GetString("SEED_FILE"),
		SupportedCurrencies:      splitList(v.GetString("SUPPORTED_CURRENCIES")),
		TransferMinLatency:       v.GetDuration("TRANSFER_MIN_LATENCY"),
		TransferMaxLatency:       v.GetDuration("TRANSFER_MAX_LATENCY"),
		TransferTimeout:          v.GetDuration("TRANSFER_TIMEOUT"),
		TransferFailureRate:      v.GetFloat64("TRANSFER_FAILURE_RATE"),
		TransferOutcomeCapacity:  v.GetInt("TRANSFER_OUTCOME_CAPACITY"),
		TransferOutcomeRetention: v.GetDuration("TRANSFER_OUTCOME_RETENTION"),
		KafkaBrokers:             splitList(v.GetString("KAFKA_BROKERS")),
		KafkaExchangeTopic:       v.GetString("KAFKA_EXCHANGE_TOPIC"),
		RateLimit:                v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:       splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageType {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_BACKEND=%s", StoragePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageType)
	}

	for _, c := range cfg.SupportedCurrencies {
		if !domain.IsCurrencyCode(c) {
			return nil, fmt.Errorf("invalid currency %q in SUPPORTED_CURRENCIES", c)
		}
	}

	if cfg.TransferMinLatency < 0 || cfg.TransferMaxLatency < cfg.TransferMinLatency {
		return nil, fmt.Errorf("invalid transfer latency range [%s, %s]", cfg.TransferMinLatency, cfg.TransferMaxLatency)
	}
	if cfg.TransferTimeout <= 0 {
		return nil, fmt.Errorf("TRANSFER_TIMEOUT must be positive")
	}
	if cfg.TransferFailureRate < 0 || cfg.TransferFailureRate > 1 {
		return nil, fmt.Errorf("TRANSFER_FAILURE_RATE must be within [0,1], got %v", cfg.TransferFailureRate)
	}
	if cfg.TransferOutcomeCapacity <= 0 || cfg.TransferOutcomeRetention <= 0 {
		return nil, fmt.Errorf("TRANSFER_OUTCOME_CAPACITY and TRANSFER_OUTCOME_RETENTION must be positive")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
