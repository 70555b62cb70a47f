package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
)

// DBSecretName is the Secrets Manager secret holding database credentials.
const DBSecretName = "store/DB_CREDENTIALS"

// Event backends selectable through EVENTS_BACKEND.
const (
	EventsSNS   = "sns"
	EventsKafka = "kafka"
)

type Config struct {
	Port             string
	Env              string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	EventsBackend       string
	SNSTopicArn         string
	KafkaBrokers        []string
	KafkaTopic          string
	UseSecrets          bool
	CloudWatchEnabled   bool
	CloudWatchNamespace string

	CloudWatchLogsEnabled bool
	CloudWatchLogGroup    string

	CORSAllowedOrigins []string

	RateLimitPerMinute int
	RateLimitBurst     int
	RequestTimeout     time.Duration
}

// Load reads the configuration from the environment, optionally seeded from a
// .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	if cfg.UseSecrets {
		awsCfg, err := aws_pkg.LoadAWSConfig(context.Background())
		if err != nil {
			return nil, err
		}
		if err := applySecrets(context.Background(), cfg, aws_pkg.NewSecretsClient(awsCfg)); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		Env:                   getEnv("APP_ENV", "development"),
		PostgresUser:          os.Getenv("POSTGRES_USER"),
		PostgresPassword:      os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:            os.Getenv("POSTGRES_DB"),
		PostgresHost:          getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:          getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:       getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone:      getEnv("POSTGRES_TIMEZONE", "UTC"),
		EventsBackend:         getEnv("EVENTS_BACKEND", EventsSNS),
		SNSTopicArn:           os.Getenv("STORE_SNS_TOPIC_ARN"),
		KafkaBrokers:          splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:            getEnv("KAFKA_TOPIC", "store-events"),
		UseSecrets:            os.Getenv("AWS_USE_SECRETS") == "true",
		CloudWatchEnabled:     os.Getenv("CLOUDWATCH_ENABLED") == "true",
		CloudWatchNamespace:   getEnv("CLOUDWATCH_NAMESPACE", "Store"),
		CloudWatchLogsEnabled: os.Getenv("CLOUDWATCH_LOGS_ENABLED") == "true",
		CloudWatchLogGroup:    getEnv("CLOUDWATCH_LOG_GROUP", "/store/service"),
		CORSAllowedOrigins:    splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	var err error
	if cfg.RateLimitPerMinute, err = getEnvInt("RATE_LIMIT_PER_MINUTE", 600); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 100); err != nil {
		return nil, err
	}
	timeout := getEnv("REQUEST_TIMEOUT", "30s")
	if cfg.RequestTimeout, err = time.ParseDuration(timeout); err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", timeout, err)
	}
	return cfg, nil
}

// applySecrets overrides the database settings with the non-empty values of
// the credentials secret.
func applySecrets(ctx context.Context, cfg *Config, secrets aws_pkg.SecretGetter) error {
	values, err := aws_pkg.GetSecretMap(ctx, secrets, DBSecretName)
	if err != nil {
		return fmt.Errorf("failed to load database credentials: %w", err)
	}

	for key, dst := range map[string]*string{
		"POSTGRES_USER":     &cfg.PostgresUser,
		"POSTGRES_PASSWORD": &cfg.PostgresPassword,
		"POSTGRES_DB":       &cfg.PostgresDB,
		"POSTGRES_HOST":     &cfg.PostgresHost,
		"POSTGRES_PORT":     &cfg.PostgresPort,
	} {
		if v := values[key]; v != "" {
			*dst = v
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.PostgresUser == "" || c.PostgresPassword == "" || c.PostgresDB == "" || c.PostgresHost == "" {
		return fmt.Errorf("database config incomplete")
	}
	if c.RateLimitPerMinute <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit settings must be positive")
	}
	switch c.EventsBackend {
	case EventsSNS:
	case EventsKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is required when EVENTS_BACKEND=kafka")
		}
	default:
		return fmt.Errorf("unknown EVENTS_BACKEND %q", c.EventsBackend)
	}
	if len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must name at least one origin")
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort, c.PostgresSSLMode, c.PostgresTimeZone,
	)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, val, err)
	}
	return n, nil
}

// splitList parses a comma separated list, dropping blank entries.
func splitList(val string) []string {
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
