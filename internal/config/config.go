package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const DefaultNewsRetentionCap = 6

// Config is populated from environment variables, usually after godotenv
// has loaded a local .env file.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Kafka    KafkaConfig
	MinIO    MinIOConfig
	News     NewsConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxRetries  int
	AutoMigrate bool
}

type RedisConfig struct {
	Addr     string
	Password string
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type KafkaConfig struct {
	Broker        string
	ConsumerGroup string
	PollInterval  time.Duration

	CleanupAttempts   int
	CleanupBackoff    time.Duration
	CleanupMaxBackoff time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type NewsConfig struct {
	RetentionCap int
	HomeLimit    int
	PageSize     int
	HomeCacheTTL time.Duration
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "go-inova"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("PORT", "3000"),
			CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Name:        getEnv("DB_NAME", "inova"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxRetries:  getEnvInt("DB_MAX_RETRIES", 5),
			AutoMigrate: getEnvBool("DB_AUTOMIGRATE", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			AccessExpiry:  getEnvDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Kafka: KafkaConfig{
			Broker:        getEnv("KAFKA_BROKER", ""),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "go-inova-asset-cleanup"),
			PollInterval:  getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),

			CleanupAttempts:   getEnvInt("KAFKA_CLEANUP_ATTEMPTS", 5),
			CleanupBackoff:    getEnvDuration("KAFKA_CLEANUP_BACKOFF", 15*time.Second),
			CleanupMaxBackoff: getEnvDuration("KAFKA_CLEANUP_MAX_BACKOFF", 2*time.Minute),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "inova"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		News: NewsConfig{
			RetentionCap: getEnvInt("NEWS_RETENTION_CAP", DefaultNewsRetentionCap),
			HomeLimit:    getEnvInt("NEWS_HOME_LIMIT", 9),
			PageSize:     getEnvInt("NEWS_PAGE_SIZE", 9),
			HomeCacheTTL: getEnvDuration("NEWS_HOME_CACHE_TTL", 10*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.News.RetentionCap < 1 {
		errs = append(errs, fmt.Errorf("NEWS_RETENTION_CAP must be at least 1, got %d", c.News.RetentionCap))
	}
	if c.News.HomeLimit < 1 || c.News.PageSize < 1 {
		errs = append(errs, errors.New("NEWS_HOME_LIMIT and NEWS_PAGE_SIZE must be positive"))
	}
	if c.Database.MaxRetries < 1 {
		c.Database.MaxRetries = 1
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	v := getEnv(key, "")
	if v == "" {
		return fallback
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
