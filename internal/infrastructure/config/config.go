package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// KafkaConfig holds broker addresses and the event topic.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// AWSConfig holds the region plus the S3 bucket for documents and the SNS
// topic for decision notifications.
type AWSConfig struct {
	Region          string
	DocumentsBucket string
	DecisionsTopic  string
}

// Config is the full service configuration, loaded from environment
// variables with development defaults.
type Config struct {
	HTTPPort      int
	DB            DatabaseConfig
	Kafka         KafkaConfig
	AWS           AWSConfig
	MigrationsDir string
	LogLevel      string
	ServiceName   string
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "los"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "los"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "los.domain-events"),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			DocumentsBucket: getEnv("DOCUMENTS_BUCKET", "los-documents"),
			DecisionsTopic:  getEnv("DECISIONS_TOPIC_ARN", ""),
		},
		MigrationsDir: getEnv("MIGRATIONS_DIR", "file://./migrations"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		ServiceName:   "los",
	}
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
