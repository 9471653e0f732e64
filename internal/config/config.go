// Package config provides configuration management for the interactions
// gateway. It loads values from environment variables with sensible defaults
// and validates them so the application starts safely.
//
// Environment Variables:
//
// Application Settings:
//   - PORT: Server port (default: 8080)
//   - LOG_LEVEL: Logging level (default: info)
//   - LOG_FILE: Log file path (default: stdout)
//   - TLS_CERT / TLS_KEY: TLS certificate and key paths (optional)
//
// Signature Verification:
//   - DISCORD_PUBLIC_KEY: Hex-encoded Ed25519 public key (required)
//   - SIGNATURE_TOLERANCE: Max accepted timestamp age in seconds (default: 5)
//
// Publishing:
//   - PUBLISH_TIMEOUT: Upper bound on a publish attempt (default: 10s)
//   - BUS_TYPE: gcp, aws, kafka, rabbitmq, redis, or none. When empty,
//     "gcp" is inferred if GOOGLE_CLOUD_PROJECT and PUBSUB_TOPIC are set,
//     otherwise "none" (events are dropped silently).
//
// Google Cloud Pub/Sub:
//   - GOOGLE_CLOUD_PROJECT, PUBSUB_TOPIC,
//     GOOGLE_APPLICATION_CREDENTIALS_JSON (optional, falls back to ADC)
//
// AWS SNS/SQS:
//   - AWS_REGION, SNS_TOPIC_ARN or SQS_QUEUE_URL,
//     AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN
//     (optional, falls back to the default credential chain)
//
// Kafka:
//   - KAFKA_BROKERS (comma-separated), KAFKA_TOPIC, KAFKA_CLIENT_ID,
//     KAFKA_SECURITY_PROTOCOL, KAFKA_SASL_MECHANISM,
//     KAFKA_SASL_USERNAME, KAFKA_SASL_PASSWORD
//
// RabbitMQ:
//   - RABBITMQ_URL, RABBITMQ_QUEUE (default: interaction-events)
//
// Redis Streams:
//   - REDIS_ADDRESS, REDIS_PASSWORD, REDIS_DB, REDIS_POOL_SIZE,
//     REDIS_STREAM (default: interaction-events)
package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Bus type values accepted by BUS_TYPE.
const (
	BusGCP      = "gcp"
	BusAWS      = "aws"
	BusKafka    = "kafka"
	BusRabbitMQ = "rabbitmq"
	BusRedis    = "redis"
	BusNone     = "none"
)

// Config holds all configuration values for the gateway. All string fields
// correspond to environment variables.
type Config struct {
	// Application settings
	Port     string
	LogLevel string
	LogFile  string
	TLSCert  string
	TLSKey   string

	// Signature verification
	PublicKeyHex       string
	SignatureTolerance time.Duration

	// Publishing
	PublishTimeout time.Duration
	BusType        string

	// Google Cloud Pub/Sub
	GCPProject         string
	PubSubTopic        string
	GCPCredentialsJSON string

	// AWS SNS/SQS
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSSessionToken    string
	SNSTopicArn        string
	SQSQueueURL        string

	// Kafka
	KafkaBrokers          string
	KafkaTopic            string
	KafkaClientID         string
	KafkaSecurityProtocol string
	KafkaSASLMechanism    string
	KafkaSASLUsername     string
	KafkaSASLPassword     string

	// RabbitMQ
	RabbitMQURL   string
	RabbitMQQueue string

	// Redis Streams
	RedisAddress  string
	RedisPassword string
	RedisDB       string
	RedisPoolSize string
	RedisStream   string
}

// Load creates a new Config instance with values loaded from environment
// variables. It does not validate; call Validate() on the result.
func Load() *Config {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
		TLSCert:  getEnv("TLS_CERT", ""),
		TLSKey:   getEnv("TLS_KEY", ""),

		PublicKeyHex:       getEnv("DISCORD_PUBLIC_KEY", ""),
		SignatureTolerance: getDurationEnv("SIGNATURE_TOLERANCE", 5*time.Second),

		PublishTimeout: getDurationEnv("PUBLISH_TIMEOUT", 10*time.Second),
		BusType:        strings.ToLower(getEnv("BUS_TYPE", "")),

		GCPProject:         getEnv("GOOGLE_CLOUD_PROJECT", ""),
		PubSubTopic:        getEnv("PUBSUB_TOPIC", ""),
		GCPCredentialsJSON: getEnv("GOOGLE_APPLICATION_CREDENTIALS_JSON", ""),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSSessionToken:    getEnv("AWS_SESSION_TOKEN", ""),
		SNSTopicArn:        getEnv("SNS_TOPIC_ARN", ""),
		SQSQueueURL:        getEnv("SQS_QUEUE_URL", ""),

		KafkaBrokers:          getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:            getEnv("KAFKA_TOPIC", "interaction-events"),
		KafkaClientID:         getEnv("KAFKA_CLIENT_ID", "interactions-gateway"),
		KafkaSecurityProtocol: getEnv("KAFKA_SECURITY_PROTOCOL", "PLAINTEXT"),
		KafkaSASLMechanism:    getEnv("KAFKA_SASL_MECHANISM", ""),
		KafkaSASLUsername:     getEnv("KAFKA_SASL_USERNAME", ""),
		KafkaSASLPassword:     getEnv("KAFKA_SASL_PASSWORD", ""),

		RabbitMQURL:   getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue: getEnv("RABBITMQ_QUEUE", "interaction-events"),

		RedisAddress:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnv("REDIS_DB", "0"),
		RedisPoolSize: getEnv("REDIS_POOL_SIZE", "10"),
		RedisStream:   getEnv("REDIS_STREAM", "interaction-events"),
	}

	if cfg.BusType == "" {
		if cfg.GCPProject != "" && cfg.PubSubTopic != "" {
			cfg.BusType = BusGCP
		} else {
			cfg.BusType = BusNone
		}
	}

	return cfg
}

// getEnv retrieves an environment variable value or returns a default value if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv retrieves a duration environment variable. Bare integers are
// read as seconds; Go duration strings ("10s", "1m") are accepted as well.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}

	return defaultValue
}

// Validate performs comprehensive validation on the configuration.
// Required fields (the public key), field formats, and the settings of the
// selected bus backend are all checked. Call before using the configuration.
func (c *Config) Validate() error {
	if c.PublicKeyHex == "" {
		return fmt.Errorf("DISCORD_PUBLIC_KEY environment variable is required")
	}

	keyBytes, err := hex.DecodeString(c.PublicKeyHex)
	if err != nil {
		return fmt.Errorf("DISCORD_PUBLIC_KEY must be valid hex: %v", err)
	}
	if len(keyBytes) != ed25519.PublicKeySize {
		return fmt.Errorf("DISCORD_PUBLIC_KEY must decode to %d bytes, got %d", ed25519.PublicKeySize, len(keyBytes))
	}

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number between 1 and 65535")
	}

	if c.SignatureTolerance <= 0 {
		return fmt.Errorf("SIGNATURE_TOLERANCE must be positive")
	}

	if c.PublishTimeout <= 0 {
		return fmt.Errorf("PUBLISH_TIMEOUT must be positive")
	}

	switch c.BusType {
	case BusNone:
		// Publishing disabled, nothing further to check
	case BusGCP:
		if c.GCPProject == "" {
			return fmt.Errorf("GOOGLE_CLOUD_PROJECT is required when using the gcp bus")
		}
		if c.PubSubTopic == "" {
			return fmt.Errorf("PUBSUB_TOPIC is required when using the gcp bus")
		}
	case BusAWS:
		if c.SNSTopicArn == "" && c.SQSQueueURL == "" {
			return fmt.Errorf("SNS_TOPIC_ARN or SQS_QUEUE_URL is required when using the aws bus")
		}
	case BusKafka:
		if c.KafkaBrokers == "" {
			return fmt.Errorf("KAFKA_BROKERS is required when using the kafka bus")
		}
	case BusRabbitMQ:
		if c.RabbitMQURL == "" {
			return fmt.Errorf("RABBITMQ_URL is required when using the rabbitmq bus")
		}
	case BusRedis:
		if c.RedisAddress == "" {
			return fmt.Errorf("REDIS_ADDRESS is required when using the redis bus")
		}
		if db, err := strconv.Atoi(c.RedisDB); err != nil || db < 0 || db > 15 {
			return fmt.Errorf("REDIS_DB must be a number between 0 and 15")
		}
		if poolSize, err := strconv.Atoi(c.RedisPoolSize); err != nil || poolSize < 1 {
			return fmt.Errorf("REDIS_POOL_SIZE must be a positive number")
		}
	default:
		return fmt.Errorf("BUS_TYPE must be one of: gcp, aws, kafka, rabbitmq, redis, none")
	}

	return nil
}

// Topic returns the destination identifier for the selected bus backend.
func (c *Config) Topic() string {
	switch c.BusType {
	case BusGCP:
		return c.PubSubTopic
	case BusAWS:
		if c.SNSTopicArn != "" {
			return c.SNSTopicArn
		}
		return c.SQSQueueURL
	case BusKafka:
		return c.KafkaTopic
	case BusRabbitMQ:
		return c.RabbitMQQueue
	case BusRedis:
		return c.RedisStream
	default:
		return ""
	}
}
