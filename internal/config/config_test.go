package config

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validKeyHex(t *testing.T) string {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return hex.EncodeToString(pub)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_PUBLIC_KEY", validKeyHex(t))

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.SignatureTolerance)
	assert.Equal(t, 10*time.Second, cfg.PublishTimeout)
	assert.Equal(t, BusNone, cfg.BusType)
	assert.Equal(t, "interaction-events", cfg.RedisStream)
	require.NoError(t, cfg.Validate())
}

func TestLoadInfersGCPBus(t *testing.T) {
	t.Setenv("DISCORD_PUBLIC_KEY", validKeyHex(t))
	t.Setenv("GOOGLE_CLOUD_PROJECT", "my-project")
	t.Setenv("PUBSUB_TOPIC", "interaction-events")

	cfg := Load()

	assert.Equal(t, BusGCP, cfg.BusType)
	assert.Equal(t, "interaction-events", cfg.Topic())
	require.NoError(t, cfg.Validate())
}

func TestLoadDurationFormats(t *testing.T) {
	t.Setenv("DISCORD_PUBLIC_KEY", validKeyHex(t))
	t.Setenv("SIGNATURE_TOLERANCE", "30")
	t.Setenv("PUBLISH_TIMEOUT", "2500ms")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.SignatureTolerance)
	assert.Equal(t, 2500*time.Millisecond, cfg.PublishTimeout)
}

func TestValidate(t *testing.T) {
	key := validKeyHex(t)

	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{
			name:     "missing public key",
			mutate:   func(c *Config) { c.PublicKeyHex = "" },
			errorMsg: "DISCORD_PUBLIC_KEY",
		},
		{
			name:     "public key not hex",
			mutate:   func(c *Config) { c.PublicKeyHex = "zz" },
			errorMsg: "valid hex",
		},
		{
			name:     "public key wrong length",
			mutate:   func(c *Config) { c.PublicKeyHex = "deadbeef" },
			errorMsg: "32 bytes",
		},
		{
			name:     "invalid port",
			mutate:   func(c *Config) { c.Port = "99999" },
			errorMsg: "PORT",
		},
		{
			name:     "unknown bus type",
			mutate:   func(c *Config) { c.BusType = "nats" },
			errorMsg: "BUS_TYPE",
		},
		{
			name:     "gcp without topic",
			mutate:   func(c *Config) { c.BusType = BusGCP; c.GCPProject = "p" },
			errorMsg: "PUBSUB_TOPIC",
		},
		{
			name:     "aws without destination",
			mutate:   func(c *Config) { c.BusType = BusAWS },
			errorMsg: "SNS_TOPIC_ARN or SQS_QUEUE_URL",
		},
		{
			name:     "kafka without brokers",
			mutate:   func(c *Config) { c.BusType = BusKafka },
			errorMsg: "KAFKA_BROKERS",
		},
		{
			name:     "rabbitmq without url",
			mutate:   func(c *Config) { c.BusType = BusRabbitMQ },
			errorMsg: "RABBITMQ_URL",
		},
		{
			name:     "redis bad db",
			mutate:   func(c *Config) { c.BusType = BusRedis; c.RedisDB = "16" },
			errorMsg: "REDIS_DB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:               "8080",
				PublicKeyHex:       key,
				SignatureTolerance: 5 * time.Second,
				PublishTimeout:     10 * time.Second,
				BusType:            BusNone,
				RedisAddress:       "localhost:6379",
				RedisDB:            "0",
				RedisPoolSize:      "10",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestTopicPerBackend(t *testing.T) {
	cfg := &Config{
		PubSubTopic:   "ps-topic",
		SNSTopicArn:   "arn:aws:sns:us-east-1:1:topic",
		KafkaTopic:    "k-topic",
		RabbitMQQueue: "r-queue",
		RedisStream:   "r-stream",
	}

	tests := []struct {
		bus  string
		want string
	}{
		{BusGCP, "ps-topic"},
		{BusAWS, "arn:aws:sns:us-east-1:1:topic"},
		{BusKafka, "k-topic"},
		{BusRabbitMQ, "r-queue"},
		{BusRedis, "r-stream"},
		{BusNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.bus, func(t *testing.T) {
			cfg.BusType = tt.bus
			assert.Equal(t, tt.want, cfg.Topic())
		})
	}
}

func TestTopicAWSFallsBackToQueue(t *testing.T) {
	cfg := &Config{BusType: BusAWS, SQSQueueURL: "https://sqs.us-east-1.amazonaws.com/1/q"}
	assert.Equal(t, "https://sqs.us-east-1.amazonaws.com/1/q", cfg.Topic())
}
