// Package redis provides a Redis Streams implementation of the broker
// interface. Events are appended to a single stream with XADD; downstream
// consumers read it with their own consumer groups.
package redis

import (
	"context"

	"github.com/go-redis/redis/v8"

	"interactions-gateway/internal/brokers"
	"interactions-gateway/internal/brokers/base"
	"interactions-gateway/internal/common/errors"
	"interactions-gateway/internal/common/logging"
)

// Broker implements the brokers.Broker interface for Redis Streams.
type Broker struct {
	*base.BaseBroker
	client *redis.Client
	ctx    context.Context
}

// NewBroker creates a new Redis Streams broker instance with the specified configuration.
// It validates the configuration and establishes a connection to Redis.
// Returns an error if configuration is invalid or connection fails.
func NewBroker(config *Config) (*Broker, error) {
	baseBroker, err := base.NewBaseBroker("redis", config)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Address,
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.ConnectionError("failed to connect to Redis", err)
	}

	return &Broker{
		BaseBroker: baseBroker,
		client:     client,
		ctx:        ctx,
	}, nil
}

// Publish appends a message to the configured Redis stream.
func (b *Broker) Publish(ctx context.Context, message *brokers.Message) error {
	if b.client == nil {
		return errors.ConnectionError("Redis broker not connected", nil)
	}

	config := b.GetConfig().(*Config)

	streamName := message.Topic
	if streamName == "" {
		streamName = config.Stream
	}

	fields := map[string]interface{}{
		"body":       string(message.Body),
		"timestamp":  message.Timestamp.UnixNano(),
		"message_id": message.MessageID,
	}

	for key, value := range message.Attributes {
		fields["attr_"+key] = value
	}

	args := &redis.XAddArgs{
		Stream: streamName,
		ID:     "*", // Auto-generate ID
		Values: fields,
	}
	if config.StreamMaxLen > 0 {
		args.MaxLen = config.StreamMaxLen
		args.Approx = true // Approximate trimming for better performance
	}

	result := b.client.XAdd(ctx, args)
	if err := result.Err(); err != nil {
		return errors.PublishError("failed to publish message to Redis stream", err)
	}

	b.GetLogger().Info("Message published to Redis stream",
		logging.Field{"stream", streamName},
		logging.Field{"id", result.Val()},
	)
	return nil
}

// Health checks the health of the Redis connection with a ping.
func (b *Broker) Health() error {
	if b.client == nil {
		return errors.ConnectionError("Redis broker not connected", nil)
	}

	if err := b.client.Ping(b.ctx).Err(); err != nil {
		return errors.ConnectionError("Redis ping failed", err)
	}

	return nil
}

// Close closes the Redis client connection.
func (b *Broker) Close() error {
	if b.client != nil {
		err := b.client.Close()
		b.client = nil
		return err
	}
	return nil
}
