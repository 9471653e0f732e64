// Package rabbitmq provides a RabbitMQ implementation of the broker interface.
// It publishes persistent messages to a durable queue over AMQP with a small
// connection pool.
package rabbitmq

import (
	"context"
	"fmt"

	"github.com/streadway/amqp"

	"interactions-gateway/internal/brokers"
	"interactions-gateway/internal/brokers/base"
	"interactions-gateway/internal/common/errors"
)

// Broker implements the brokers.Broker interface for RabbitMQ.
type Broker struct {
	*base.BaseBroker
	pool ConnectionPoolInterface
}

// NewBroker creates a new RabbitMQ broker instance with the specified configuration.
// It validates the configuration and establishes a connection pool.
// Returns an error if configuration is invalid or connection fails.
func NewBroker(config *Config) (*Broker, error) {
	baseBroker, err := base.NewBaseBroker("rabbitmq", config)
	if err != nil {
		return nil, err
	}

	pool, err := NewConnectionPool(config.URL, config.PoolSize)
	if err != nil {
		return nil, errors.ConnectionError("failed to create RabbitMQ connection pool", err)
	}

	return &Broker{
		BaseBroker: baseBroker,
		pool:       ConnectionPoolInterface(pool),
	}, nil
}

// NewBrokerWithPool creates a broker with an injected connection pool (for testing)
func NewBrokerWithPool(config *Config, pool ConnectionPoolInterface) (*Broker, error) {
	baseBroker, err := base.NewBaseBroker("rabbitmq", config)
	if err != nil {
		return nil, err
	}

	return &Broker{
		BaseBroker: baseBroker,
		pool:       pool,
	}, nil
}

// Publish sends a persistent message to the configured durable queue.
func (b *Broker) Publish(ctx context.Context, message *brokers.Message) error {
	if b.pool == nil {
		return errors.ConnectionError("RabbitMQ broker not connected", nil)
	}

	client, err := b.pool.NewClient()
	if err != nil {
		return errors.ConnectionError("failed to get RabbitMQ client", err)
	}
	defer client.Close()

	queue := message.Topic
	if queue == "" {
		if config, ok := b.GetConfig().(*Config); ok {
			queue = config.Queue
		}
	}

	headers := make(amqp.Table, len(message.Attributes))
	for key, value := range message.Attributes {
		headers[key] = value
	}

	err = client.PublishEvent(queue, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    message.MessageID,
		Timestamp:    message.Timestamp,
		Headers:      headers,
		Body:         message.Body,
	})
	if err != nil {
		return errors.PublishError(fmt.Sprintf("failed to publish to queue %s", queue), err)
	}

	return nil
}

// Health checks the health of the RabbitMQ connection by attempting to create a client.
func (b *Broker) Health() error {
	if b.pool == nil {
		return errors.ConnectionError("RabbitMQ broker not connected", nil)
	}

	client, err := b.pool.NewClient()
	if err != nil {
		return errors.ConnectionError("failed to get RabbitMQ client for health check", err)
	}
	defer client.Close()

	// Declare a transient queue to verify the channel is usable
	_, err = client.QueueDeclare("health-check-temp", false, true, false, false, nil)
	return err
}

// Close gracefully closes all connections in the pool and releases resources.
func (b *Broker) Close() error {
	if b.pool != nil {
		b.pool.Close()
		b.pool = nil
	}
	return nil
}
