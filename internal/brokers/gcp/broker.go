// Package gcp provides the Google Cloud Pub/Sub implementation of the broker
// interface. The gateway publishes one message per interaction, so batching is
// disabled and every publish waits for the server acknowledgment.
package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	"interactions-gateway/internal/brokers"
	"interactions-gateway/internal/brokers/base"
	"interactions-gateway/internal/common/errors"
	"interactions-gateway/internal/common/logging"
)

// Broker implements the brokers.Broker interface for Google Cloud Pub/Sub.
type Broker struct {
	*base.BaseBroker
	client *pubsub.Client
	topic  *pubsub.Topic
	ctx    context.Context
	cancel context.CancelFunc
}

// NewBroker creates a new Google Cloud Pub/Sub broker instance with the specified configuration.
// The topic must already exist; it is never created here.
// Returns an error if configuration is invalid, client creation fails, or the topic is missing.
func NewBroker(config *Config) (*Broker, error) {
	baseBroker, err := base.NewBaseBroker("gcp", config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Without explicit credentials the client falls back to ADC
	var opts []option.ClientOption
	if config.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(config.CredentialsJSON)))
	} else if config.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsPath))
	}

	client, err := pubsub.NewClient(ctx, config.ProjectID, opts...)
	if err != nil {
		cancel()
		return nil, errors.ConnectionError("failed to create Pub/Sub client", err)
	}

	topic := client.Topic(config.TopicID)

	exists, err := topic.Exists(ctx)
	if err != nil {
		client.Close()
		cancel()
		return nil, errors.ConnectionError("failed to check topic existence", err)
	}
	if !exists {
		client.Close()
		cancel()
		return nil, errors.ConfigError(fmt.Sprintf("topic %s does not exist", config.TopicID))
	}

	// One message per interaction, publish immediately
	topic.PublishSettings.NumGoroutines = 1
	topic.PublishSettings.CountThreshold = 1

	return &Broker{
		BaseBroker: baseBroker,
		client:     client,
		topic:      topic,
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// Publish sends a message to the configured Pub/Sub topic and waits for the
// server acknowledgment, bounded by the caller's context.
func (b *Broker) Publish(ctx context.Context, message *brokers.Message) error {
	if b.client == nil || b.topic == nil {
		return errors.ConnectionError("not connected to Pub/Sub", nil)
	}

	pubsubMsg := &pubsub.Message{
		Data:       message.Body,
		Attributes: make(map[string]string, len(message.Attributes)),
	}

	for key, value := range message.Attributes {
		pubsubMsg.Attributes[key] = value
	}

	result := b.topic.Publish(ctx, pubsubMsg)

	messageID, err := result.Get(ctx)
	if err != nil {
		return errors.PublishError("failed to publish message", err)
	}

	b.GetLogger().Info("Message published to Pub/Sub",
		logging.Field{"message_id", messageID},
		logging.Field{"topic_id", b.topic.ID()},
	)

	return nil
}

// Health checks the health of the Pub/Sub connection by getting topic configuration.
func (b *Broker) Health() error {
	if b.client == nil || b.topic == nil {
		return errors.ConnectionError("not connected to Pub/Sub", nil)
	}

	_, err := b.topic.Config(b.ctx)
	if err != nil {
		return errors.ConnectionError("failed to get topic config", err)
	}

	return nil
}

// Close gracefully shuts down the Pub/Sub client.
func (b *Broker) Close() error {
	if b.cancel != nil {
		b.cancel()
	}

	if b.topic != nil {
		b.topic.Stop()
	}

	if b.client != nil {
		return b.client.Close()
	}

	return nil
}
