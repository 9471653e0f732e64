// Package kafka provides the Kafka producer implementation of the broker
// interface. Every publish waits for the delivery report before returning.
package kafka

import (
	"context"
	"fmt"
	"strings"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"interactions-gateway/internal/brokers"
	"interactions-gateway/internal/common/errors"
	"interactions-gateway/internal/common/logging"
)

type Broker struct {
	config   *Config
	producer *kafka.Producer
	logger   logging.Logger
	name     string
}

func NewBroker(config *Config) (*Broker, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid Kafka config: %v", err))
	}

	kafkaConfig := kafka.ConfigMap{
		"bootstrap.servers": strings.Join(config.Brokers, ","),
		"client.id":         config.ClientID,
	}

	if config.SecurityProtocol != "PLAINTEXT" {
		kafkaConfig["security.protocol"] = config.SecurityProtocol
	}

	if strings.HasPrefix(config.SecurityProtocol, "SASL_") {
		kafkaConfig["sasl.mechanism"] = config.SASLMechanism
		kafkaConfig["sasl.username"] = config.SASLUsername
		kafkaConfig["sasl.password"] = config.SASLPassword
	}

	producer, err := kafka.NewProducer(&kafkaConfig)
	if err != nil {
		return nil, errors.ConnectionError("failed to create Kafka producer", err)
	}

	logger := logging.GetGlobalLogger().WithFields(
		logging.Field{"broker", "kafka"},
		logging.Field{"connection", config.GetConnectionString()},
	)

	return &Broker{
		config:   config,
		producer: producer,
		logger:   logger,
		name:     "kafka",
	}, nil
}

func (b *Broker) Name() string {
	return b.name
}

// Publish produces a message to the configured topic and waits for the
// delivery report, bounded by the caller's context.
func (b *Broker) Publish(ctx context.Context, message *brokers.Message) error {
	if b.producer == nil {
		return errors.ConnectionError("Kafka broker not connected", nil)
	}

	topic := message.Topic
	if topic == "" {
		topic = b.config.Topic
	}

	kafkaMsg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: kafka.PartitionAny,
		},
		Value:     message.Body,
		Timestamp: message.Timestamp,
	}

	if len(message.Attributes) > 0 {
		headers := make([]kafka.Header, 0, len(message.Attributes))
		for key, value := range message.Attributes {
			headers = append(headers, kafka.Header{
				Key:   key,
				Value: []byte(value),
			})
		}
		kafkaMsg.Headers = headers
	}

	if message.MessageID != "" {
		kafkaMsg.Key = []byte(message.MessageID)
	}

	deliveryChan := make(chan kafka.Event, 1)
	if err := b.producer.Produce(kafkaMsg, deliveryChan); err != nil {
		return errors.PublishError("failed to produce message", err)
	}

	select {
	case e := <-deliveryChan:
		m := e.(*kafka.Message)
		if m.TopicPartition.Error != nil {
			return errors.PublishError("delivery failed", m.TopicPartition.Error)
		}

		b.logger.Info("Message delivered to Kafka",
			logging.Field{"topic", *m.TopicPartition.Topic},
			logging.Field{"partition", m.TopicPartition.Partition},
			logging.Field{"offset", m.TopicPartition.Offset},
		)
		return nil
	case <-ctx.Done():
		return errors.TimeoutError("kafka delivery confirmation")
	}
}

func (b *Broker) Health() error {
	if b.producer == nil {
		return errors.ConnectionError("Kafka producer not initialized", nil)
	}

	metadata, err := b.producer.GetMetadata(nil, false, int(b.config.Timeout.Milliseconds()))
	if err != nil {
		return errors.ConnectionError("failed to get Kafka metadata", err)
	}

	if len(metadata.Brokers) == 0 {
		return errors.ConnectionError("no Kafka brokers available", nil)
	}

	return nil
}

func (b *Broker) Close() error {
	if b.producer != nil {
		b.producer.Flush(int(b.config.Timeout.Milliseconds()))
		b.producer.Close()
		b.producer = nil
	}
	return nil
}
