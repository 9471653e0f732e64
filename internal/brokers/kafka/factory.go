package kafka

import (
	"fmt"

	"interactions-gateway/internal/brokers"
)

type factory struct{}

// GetFactory returns the factory for creating Kafka brokers.
func GetFactory() brokers.BrokerFactory {
	return factory{}
}

func (factory) GetType() string {
	return "kafka"
}

func (factory) Create(config brokers.BrokerConfig) (brokers.Broker, error) {
	kafkaConfig, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *kafka.Config, got %T", config)
	}
	return NewBroker(kafkaConfig)
}
