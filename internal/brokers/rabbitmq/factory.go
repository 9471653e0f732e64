package rabbitmq

import (
	"fmt"

	"interactions-gateway/internal/brokers"
)

type factory struct{}

// GetFactory returns the factory for creating RabbitMQ brokers.
func GetFactory() brokers.BrokerFactory {
	return factory{}
}

func (factory) GetType() string {
	return "rabbitmq"
}

func (factory) Create(config brokers.BrokerConfig) (brokers.Broker, error) {
	rmqConfig, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *rabbitmq.Config, got %T", config)
	}
	return NewBroker(rmqConfig)
}
