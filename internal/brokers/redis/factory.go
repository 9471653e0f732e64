package redis

import (
	"fmt"

	"interactions-gateway/internal/brokers"
)

type factory struct{}

// GetFactory returns the factory for creating Redis Streams brokers.
func GetFactory() brokers.BrokerFactory {
	return factory{}
}

func (factory) GetType() string {
	return "redis"
}

func (factory) Create(config brokers.BrokerConfig) (brokers.Broker, error) {
	redisConfig, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *redis.Config, got %T", config)
	}
	return NewBroker(redisConfig)
}
