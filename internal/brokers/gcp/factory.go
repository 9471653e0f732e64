package gcp

import (
	"fmt"

	"interactions-gateway/internal/brokers"
)

type factory struct{}

// GetFactory returns the factory for creating GCP Pub/Sub brokers.
func GetFactory() brokers.BrokerFactory {
	return factory{}
}

func (factory) GetType() string {
	return "gcp"
}

func (factory) Create(config brokers.BrokerConfig) (brokers.Broker, error) {
	gcpConfig, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *gcp.Config, got %T", config)
	}
	return NewBroker(gcpConfig)
}
