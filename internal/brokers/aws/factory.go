package aws

import (
	"fmt"

	"interactions-gateway/internal/brokers"
)

type factory struct{}

// GetFactory returns the factory for creating AWS SNS/SQS brokers.
func GetFactory() brokers.BrokerFactory {
	return factory{}
}

func (factory) GetType() string {
	return "aws"
}

func (factory) Create(config brokers.BrokerConfig) (brokers.Broker, error) {
	awsConfig, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("expected *aws.Config, got %T", config)
	}
	return NewBroker(awsConfig)
}
