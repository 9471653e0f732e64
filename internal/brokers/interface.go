package brokers

import (
	"context"
	"time"
)

// Broker is a publish-only handle to a message bus backend. The gateway never
// consumes messages; brokers are built once at startup and shared by requests.
type Broker interface {
	Name() string
	Publish(ctx context.Context, message *Message) error
	Health() error
	Close() error
}

type BrokerConfig interface {
	Validate() error
	GetConnectionString() string
	GetType() string
}

// Message is the backend-neutral publish envelope. Topic carries the
// backend-specific destination (Pub/Sub topic, SNS ARN, queue name, stream).
type Message struct {
	Topic      string
	Attributes map[string]string
	Body       []byte
	Timestamp  time.Time
	MessageID  string
}

type BrokerFactory interface {
	Create(config BrokerConfig) (Broker, error)
	GetType() string
}

type BrokerInfo struct {
	Name string
	Type string
	URL  string
}
