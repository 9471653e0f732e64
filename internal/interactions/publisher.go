package interactions

import (
	"context"
	"fmt"
	"time"

	"interactions-gateway/internal/brokers"
)

// Publisher is the gateway's outbound port to the message bus. Delivery is
// at-most-once from the gateway's perspective; a returned error means the
// single attempt failed.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, body []byte, attributes map[string]string) error
}

// NoopPublisher drops every event. Used when no bus is configured, which is a
// valid deployment mode, not an error.
type NoopPublisher struct{}

func (NoopPublisher) Name() string {
	return "noop"
}

func (NoopPublisher) Publish(ctx context.Context, body []byte, attributes map[string]string) error {
	return nil
}

// BrokerPublisher adapts a brokers.Broker to the Publisher port, carrying the
// destination topic for every publish.
type BrokerPublisher struct {
	broker brokers.Broker
	topic  string
}

func NewBrokerPublisher(broker brokers.Broker, topic string) *BrokerPublisher {
	return &BrokerPublisher{
		broker: broker,
		topic:  topic,
	}
}

func (p *BrokerPublisher) Name() string {
	return p.broker.Name()
}

func (p *BrokerPublisher) Publish(ctx context.Context, body []byte, attributes map[string]string) error {
	message := &brokers.Message{
		Topic:      p.topic,
		Body:       body,
		Attributes: attributes,
		Timestamp:  time.Now(),
		MessageID:  fmt.Sprintf("interaction-%d", time.Now().UnixNano()),
	}
	return p.broker.Publish(ctx, message)
}
