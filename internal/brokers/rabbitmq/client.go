package rabbitmq

import (
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"interactions-gateway/internal/common/logging"
)

// ClientInterface is a short-lived channel handle taken from the pool.
type ClientInterface interface {
	PublishEvent(queue string, msg amqp.Publishing) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Close()
}

// ConnectionPoolInterface allows injecting a fake pool in tests.
type ConnectionPoolInterface interface {
	NewClient() (ClientInterface, error)
	Close()
}

type ConnectionPool struct {
	url         string
	maxSize     int
	connections chan *amqp.Connection
	mu          sync.RWMutex
	closed      bool
	logger      logging.Logger
}

type Client struct {
	pool *ConnectionPool
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConnectionPool(url string, maxSize int) (*ConnectionPool, error) {
	logger := logging.GetGlobalLogger().WithFields(
		logging.Field{"component", "rabbitmq_pool"},
	)

	pool := &ConnectionPool{
		url:         url,
		maxSize:     maxSize,
		connections: make(chan *amqp.Connection, maxSize),
		logger:      logger,
	}

	// Pre-fill the pool with connections
	for i := 0; i < maxSize; i++ {
		conn, err := amqp.Dial(url)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to create initial RabbitMQ connection: %w", err)
		}
		pool.connections <- conn
	}

	return pool, nil
}

func (p *ConnectionPool) GetConnection() (*amqp.Connection, error) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil, fmt.Errorf("connection pool is closed")
	}
	p.mu.RUnlock()

	select {
	case conn := <-p.connections:
		if conn.IsClosed() {
			newConn, err := amqp.Dial(p.url)
			if err != nil {
				return nil, fmt.Errorf("failed to create new RabbitMQ connection: %w", err)
			}
			return newConn, nil
		}
		return conn, nil
	case <-time.After(5 * time.Second):
		return nil, fmt.Errorf("timeout waiting for connection from pool")
	}
}

func (p *ConnectionPool) ReturnConnection(conn *amqp.Connection) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		conn.Close()
		return
	}
	p.mu.RUnlock()

	if !conn.IsClosed() {
		select {
		case p.connections <- conn:
		default:
			// Pool is full, close the connection
			conn.Close()
		}
	}
}

func (p *ConnectionPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	close(p.connections)
	for conn := range p.connections {
		conn.Close()
	}
}

func (p *ConnectionPool) NewClient() (ClientInterface, error) {
	conn, err := p.GetConnection()
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		p.ReturnConnection(conn)
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	return &Client{
		pool: p,
		conn: conn,
		ch:   ch,
	}, nil
}

func (c *Client) Close() {
	if c.ch != nil {
		c.ch.Close()
	}
	if c.conn != nil {
		c.pool.ReturnConnection(c.conn)
	}
}

func (c *Client) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	return c.ch.QueueDeclare(name, durable, autoDelete, exclusive, noWait, args)
}

// PublishEvent declares the durable queue and publishes the message to it
// via the default exchange.
func (c *Client) PublishEvent(queue string, msg amqp.Publishing) error {
	if _, err := c.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		c.pool.logger.Warn("Failed to declare queue",
			logging.Field{"queue", queue},
			logging.Field{"error", err.Error()},
		)
	}

	return c.ch.Publish(
		"",    // default exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		msg,
	)
}
