package rabbitmq

import (
	"fmt"
	"net/url"

	"interactions-gateway/internal/common/validation"
)

type Config struct {
	URL      string `json:"url"`
	Queue    string `json:"queue"`
	PoolSize int    `json:"pool_size"`
}

func (c *Config) Validate() error {
	if c.PoolSize <= 0 {
		c.PoolSize = 2 // default pool size
	}

	v := validation.NewValidatorWithPrefix("RabbitMQ config")
	v.RequireURL(c.URL, "url")
	v.RequireString(c.Queue, "queue")
	v.RequireRange(c.PoolSize, 1, 100, "pool_size")

	return v.Error()
}

func (c *Config) GetConnectionString() string {
	// Credentials never appear in logs
	if parsedURL, err := url.Parse(c.URL); err == nil {
		parsedURL.User = nil
		return fmt.Sprintf("rabbitmq://%s", parsedURL.Host)
	}
	return "rabbitmq://***"
}

func (c *Config) GetType() string {
	return "rabbitmq"
}
