package redis

import (
	"fmt"
	"time"
)

type Config struct {
	Address      string
	Password     string
	DB           int
	PoolSize     int
	Timeout      time.Duration
	RetryMax     int
	Stream       string
	StreamMaxLen int64 // Maximum length of the stream (0 = no limit)
}

func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("Redis address is required")
	}

	if c.Stream == "" {
		return fmt.Errorf("Redis stream name is required")
	}

	// Set defaults
	if c.PoolSize <= 0 {
		c.PoolSize = 10
	}

	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}

	if c.RetryMax <= 0 {
		c.RetryMax = 3
	}

	if c.StreamMaxLen < 0 {
		c.StreamMaxLen = 0 // 0 means no limit
	}

	return nil
}

func (c *Config) GetType() string {
	return "redis"
}

func (c *Config) GetConnectionString() string {
	return fmt.Sprintf("redis://%s/%d", c.Address, c.DB)
}

func DefaultConfig() *Config {
	return &Config{
		Address:  "localhost:6379",
		Password: "",
		DB:       0,
		PoolSize: 10,
		Timeout:  5 * time.Second,
		RetryMax: 3,
		Stream:   "interaction-events",
	}
}
