// Package config provides common configuration types shared by the broker
// backends, keeping timeout and retry handling consistent across them.
//
// Example usage:
//
//	// In a broker config
//	type Config struct {
//		config.BaseConnConfig
//		// broker-specific fields...
//	}
package config

import (
	"time"
)

// BaseConnConfig provides common connection configuration fields used across
// all broker types.
type BaseConnConfig struct {
	// Timeout is the connection/request timeout duration
	Timeout time.Duration `json:"timeout"`
	// RetryMax is the maximum number of retry attempts for failed operations
	RetryMax int `json:"retry_max"`
}

// SetConnectionDefaults applies standard defaults for connection configuration.
//
// Default values:
//   - Timeout: 30 seconds (or custom default if provided)
//   - RetryMax: 3 attempts
func (c *BaseConnConfig) SetConnectionDefaults(defaultTimeout time.Duration) {
	if defaultTimeout == 0 {
		defaultTimeout = 30 * time.Second
	}

	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}

	if c.RetryMax <= 0 {
		c.RetryMax = 3
	}
}
