package signature

import (
	"time"
)

// Signature headers sent by the interaction platform on every request.
const (
	SignatureHeader = "X-Signature-Ed25519"
	TimestampHeader = "X-Signature-Timestamp"
)

// DefaultTolerance is the maximum accepted age of a request timestamp.
const DefaultTolerance = 5 * time.Second

// Config holds verifier configuration.
type Config struct {
	// PublicKeyHex is the hex-encoded 32-byte Ed25519 public key.
	PublicKeyHex string
	// Tolerance bounds how far in the past a request timestamp may be.
	// Future timestamps are accepted regardless of skew.
	Tolerance time.Duration
}

// SetDefaults applies the default tolerance when none is configured.
func (c *Config) SetDefaults() {
	if c.Tolerance <= 0 {
		c.Tolerance = DefaultTolerance
	}
}
