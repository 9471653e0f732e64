// Package signature verifies Ed25519 webhook signatures over the raw request
// bytes. A request is authentic when the platform's signature covers the
// timestamp header concatenated with the untouched body.
package signature

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"interactions-gateway/internal/common/errors"
	"interactions-gateway/internal/common/logging"
)

// Verifier checks request signatures against a single trusted public key.
// It is immutable after construction and safe for concurrent use.
type Verifier struct {
	publicKey ed25519.PublicKey
	tolerance time.Duration
	logger    logging.Logger

	// now is replaced in tests to pin freshness behavior
	now func() time.Time
}

// NewVerifier creates a new signature verifier from the configured hex key.
// Malformed key material is a construction error; callers treat it as fatal.
func NewVerifier(config *Config, logger logging.Logger) (*Verifier, error) {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	config.SetDefaults()

	keyBytes, err := hex.DecodeString(config.PublicKeyHex)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("public key is not valid hex: %v", err))
	}
	if len(keyBytes) != ed25519.PublicKeySize {
		return nil, errors.ConfigError(fmt.Sprintf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(keyBytes)))
	}

	return &Verifier{
		publicKey: ed25519.PublicKey(keyBytes),
		tolerance: config.Tolerance,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Verify reports whether the signature authenticates the request. Malformed
// input never panics; every malformed input is a verification failure.
//
// Checks run in order and short-circuit: header presence, signature hex
// decoding to exactly 64 bytes, timestamp parsing, freshness, and finally the
// Ed25519 check over timestamp bytes followed by the raw body bytes. Only the
// past side of the freshness window is enforced.
func (v *Verifier) Verify(body []byte, signatureHex, timestamp string) bool {
	if signatureHex == "" || timestamp == "" {
		v.logger.Debug("Signature verification failed: missing header values")
		return false
	}

	sig, err := hex.DecodeString(signatureHex)
	if err != nil {
		v.logger.Debug("Signature verification failed: signature is not valid hex")
		return false
	}
	if len(sig) != ed25519.SignatureSize {
		v.logger.Debug("Signature verification failed: wrong signature length",
			logging.Field{"length", len(sig)},
		)
		return false
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		v.logger.Debug("Signature verification failed: timestamp is not numeric")
		return false
	}

	if age := v.now().Unix() - ts; age > int64(v.tolerance.Seconds()) {
		v.logger.Debug("Signature verification failed: timestamp too old",
			logging.Field{"age_seconds", age},
		)
		return false
	}

	message := make([]byte, 0, len(timestamp)+len(body))
	message = append(message, timestamp...)
	message = append(message, body...)

	return ed25519.Verify(v.publicKey, message, sig)
}

// VerifyRequest verifies the request using the platform signature headers.
// The body must be the literal received bytes.
func (v *Verifier) VerifyRequest(r *http.Request, body []byte) bool {
	return v.Verify(body, r.Header.Get(SignatureHeader), r.Header.Get(TimestampHeader))
}

// PreserveRequestBody reads and preserves the request body for signature verification
func PreserveRequestBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	// Replace the body with a new reader
	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}
