package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorFormatting(t *testing.T) {
	err := PublishError("failed to publish message", fmt.Errorf("broker unreachable")).
		WithCode("PUB001").
		WithContext("interaction_id", "int-1")

	msg := err.Error()
	assert.Contains(t, msg, "publish")
	assert.Contains(t, msg, "failed to publish message")
	assert.Contains(t, msg, "code=PUB001")
	assert.Contains(t, msg, "cause=broker unreachable")
	assert.Contains(t, msg, "interaction_id=int-1")
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := InternalError("wrapped", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, AuthError("no cause").Unwrap())
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{"matching type", AuthError("invalid signature"), ErrTypeAuth, true},
		{"different type", ConfigError("bad key"), ErrTypeAuth, false},
		{"timeout", TimeoutError("publish"), ErrTypeTimeout, true},
		{"plain error", fmt.Errorf("plain"), ErrTypeInternal, false},
		{"nil error", nil, ErrTypeAuth, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsType(tt.err, tt.errType))
		})
	}
}

func TestGetType(t *testing.T) {
	assert.Equal(t, ErrTypeValidation, GetType(ValidationError("bad input")))
	assert.Equal(t, ErrTypeInternal, GetType(fmt.Errorf("plain")))
	assert.Equal(t, ErrorType(""), GetType(nil))
}
