package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			config: &Config{
				Brokers: []string{"localhost:9092"},
				Topic:   "interaction-events",
			},
			wantErr: false,
		},
		{
			name:    "no brokers",
			config:  &Config{Topic: "interaction-events"},
			wantErr: true,
			errMsg:  "brokers are required",
		},
		{
			name: "empty broker address",
			config: &Config{
				Brokers: []string{"localhost:9092", ""},
				Topic:   "interaction-events",
			},
			wantErr: true,
			errMsg:  "empty Kafka broker address",
		},
		{
			name: "missing topic",
			config: &Config{
				Brokers: []string{"localhost:9092"},
			},
			wantErr: true,
			errMsg:  "topic is required",
		},
		{
			name: "invalid security protocol",
			config: &Config{
				Brokers:          []string{"localhost:9092"},
				Topic:            "interaction-events",
				SecurityProtocol: "SASL_MAYBE",
			},
			wantErr: true,
			errMsg:  "invalid security protocol",
		},
		{
			name: "sasl without credentials",
			config: &Config{
				Brokers:          []string{"localhost:9092"},
				Topic:            "interaction-events",
				SecurityProtocol: "SASL_SSL",
			},
			wantErr: true,
			errMsg:  "username and password are required",
		},
		{
			name: "sasl with credentials",
			config: &Config{
				Brokers:          []string{"localhost:9092"},
				Topic:            "interaction-events",
				SecurityProtocol: "SASL_SSL",
				SASLUsername:     "user",
				SASLPassword:     "pass",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	config := &Config{
		Brokers: []string{"broker1:9092", "broker2:9092"},
		Topic:   "interaction-events",
	}
	require.NoError(t, config.Validate())

	assert.Equal(t, "interactions-gateway", config.ClientID)
	assert.Equal(t, "PLAINTEXT", config.SecurityProtocol)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "broker1:9092,broker2:9092", config.GetConnectionString())
	assert.Equal(t, "kafka", config.GetType())
}

func TestConfigSASLDefaultMechanism(t *testing.T) {
	config := &Config{
		Brokers:          []string{"localhost:9092"},
		Topic:            "interaction-events",
		SecurityProtocol: "SASL_PLAINTEXT",
		SASLUsername:     "user",
		SASLPassword:     "pass",
	}
	require.NoError(t, config.Validate())
	assert.Equal(t, "PLAIN", config.SASLMechanism)
}
