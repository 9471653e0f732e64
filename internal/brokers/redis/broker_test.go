package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interactions-gateway/internal/brokers"
)

func newTestServer(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNewBroker(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			config: &Config{
				Address: s.Addr(),
				Stream:  "interaction-events",
			},
			wantErr: false,
		},
		{
			name: "empty address",
			config: &Config{
				Stream: "interaction-events",
			},
			wantErr: true,
			errMsg:  "address is required",
		},
		{
			name: "missing stream",
			config: &Config{
				Address: s.Addr(),
			},
			wantErr: true,
			errMsg:  "stream name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broker, err := NewBroker(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, broker)
			defer broker.Close()

			assert.Equal(t, "redis", broker.Name())
			assert.NoError(t, broker.Health())
		})
	}
}

func TestPublishToStream(t *testing.T) {
	s := newTestServer(t)

	broker, err := NewBroker(&Config{
		Address: s.Addr(),
		Stream:  "interaction-events",
	})
	require.NoError(t, err)
	defer broker.Close()

	err = broker.Publish(context.Background(), &brokers.Message{
		Body: []byte(`{"type":2,"id":"int-1"}`),
		Attributes: map[string]string{
			"interaction_id": "int-1",
			"command_name":   "greet",
		},
		Timestamp: time.Now(),
		MessageID: "interaction-1",
	})
	require.NoError(t, err)

	entries, err := s.Stream("interaction-events")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	fields := make(map[string]string)
	for i := 0; i+1 < len(entries[0].Values); i += 2 {
		fields[entries[0].Values[i]] = entries[0].Values[i+1]
	}

	assert.Equal(t, `{"type":2,"id":"int-1"}`, fields["body"])
	assert.Equal(t, "interaction-1", fields["message_id"])
	assert.Equal(t, "int-1", fields["attr_interaction_id"])
	assert.Equal(t, "greet", fields["attr_command_name"])
}

func TestPublishTopicOverride(t *testing.T) {
	s := newTestServer(t)

	broker, err := NewBroker(&Config{
		Address: s.Addr(),
		Stream:  "interaction-events",
	})
	require.NoError(t, err)
	defer broker.Close()

	err = broker.Publish(context.Background(), &brokers.Message{
		Topic: "other-stream",
		Body:  []byte(`{}`),
	})
	require.NoError(t, err)

	entries, err := s.Stream("other-stream")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHealthAfterClose(t *testing.T) {
	s := newTestServer(t)

	broker, err := NewBroker(&Config{
		Address: s.Addr(),
		Stream:  "interaction-events",
	})
	require.NoError(t, err)

	require.NoError(t, broker.Close())
	assert.Error(t, broker.Health())
}

func TestConfigDefaults(t *testing.T) {
	config := &Config{
		Address: "localhost:6379",
		Stream:  "interaction-events",
	}
	require.NoError(t, config.Validate())

	assert.Equal(t, 10, config.PoolSize)
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.Equal(t, 3, config.RetryMax)
	assert.Equal(t, "redis", config.GetType())
	assert.Equal(t, "redis://localhost:6379/0", config.GetConnectionString())
}
