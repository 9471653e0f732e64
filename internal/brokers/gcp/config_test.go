package gcp

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
				ProjectID: "my-project",
				TopicID:   "interaction-events",
			},
			wantErr: false,
		},
		{
			name: "missing project",
			config: &Config{
				TopicID: "interaction-events",
			},
			wantErr: true,
			errMsg:  "project_id is required",
		},
		{
			name: "missing topic",
			config: &Config{
				ProjectID: "my-project",
			},
			wantErr: true,
			errMsg:  "topic_id is required",
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
		ProjectID: "my-project",
		TopicID:   "interaction-events",
	}
	require.NoError(t, config.Validate())

	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, 3, config.RetryMax)
	assert.Equal(t, "gcp", config.GetType())
	assert.Equal(t, "pubsub://projects/my-project/topics/interaction-events", config.GetConnectionString())
}
