package aws

import (
	"testing"

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
			name: "sns mode",
			config: &Config{
				Region:   "us-east-1",
				TopicArn: "arn:aws:sns:us-east-1:1:interaction-events",
			},
			wantErr: false,
		},
		{
			name: "sqs mode",
			config: &Config{
				Region:   "eu-west-1",
				QueueURL: "https://sqs.eu-west-1.amazonaws.com/1/interaction-events",
			},
			wantErr: false,
		},
		{
			name: "static credentials",
			config: &Config{
				Region:          "us-east-1",
				TopicArn:        "arn:aws:sns:us-east-1:1:t",
				AccessKeyID:     "AKIA123",
				SecretAccessKey: "secret",
			},
			wantErr: false,
		},
		{
			name: "missing region",
			config: &Config{
				TopicArn: "arn:aws:sns:us-east-1:1:t",
			},
			wantErr: true,
			errMsg:  "region is required",
		},
		{
			name: "no destination",
			config: &Config{
				Region: "us-east-1",
			},
			wantErr: true,
			errMsg:  "either topic_arn or queue_url is required",
		},
		{
			name: "access key without secret",
			config: &Config{
				Region:      "us-east-1",
				TopicArn:    "arn:aws:sns:us-east-1:1:t",
				AccessKeyID: "AKIA123",
			},
			wantErr: true,
			errMsg:  "secret_access_key is required",
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

func TestConnectionString(t *testing.T) {
	snsConfig := &Config{Region: "us-east-1", TopicArn: "arn:aws:sns:us-east-1:1:t"}
	assert.Equal(t, "sns://arn:aws:sns:us-east-1:1:t", snsConfig.GetConnectionString())

	sqsConfig := &Config{Region: "us-east-1", QueueURL: "https://sqs.us-east-1.amazonaws.com/1/q"}
	assert.Equal(t, "sqs://https://sqs.us-east-1.amazonaws.com/1/q", sqsConfig.GetConnectionString())

	assert.Equal(t, "aws", snsConfig.GetType())
}
