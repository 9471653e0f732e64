package aws

import (
	"fmt"
	"time"

	"interactions-gateway/internal/common/config"
	"interactions-gateway/internal/common/validation"
)

type Config struct {
	config.BaseConnConfig

	Region          string
	AccessKeyID     string // Optional - empty uses the default credential chain
	SecretAccessKey string
	SessionToken    string
	TopicArn        string // SNS topic ARN (SNS mode)
	QueueURL        string // SQS queue URL (SQS mode)
}

func (c *Config) Validate() error {
	v := validation.NewValidatorWithPrefix("AWS config")

	v.RequireString(c.Region, "region")

	if c.TopicArn == "" && c.QueueURL == "" {
		v.Validate(func() error {
			return fmt.Errorf("either topic_arn or queue_url is required")
		})
	}

	if c.AccessKeyID != "" {
		v.RequireString(c.SecretAccessKey, "secret_access_key")
	}

	c.SetConnectionDefaults(30 * time.Second)

	v.RequirePositive(c.RetryMax, "retry_max")

	return v.Error()
}

func (c *Config) GetType() string {
	return "aws"
}

func (c *Config) GetConnectionString() string {
	if c.TopicArn != "" {
		return fmt.Sprintf("sns://%s", c.TopicArn)
	}
	return fmt.Sprintf("sqs://%s", c.QueueURL)
}

func DefaultConfig() *Config {
	config := &Config{
		Region: "us-east-1",
	}
	config.SetConnectionDefaults(30 * time.Second)
	return config
}
