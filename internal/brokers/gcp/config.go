package gcp

import (
	"fmt"
	"time"

	"interactions-gateway/internal/common/config"
	"interactions-gateway/internal/common/validation"
)

type Config struct {
	config.BaseConnConfig

	ProjectID       string
	CredentialsJSON string // JSON credentials (optional - can use ADC)
	CredentialsPath string // Path to service account key file (optional)
	TopicID         string // Pub/Sub topic ID
}

func (c *Config) Validate() error {
	v := validation.NewValidatorWithPrefix("GCP Pub/Sub config")

	v.RequireString(c.ProjectID, "project_id")
	v.RequireString(c.TopicID, "topic_id")

	c.SetConnectionDefaults(30 * time.Second)

	v.RequirePositive(c.RetryMax, "retry_max")

	return v.Error()
}

func (c *Config) GetType() string {
	return "gcp"
}

func (c *Config) GetConnectionString() string {
	return fmt.Sprintf("pubsub://projects/%s/topics/%s", c.ProjectID, c.TopicID)
}

func DefaultConfig() *Config {
	config := &Config{
		ProjectID: "",
		TopicID:   "",
	}
	config.SetConnectionDefaults(30 * time.Second)
	return config
}
