// Package aws provides AWS SNS and SQS implementations of the broker interface.
// SNS topics give fan-out delivery; SQS queues give point-to-point messaging.
// The mode is selected by configuration: a topic ARN selects SNS, otherwise the
// queue URL selects SQS.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snsTypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqsTypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"interactions-gateway/internal/brokers"
	"interactions-gateway/internal/brokers/base"
	"interactions-gateway/internal/common/errors"
	"interactions-gateway/internal/common/logging"
)

// Broker implements the brokers.Broker interface for AWS SNS and SQS.
type Broker struct {
	*base.BaseBroker
	sqsClient *sqs.Client
	snsClient *sns.Client
	ctx       context.Context
}

// NewBroker creates a new AWS SNS/SQS broker instance with the specified configuration.
// Static credentials are used when an access key is configured; otherwise the
// SDK's default credential chain applies.
func NewBroker(config *Config) (*Broker, error) {
	baseBroker, err := base.NewBaseBroker("aws", config)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()

	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(config.Region),
	}
	if config.AccessKeyID != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				config.AccessKeyID,
				config.SecretAccessKey,
				config.SessionToken,
			),
		))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.ConnectionError("failed to load AWS config", err)
	}

	return &Broker{
		BaseBroker: baseBroker,
		sqsClient:  sqs.NewFromConfig(awsCfg),
		snsClient:  sns.NewFromConfig(awsCfg),
		ctx:        ctx,
	}, nil
}

// Publish sends a message to the SNS topic or SQS queue based on the configuration.
func (b *Broker) Publish(ctx context.Context, message *brokers.Message) error {
	config, ok := b.GetConfig().(*Config)
	if !ok {
		return errors.ConfigError("invalid configuration type")
	}

	if config.TopicArn != "" {
		return b.publishToSNS(ctx, message, config.TopicArn)
	}
	if config.QueueURL != "" {
		return b.publishToSQS(ctx, message, config.QueueURL)
	}
	return errors.ConfigError("no topic ARN or queue URL configured")
}

func (b *Broker) publishToSNS(ctx context.Context, message *brokers.Message, topicArn string) error {
	messageAttributes := make(map[string]snsTypes.MessageAttributeValue, len(message.Attributes)+1)

	if message.MessageID != "" {
		messageAttributes["MessageID"] = snsTypes.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(message.MessageID),
		}
	}

	for key, value := range message.Attributes {
		messageAttributes[key] = snsTypes.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(value),
		}
	}

	input := &sns.PublishInput{
		TopicArn:          aws.String(topicArn),
		Message:           aws.String(string(message.Body)),
		MessageAttributes: messageAttributes,
	}

	result, err := b.snsClient.Publish(ctx, input)
	if err != nil {
		return errors.PublishError("failed to publish message to SNS", err)
	}

	b.GetLogger().Info("Message published to SNS",
		logging.Field{"message_id", *result.MessageId},
		logging.Field{"topic_arn", topicArn},
	)
	return nil
}

func (b *Broker) publishToSQS(ctx context.Context, message *brokers.Message, queueURL string) error {
	messageAttributes := make(map[string]sqsTypes.MessageAttributeValue, len(message.Attributes)+1)

	if message.MessageID != "" {
		messageAttributes["MessageID"] = sqsTypes.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(message.MessageID),
		}
	}

	for key, value := range message.Attributes {
		messageAttributes[key] = sqsTypes.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(value),
		}
	}

	input := &sqs.SendMessageInput{
		QueueUrl:          aws.String(queueURL),
		MessageBody:       aws.String(string(message.Body)),
		MessageAttributes: messageAttributes,
	}

	result, err := b.sqsClient.SendMessage(ctx, input)
	if err != nil {
		return errors.PublishError("failed to send message to SQS", err)
	}

	b.GetLogger().Info("Message sent to SQS",
		logging.Field{"message_id", *result.MessageId},
		logging.Field{"queue_url", queueURL},
	)
	return nil
}

// Health checks the health of the AWS connection by fetching topic or queue attributes.
func (b *Broker) Health() error {
	config, ok := b.GetConfig().(*Config)
	if !ok {
		return errors.ConfigError("invalid configuration type")
	}

	if config.TopicArn != "" {
		input := &sns.GetTopicAttributesInput{
			TopicArn: aws.String(config.TopicArn),
		}
		_, err := b.snsClient.GetTopicAttributes(b.ctx, input)
		return err
	}

	if config.QueueURL != "" {
		input := &sqs.GetQueueAttributesInput{
			QueueUrl:       aws.String(config.QueueURL),
			AttributeNames: []sqsTypes.QueueAttributeName{sqsTypes.QueueAttributeNameApproximateNumberOfMessages},
		}
		_, err := b.sqsClient.GetQueueAttributes(b.ctx, input)
		return err
	}

	return fmt.Errorf("no topic ARN or queue URL configured for health check")
}

// Close clears the AWS service client references.
// AWS SDK v2 clients don't require explicit closing.
func (b *Broker) Close() error {
	return nil
}
