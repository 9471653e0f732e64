package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"interactions-gateway/internal/brokers"
	awsbroker "interactions-gateway/internal/brokers/aws"
	"interactions-gateway/internal/brokers/gcp"
	"interactions-gateway/internal/brokers/kafka"
	"interactions-gateway/internal/brokers/rabbitmq"
	redisbroker "interactions-gateway/internal/brokers/redis"
	"interactions-gateway/internal/config"
	"interactions-gateway/internal/handlers"
	"interactions-gateway/internal/interactions"
	"interactions-gateway/internal/middleware"
	"interactions-gateway/internal/server"
	"interactions-gateway/internal/signature"

	"interactions-gateway/internal/common/logging"
)

func main() {
	_ = godotenv.Load()

	logging.InitGlobalLogger()
	defer logging.MustSync()
	logger := logging.GetGlobalLogger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	verifier, err := signature.NewVerifier(&signature.Config{
		PublicKeyHex: cfg.PublicKeyHex,
		Tolerance:    cfg.SignatureTolerance,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to construct signature verifier: %v", err)
	}

	publisher, broker, err := buildPublisher(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize message bus (%s): %v", cfg.BusType, err)
	}
	if broker != nil {
		defer broker.Close()
	}

	dispatcher := interactions.NewDispatcher(publisher, logger, cfg.PublishTimeout)
	h := handlers.New(verifier, dispatcher, logger)

	router := mux.NewRouter()
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")
	router.HandleFunc("/interactions", h.HandleInteraction).Methods("POST")
	router.HandleFunc("/", h.HandleInteraction).Methods("POST")
	router.Use(middleware.LoggingMiddleware)

	srv := server.New(router, cfg.Port, cfg.TLSCert, cfg.TLSKey)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}

	logger.Info("Interactions gateway started",
		logging.Field{"port", cfg.Port},
		logging.Field{"bus_type", cfg.BusType},
		logging.Field{"publisher", publisher.Name()},
	)

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// buildPublisher constructs the publisher for the configured bus type. A bus
// type of "none" yields the noop publisher and no broker handle.
func buildPublisher(cfg *config.Config) (interactions.Publisher, brokers.Broker, error) {
	if cfg.BusType == config.BusNone {
		return interactions.NoopPublisher{}, nil, nil
	}

	registry := brokers.NewRegistry()
	registry.Register("gcp", gcp.GetFactory())
	registry.Register("aws", awsbroker.GetFactory())
	registry.Register("kafka", kafka.GetFactory())
	registry.Register("rabbitmq", rabbitmq.GetFactory())
	registry.Register("redis", redisbroker.GetFactory())

	broker, err := registry.Create(cfg.BusType, brokerConfig(cfg))
	if err != nil {
		return nil, nil, err
	}

	return interactions.NewBrokerPublisher(broker, cfg.Topic()), broker, nil
}

// brokerConfig maps the flat environment configuration onto the selected
// backend's config struct.
func brokerConfig(cfg *config.Config) brokers.BrokerConfig {
	switch cfg.BusType {
	case config.BusGCP:
		return &gcp.Config{
			ProjectID:       cfg.GCPProject,
			TopicID:         cfg.PubSubTopic,
			CredentialsJSON: cfg.GCPCredentialsJSON,
		}
	case config.BusAWS:
		return &awsbroker.Config{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			SessionToken:    cfg.AWSSessionToken,
			TopicArn:        cfg.SNSTopicArn,
			QueueURL:        cfg.SQSQueueURL,
		}
	case config.BusKafka:
		return &kafka.Config{
			Brokers:          strings.Split(cfg.KafkaBrokers, ","),
			Topic:            cfg.KafkaTopic,
			ClientID:         cfg.KafkaClientID,
			SecurityProtocol: cfg.KafkaSecurityProtocol,
			SASLMechanism:    cfg.KafkaSASLMechanism,
			SASLUsername:     cfg.KafkaSASLUsername,
			SASLPassword:     cfg.KafkaSASLPassword,
		}
	case config.BusRabbitMQ:
		return &rabbitmq.Config{
			URL:   cfg.RabbitMQURL,
			Queue: cfg.RabbitMQQueue,
		}
	case config.BusRedis:
		db, _ := strconv.Atoi(cfg.RedisDB)
		poolSize, _ := strconv.Atoi(cfg.RedisPoolSize)
		return &redisbroker.Config{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       db,
			PoolSize: poolSize,
			Stream:   cfg.RedisStream,
		}
	default:
		return nil
	}
}
