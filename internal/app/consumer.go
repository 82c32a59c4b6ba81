package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-leave/internal/config"
	"go-leave/internal/events"
	"go-leave/internal/leavebalance"
	"go-leave/internal/membership"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/messaging/kafka/consumer"
	"go-leave/internal/rbac"
	"go-leave/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var errKafkaBrokerRequired = errors.New("KAFKA_BROKER is required")

// RunConsumer seeds the configured initial balances for every new membership.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, cfg.IsProduction())
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return errKafkaBrokerRequired
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis, 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	rbacService, err := rbac.NewDefaultService(logger)
	if err != nil {
		return err
	}
	access := membership.NewAccess(membership.NewRepository(gormDB), rbacService, logger)
	balanceService := leavebalance.NewService(
		gormDB,
		leavebalance.NewRepository(gormDB),
		access,
		kafka.NewOutboxRepository(gormDB),
		redisClient,
		logger,
	)

	allocations := consumer.Allocations(cfg.Leave.InitialAllocations)
	if len(allocations) == 0 {
		logger.Warn("no initial allocations configured, memberships will start empty")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.MembershipTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMembershipCreated(ctx, reader, balanceService, allocations, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
