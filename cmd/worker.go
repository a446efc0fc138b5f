package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/gg-motors/cmd/config"
	"github.com/muhammadheryan/gg-motors/thirdparty/rabbitmq"
	"github.com/muhammadheryan/gg-motors/utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consumes vehicle deletions and removes their images",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorker(cmd.Context())
	},
}

func runWorker(parent context.Context) error {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	if !cfg.RabbitMQ.Enabled() {
		return errors.New("RABBITMQ_HOST is required for the worker")
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	images, err := newImageRepository(ctx, cfg)
	if err != nil {
		logger.Error("err init image storage", zap.Error(err))
		return err
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ, images)
	if err != nil {
		logger.Error("err connect rabbitmq", zap.Error(err))
		return err
	}
	defer func() {
		_ = consumer.Close()
	}()

	logger.Info("image cleanup worker running", zap.String("queue", rabbitmq.ImageCleanupQueue))
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker stopped", zap.Error(err))
		return err
	}
	return nil
}
