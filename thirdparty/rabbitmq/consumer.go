package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/muhammadheryan/gg-motors/cmd/config"
	"github.com/muhammadheryan/gg-motors/repository/image"
	"github.com/muhammadheryan/gg-motors/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ImageDeleter is the part of the image repository the cleanup worker needs.
type ImageDeleter interface {
	Delete(ctx context.Context, name string) error
}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	images  ImageDeleter
}

func NewConsumer(cfg config.RabbitMQConfig, images ImageDeleter) (*Consumer, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:    conn,
		channel: channel,
		images:  images,
	}, nil
}

// Run consumes vehicle-deleted events until ctx is done or the channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.channel.Qos(10, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		ImageCleanupQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("rabbitmq delivery channel closed")
			}

			if err := HandleVehicleDeleted(ctx, c.images, msg.Body); err != nil {
				logger.Error("[Consumer] err HandleVehicleDeleted",
					zap.String("error", err.Error()),
					zap.Bool("redelivered", msg.Redelivered))
				// requeue once, then drop
				_ = msg.Nack(false, !msg.Redelivered)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}

// HandleVehicleDeleted removes every stored image referenced by the event.
// Malformed bodies are logged and swallowed so they are not redelivered.
func HandleVehicleDeleted(ctx context.Context, images ImageDeleter, body []byte) error {
	var msg VehicleDeletedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		logger.Warn("[Consumer] discard malformed message", zap.String("error", err.Error()))
		return nil
	}

	var errs []error
	removed := 0
	for _, url := range msg.Images {
		name, ok := image.NameFromURL(url)
		if !ok {
			continue
		}
		if err := images.Delete(ctx, name); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", name, err))
			continue
		}
		removed++
	}

	logger.Info("[Consumer] vehicle images removed",
		zap.String("vehicle_id", msg.VehicleID),
		zap.Int("removed", removed),
		zap.Int("failed", len(errs)))

	return errors.Join(errs...)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
