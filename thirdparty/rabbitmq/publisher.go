package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/muhammadheryan/gg-motors/cmd/config"
	"github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName      = "ggmotors.events"
	ImageCleanupQueue = "ggmotors.image_cleanup"

	VehicleDeletedKey           = "vehicle.deleted"
	TransactionCreatedKey       = "transaction.created"
	TransactionStatusUpdatedKey = "transaction.status_updated"
)

type VehicleDeletedMessage struct {
	VehicleID string    `json:"vehicle_id"`
	SellerID  string    `json:"seller_id"`
	Images    []string  `json:"images"`
	DeletedAt time.Time `json:"deleted_at"`
}

type TransactionMessage struct {
	TransactionID string    `json:"transaction_id"`
	BuyerID       string    `json:"buyer_id"`
	SellerID      string    `json:"seller_id"`
	VehicleID     string    `json:"vehicle_id"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher emits marketplace domain events.
type EventPublisher interface {
	PublishVehicleDeleted(ctx context.Context, msg VehicleDeletedMessage) error
	PublishTransaction(ctx context.Context, routingKey string, msg TransactionMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

func dial(cfg config.RabbitMQConfig) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		ExchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-delete
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		ImageCleanupQueue, // name
		true,              // durable
		false,             // auto-delete
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		ImageCleanupQueue, // queue name
		VehicleDeletedKey, // routing key
		ExchangeName,      // exchange
		false,             // no-wait
		nil,               // arguments
	)
}

func NewPublisher(cfg config.RabbitMQConfig) (*Publisher, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishVehicleDeleted(ctx context.Context, msg VehicleDeletedMessage) error {
	return p.publish(ctx, VehicleDeletedKey, msg)
}

func (p *Publisher) PublishTransaction(ctx context.Context, routingKey string, msg TransactionMessage) error {
	return p.publish(ctx, routingKey, msg)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(
		ctx,
		ExchangeName, // exchange
		routingKey,   // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
