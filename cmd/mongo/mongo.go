package mongoclient

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/gg-motors/cmd/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// New connects to MongoDB and verifies connectivity.
func New(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config provided")
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetAppName("gg-motors")

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("unable to ping mongodb: %w", err)
	}

	return client, nil
}

// Pinger reports database reachability for the health endpoint.
type Pinger struct {
	client *mongo.Client
}

func NewPinger(client *mongo.Client) *Pinger {
	return &Pinger{client: client}
}

func (p *Pinger) Ping(ctx context.Context) error {
	if p == nil || p.client == nil {
		return fmt.Errorf("mongodb client not initialized")
	}
	return p.client.Ping(ctx, readpref.Primary())
}
