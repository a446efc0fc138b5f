package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	trxapp "github.com/muhammadheryan/gg-motors/application/transaction"
	userapp "github.com/muhammadheryan/gg-motors/application/user"
	vehicleapp "github.com/muhammadheryan/gg-motors/application/vehicle"
	"github.com/muhammadheryan/gg-motors/cmd/config"
	mongoclient "github.com/muhammadheryan/gg-motors/cmd/mongo"
	redisclient "github.com/muhammadheryan/gg-motors/cmd/redis"
	imageRepo "github.com/muhammadheryan/gg-motors/repository/image"
	redisRepo "github.com/muhammadheryan/gg-motors/repository/redis"
	trxRepo "github.com/muhammadheryan/gg-motors/repository/transaction"
	userRepo "github.com/muhammadheryan/gg-motors/repository/user"
	vehicleRepo "github.com/muhammadheryan/gg-motors/repository/vehicle"
	"github.com/muhammadheryan/gg-motors/thirdparty/rabbitmq"
	"github.com/muhammadheryan/gg-motors/transport"
	"github.com/muhammadheryan/gg-motors/utils/logger"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cfg.Auth.Validate(); err != nil {
		logger.Fatal("err invalid auth config", zap.Error(err))
	}

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	client, err := mongoclient.New(ctx, cfg)
	if err != nil {
		logger.Error("err connect mongo", zap.Error(err))
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	db := client.Database(cfg.Mongo.Database)

	if err := ensureIndexes(ctx, db); err != nil {
		logger.Error("err ensure indexes", zap.Error(err))
		return err
	}

	// Initialize Redis client
	if cfg.Redis.Enabled() {
		if err := redisclient.New(cfg); err != nil {
			logger.Error("err connect redis", zap.Error(err))
			return err
		}
		defer func() {
			_ = redisclient.Close()
		}()
	} else {
		logger.Warn("redis not configured, login throttling disabled")
	}

	images, err := newImageRepository(ctx, cfg)
	if err != nil {
		logger.Error("err init image storage", zap.Error(err))
		return err
	}

	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Enabled() {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
		if err != nil {
			logger.Error("err connect rabbitmq", zap.Error(err))
			return err
		}
		defer func() {
			_ = p.Close()
		}()
		publisher = p
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	VehicleRepo := vehicleRepo.NewVehicleRepository(db)
	TrxRepo := trxRepo.NewTransactionRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	VehicleApp := vehicleapp.NewVehicleApp(VehicleRepo, images, publisher)
	TrxApp := trxapp.NewTransactionApp(TrxRepo, publisher)

	httpTransport := transport.NewTransport(transport.Dependencies{
		Config:         cfg,
		UserApp:        UserApp,
		VehicleApp:     VehicleApp,
		TransactionApp: TrxApp,
		Images:         images,
		DB:             mongoclient.NewPinger(client),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("failed server", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err server shutdown", zap.Error(err))
		return err
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := userRepo.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("users: %w", err)
	}
	if err := vehicleRepo.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("vehicles: %w", err)
	}
	if err := trxRepo.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("transactions: %w", err)
	}
	return nil
}

func newImageRepository(ctx context.Context, cfg *config.Config) (imageRepo.ImageRepository, error) {
	switch cfg.Upload.Backend {
	case config.UploadBackendMinio:
		repo, err := imageRepo.NewMinioRepository(cfg.Minio)
		if err != nil {
			return nil, err
		}
		if err := repo.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		logger.Info("image storage ready", zap.String("backend", config.UploadBackendMinio), zap.String("bucket", cfg.Minio.Bucket))
		return repo, nil
	case config.UploadBackendLocal, "":
		repo, err := imageRepo.NewLocalRepository(cfg.Upload.Dir)
		if err != nil {
			return nil, err
		}
		logger.Info("image storage ready", zap.String("backend", config.UploadBackendLocal), zap.String("dir", cfg.Upload.Dir))
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Upload.Backend)
	}
}
