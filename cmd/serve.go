package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bincatalog/internal/api"
	"bincatalog/internal/api/handler/v1handler"
	"bincatalog/internal/catalog"
	"bincatalog/internal/config"
	"bincatalog/internal/worker"
	"bincatalog/pkg/events"
	"bincatalog/pkg/logger"
	"bincatalog/pkg/rulecache"
)

func setupServer(ctx context.Context, cfg *config.Config, cat catalog.Catalog) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Catalog: cat},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// getRuleCache returns the Redis backed rule cache when enabled, and the no-op
// cache otherwise.
func getRuleCache(ctx context.Context, cfg *config.Config) (rulecache.Cache, func()) {
	if !cfg.Redis.Enabled {
		logger.Info(ctx, "rule cache disabled")

		return rulecache.Nop{}, func() {}
	}

	client, err := rulecache.NewClient(ctx, rulecache.ClientOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create redis client", zap.Error(err))
	}

	return rulecache.New(client, rulecache.Options{TTL: cfg.Redis.TTL}), closeRedis(ctx, client)
}

func closeRedis(ctx context.Context, client *redis.Client) func() {
	return func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

// getPublisher returns the Kafka publisher when enabled, and the no-op
// publisher otherwise.
func getPublisher(ctx context.Context, cfg *config.Config) events.Publisher {
	if !cfg.Kafka.Enabled {
		logger.Info(ctx, "change events disabled")

		return events.Nop{}
	}

	publisher, err := events.NewKafka(events.KafkaOptions{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          cfg.Kafka.Topic,
		ClientID:       cfg.Kafka.ClientID,
		ProduceTimeout: cfg.Kafka.ProduceTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create kafka publisher", zap.Error(err))
	}

	return publisher
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			rules, closeRules := getRuleCache(ctx, cfg)
			defer closeRules()

			publisher := getPublisher(ctx, cfg)
			defer publisher.Close()

			riverClient, err := worker.Start(ctx, strg.Pool, worker.Options{
				MaxWorkers: cfg.Worker.MaxWorkers,
				Rules:      rules,
				Publisher:  publisher,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, catalog.New(strg, rules, catalog.NewOptions(cfg)))

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
