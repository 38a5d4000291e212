package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gabapcia/claimwatch/internal/claimview"
	"github.com/gabapcia/claimwatch/internal/config"
	"github.com/gabapcia/claimwatch/internal/handlers/cli"
	handlershttp "github.com/gabapcia/claimwatch/internal/handlers/http"
	"github.com/gabapcia/claimwatch/internal/infra/backend"
	"github.com/gabapcia/claimwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/claimwatch/internal/infra/messaging/rabbitmq"
	"github.com/gabapcia/claimwatch/internal/infra/storage/redis"
	"github.com/gabapcia/claimwatch/internal/jobwatch"
	"github.com/gabapcia/claimwatch/internal/pkg/logger"
	"github.com/gabapcia/claimwatch/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/claimwatch/internal/pkg/transport/http"
	"github.com/gabapcia/claimwatch/internal/pkg/transport/jsonrpc"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer shutdown(context.WithoutCancel(ctx))
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	httpClient := httptransport.NewClient(
		httptransport.WithTimeout(cfg.APITimeout),
		httptransport.WithRetryLogging(),
	)

	api := backend.NewClient(httpClient, cfg.APIRoot)

	networks := make(map[string]jobwatch.ReceiptSource)
	for name, endpoint := range cfg.Networks() {
		networks[name] = ethereum.NewClient(jsonrpc.NewClient(httpClient, endpoint))
	}

	jobOpts := []jobwatch.Option{
		jobwatch.WithPollInterval(cfg.PollInterval),
		jobwatch.WithSettleDelay(cfg.SettleDelay),
		jobwatch.WithBackoff(cfg.MaxBackoff),
		jobwatch.WithTimeout(cfg.WatchTimeout),
	}

	if cfg.RedisAddr != "" {
		store, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB,
			redis.WithSessionTTL(cfg.SessionTTL),
		)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer store.Close()

		jobOpts = append(jobOpts, jobwatch.WithSessionStorage(store))
	}

	if cfg.AMQPURL != "" {
		notifier, err := rabbitmq.NewNotifier(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return fmt.Errorf("connect rabbitmq: %w", err)
		}
		defer notifier.Close()

		jobOpts = append(jobOpts, jobwatch.WithOutcomeNotifier(notifier))
	}

	jobs := jobwatch.New(api, networks, cfg.DefaultNetwork, jobOpts...)
	claims := claimview.New(api, claimview.WithFollowInterval(cfg.ClaimPollInterval))

	gin.SetMode(gin.ReleaseMode)
	serve := func(ctx context.Context) error {
		return handlershttp.Serve(ctx, cfg.HTTPAddr, handlershttp.NewRouter(jobs, claims))
	}

	return cli.Run(ctx, jobs, claims, serve)
}
