package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"labdesk/internal/checkout"
	checkouthandler "labdesk/internal/checkout/handler"
	checkoutmetrics "labdesk/internal/checkout/metrics"
	httptransport "labdesk/internal/http"
	"labdesk/internal/platform/config"
	"labdesk/internal/platform/httpserver"
	"labdesk/internal/platform/logger"
	platformredis "labdesk/internal/platform/redis"
	"labdesk/internal/ratelimit"
	"labdesk/internal/registry"
	"labdesk/pkg/platform/audit"
	kafkastore "labdesk/pkg/platform/audit/store/kafka"
	memorystore "labdesk/pkg/platform/audit/store/memory"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Registry: in-memory by design; records are registered before any
	// checkout is served.
	store := registry.NewMemoryStore()
	if cfg.SeedDemoData {
		if err := registry.SeedDemoData(ctx, store); err != nil {
			log.Error("seed registry", "error", err)
			os.Exit(1)
		}
		log.Info("registry seeded with demo data")
	}

	// Audit sink: Kafka when brokers are configured, in-memory otherwise.
	var sink audit.Store = memorystore.New()
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := kafkastore.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("connect kafka audit sink", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
		log.Info("audit events routed to kafka", "topic", cfg.Kafka.Topic)
	}

	// The worker keeps audit emission off the checkout path; the publisher
	// stamps defaults and the worker drains into the sink.
	worker := audit.NewWorker(sink, cfg.AuditBuffer, log)
	publisher := audit.NewPublisher(worker, audit.WithLogger(log))

	service := checkout.NewService(store, publisher, log, checkoutmetrics.New())
	handler := checkouthandler.New(service, log)

	// Rate limiter: Redis-backed when configured, in-memory otherwise.
	var limiterStore ratelimit.Store = ratelimit.NewMemoryStore()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		limiterStore = ratelimit.NewRedisStore(redisClient.Client)
		log.Info("rate limiting backed by redis")
	}
	limiter := ratelimit.NewService(limiterStore, cfg.RateLimit.Limit, cfg.RateLimit.Window)

	router := httptransport.NewRouter(handler, ratelimit.NewMiddleware(limiter, log))
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := worker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		log.Info("starting labdesk", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
