package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pin-genius/cmd/api/handlers"
	"pin-genius/cmd/api/httpclient"
	"pin-genius/cmd/api/router"
	"pin-genius/config"
	"pin-genius/db"
	"pin-genius/eventbus"
	"pin-genius/generator"
	"pin-genius/pipeline"
	"pin-genius/quota"
	"pin-genius/repositories"
)

// @title           Pin Genius API
// @version         1.0
// @description     Generates Pinterest pin copy, a design blueprint and a pin image with Gemini
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.GeminiAPIKey() == "" {
		config.Logger.Warn("GEMINI_API_KEY is not set; generation requests will fail until it is provided")
	}

	// AI 호출 로그 저장소 (선택)
	var recorder generator.AILogRecorder
	var aiLogs handlers.AILogFinder
	switch err := db.Init(ctx, cfg.Mongo); {
	case errors.Is(err, db.ErrNotConfigured):
		config.Logger.Info("mongo.uri is empty; ai call logs are not stored")
	case err != nil:
		config.Logger.Errorf("failed to connect to MongoDB: %v", err)
		os.Exit(1)
	default:
		repo := repositories.NewAILogRepository(db.Database())
		recorder = repo
		aiLogs = repo
		defer func() {
			if err := db.Close(context.Background()); err != nil {
				config.Logger.Warnf("failed to disconnect MongoDB: %v", err)
			}
		}()
	}

	// pin.generated 이벤트 발행 (선택)
	topic := eventbus.NewTopic(cfg.Kafka.Topic)
	var bus eventbus.EventBus = eventbus.NoopEventBus{}
	if brokers := cfg.Kafka.BootstrapServers; brokers != "" {
		if err := eventbus.EnsureTopics(ctx, brokers, topic, 1); err != nil {
			config.Logger.Warnf("failed to ensure kafka topics: %v", err)
		}
		kafkaBus, err := eventbus.NewKafkaEventBus(brokers)
		if err != nil {
			config.Logger.Errorf("failed to create kafka producer: %v", err)
			os.Exit(1)
		}
		bus = kafkaBus
	} else {
		config.Logger.Info("kafka.bootstrap_servers is empty; pin.generated events are dropped")
	}
	defer bus.Close()

	newClient := generator.NewGenAIClientFactory(httpclient.New(httpclient.Config{}))
	session := pipeline.NewSession(
		generator.NewTextGenerator(newClient, recorder, cfg.Gemini),
		generator.NewImageGenerator(newClient, recorder, cfg.Gemini),
		pipeline.WithQuota(quota.NewGenerationQuotaLimiterFromConfig(cfg)),
		pipeline.WithPublisher(pipeline.NewEventPublisher(bus, topic)),
	)

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: router.New(router.Deps{
			Pins:           session,
			AILogs:         aiLogs,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.Infof("pin-genius api listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Errorf("http server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	config.Logger.Info("shutting down pin-genius api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Errorf("graceful shutdown failed: %v", err)
	}
}
