package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/config"
	"github.com/wyllersu/lifecyle-asset-insight/internal/infra"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"
	"github.com/wyllersu/lifecyle-asset-insight/internal/router"
	"github.com/wyllersu/lifecyle-asset-insight/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := infra.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	store, err := infra.NewDocumentStore(cfg.DocumentStoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init document storage")
	}

	llm := infra.NewLLMClient(cfg.LLMAPIURL, cfg.LLMAPIKey, cfg.LLMModel)
	llmCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	// Background workers and the notification cron are wired here (composition
	// root) so they share infrastructure with the HTTP layer.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)
	worker.StartWorkerPool(ctx, rdb, worker.Handlers{
		Email: worker.NewEmailWorker(mailer),
	}, cfg.WorkerPoolSize)

	worker.StartNotificationCron(ctx, worker.NotificationCronConfig{
		MaintenanceRepo:  repository.NewMaintenanceRepository(db),
		PartRepo:         repository.NewSparePartRepository(db),
		ProfileRepo:      repository.NewProfileRepository(db),
		NotificationRepo: repository.NewNotificationRepository(db),
		Dispatcher:       dispatcher,
		DueDays:          cfg.MaintenanceDueDays,
	})

	r := router.New(cfg, db, rdb, llm, llmCB, store)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("AssetFlow backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
