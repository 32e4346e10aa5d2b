// Package main wires the HTTP server for the extracurricular activities service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"mergington-activities/config"
	"mergington-activities/internal/entities"
	"mergington-activities/internal/events"
	"mergington-activities/internal/repository"
	"mergington-activities/internal/transport/http/server"
	handlers_fiber "mergington-activities/internal/transport/http/server/handlers-fiber"
	"mergington-activities/internal/usecase"
	"mergington-activities/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	repo, err := repository.New(ctx, cfg.Store.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "backend", cfg.Store.Backend, "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	pub := events.New(cfg.Kafka, log)
	defer func() {
		if err := pub.Close(); err != nil {
			log.Warnw("event publisher close error", "error", err)
		}
	}()

	uc := usecase.New(log, ctx, repo, pub, cfg.HTTP.RequestTimeout)

	if cfg.Store.Seed {
		n, err := uc.SeedCatalog(ctx, entities.SeedCatalog())
		if err != nil {
			log.Errorw("seed error", "error", err)
			return
		}
		log.Infow("seed finished", "inserted", n)
	}

	h := handlers_fiber.NewHandler(log, uc)
	serv := server.New(log, cfg.HTTP, h)

	go func() {
		log.Infow("http server listening", "addr", cfg.ServerAddr(), "backend", cfg.Store.Backend)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := serv.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout, "error", err)
	}
}
