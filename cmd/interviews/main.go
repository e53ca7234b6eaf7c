package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikmy/interviews/internal/api"
	"github.com/nikmy/interviews/internal/interviews"
	"github.com/nikmy/interviews/internal/repo"
	"github.com/nikmy/interviews/pkg/errors"
	"github.com/nikmy/interviews/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		stdlog.Panic(err)
	}

	cfg, err := loadConfig(f)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	store, err := repo.NewMongoClient(ctx, log, cfg.Mongo)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init store"))
	}

	service := interviews.New(log, cfg.Interviews, store.Interviews())
	server := api.NewServer(cfg.API, log, service, store)

	err = server.Serve(ctx)
	if err != nil {
		log.Error(err)
	}

	stdlog.Println("Graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error(errors.WrapFail(err, "shutdown"))
	}

	stdlog.Println("Shutdown complete")
}
