package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"muse/internal/logging"
	"muse/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logging.New(logging.Config{}).Fatal(err, "invalid configuration")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logging.SetGlobalLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := openDatabase(ctx, cfg.MongoURL)
	if err != nil {
		logger.Fatal(err, "unable to connect to database")
	}

	dataStore := store.New(client.Database(cfg.DBName))
	videoClient := newVideoClient(ctx, cfg, logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: newHTTPHandler(cfg, dataStore, videoClient),
	}

	go func() {
		logger.Info(fmt.Sprintf("API listening on %s", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err, "server error")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, "server shutdown")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error(err, "database disconnect")
	}
}
