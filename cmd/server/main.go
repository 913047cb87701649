package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"genrelay-go/internal/config"
	"genrelay-go/internal/constants"
	"genrelay-go/internal/logging"
	tracing "genrelay-go/internal/monitoring/tracing"
	srv "genrelay-go/internal/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	debug := flag.Bool("debug", false, "Enable debug mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	if *debug {
		cfg.Debug = true
	}

	if err := logging.Setup(cfg); err != nil {
		log.WithError(err).Fatal("failed to configure logging")
	}

	traceShutdown, err := tracing.Init(context.Background())
	if err != nil {
		log.WithError(err).Warn("failed to initialize tracing")
	}
	if traceShutdown != nil {
		defer func() {
			if err := traceShutdown(context.Background()); err != nil {
				log.WithError(err).Warn("failed to shutdown tracing")
			}
		}()
	}

	log.Infof("Starting genrelay-go %s (config: %s)", constants.Version, *configPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Hot reload covers logging-related settings only; the upstream
	// allow-list is fixed for the process lifetime.
	config.Watch(ctx, *configPath, func(next *config.Config) {
		if *debug {
			next.Debug = true
		}
		if err := logging.Setup(next); err != nil {
			log.WithError(err).Warn("failed to re-apply logging configuration")
			return
		}
		log.Info("logging configuration reloaded")
	})

	engine := srv.Build(cfg)
	httpSrv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Port), Handler: engine}

	go func() {
		log.Infof("API listening on :%d", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("Shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancelShutdown()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("graceful shutdown failed")
	}

	time.Sleep(constants.ServerGracefulWait)
	log.Info("Server stopped")
}
