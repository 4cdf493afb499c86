package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ltglabs/qextract/internal/api"
	"github.com/ltglabs/qextract/internal/config"
	"github.com/ltglabs/qextract/internal/engine"
	"github.com/ltglabs/qextract/internal/rules"
)

func main() {
	godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	// Rule configuration is fail-fast: a configured but broken rules
	// file must never be papered over at request time.
	rs := rules.Default()
	if cfg.RulesPath != "" {
		var err error
		rs, err = rules.Load(cfg.RulesPath)
		if err != nil {
			log.Error("invalid rules configuration", "path", cfg.RulesPath, "error", err)
			os.Exit(1)
		}
		log.Info("loaded rules", "path", cfg.RulesPath, "split_rules", len(rs.SplitRules))
	}

	eng := engine.New(rs)
	srv := api.NewServer(eng, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting qextract", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
