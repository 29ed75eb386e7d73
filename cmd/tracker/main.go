package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camuig/stock-tracker/internal/api"
	"github.com/camuig/stock-tracker/internal/config"
	"github.com/camuig/stock-tracker/internal/logger"
	"github.com/camuig/stock-tracker/internal/stock"
	"github.com/camuig/stock-tracker/internal/storage"
	"github.com/camuig/stock-tracker/internal/telegram"
	"github.com/camuig/stock-tracker/internal/watcher"
	"github.com/camuig/stock-tracker/internal/web"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Init logger
	log := logger.New(cfg.Logging.Level)
	log.Info("starting stock-tracker", "exchange", cfg.API.Exchange, "interval", cfg.PollingInterval().String())

	// Init database
	db, err := storage.NewDatabase(cfg.Storage.Path)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}
	journal := storage.NewRepository(db)

	// Context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init services
	client := api.NewClient(cfg.API.Token,
		api.WithBaseURL(cfg.API.BaseURL),
		api.WithExchange(cfg.API.Exchange),
		api.WithHTTPClient(&http.Client{Timeout: cfg.APITimeout()}),
		api.WithHeader(http.Header{"User-Agent": []string{cfg.API.UserAgent}}),
	)
	repo := stock.NewRepository(client, log, stock.WithInterval(cfg.PollingInterval()))
	notifier := telegram.NewNotifier(cfg, log)
	w := watcher.NewWatcher(repo, journal, notifier, watcher.Config{
		Tickers:          cfg.Watch.Tickers,
		MaxTickers:       cfg.MaxTickers(),
		ResubscribeDelay: cfg.ResubscribeDelay(),
	}, log)

	// Start watcher in goroutine
	watchDone := make(chan error, 1)
	go func() {
		watchDone <- w.Run(ctx)
	}()

	// Start web server in goroutine
	var webServer *web.Server
	if cfg.Web.Enabled {
		webServer = web.NewServer(journal, cfg, log)
		go func() {
			if err := webServer.Start(); err != nil {
				log.Error("web server error", "error", err)
			}
		}()
	}

	notifier.NotifyStatus("📈 stock-tracker started")

	// Wait for shutdown signal or a watcher that gave up
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	exitCode := 0
	watcherStopped := false
	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", "signal", sig.String())
	case err := <-watchDone:
		watcherStopped = true
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("watcher stopped", "error", err)
			notifier.NotifyError("watcher", err)
			exitCode = 1
		}
	}

	// Graceful shutdown
	cancel() // stop watcher

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if webServer != nil {
		if err := webServer.Shutdown(shutdownCtx); err != nil {
			log.Error("web server shutdown error", "error", err)
		}
	}

	// The watcher journals until it returns; close the database after that.
	if !watcherStopped && !waitForWatcher(shutdownCtx, watchDone) {
		log.Warn("watcher did not stop before shutdown timeout")
	}

	if err := storage.Close(db); err != nil {
		log.Error("database close error", "error", err)
	}

	notifier.NotifyStatus("🛑 stock-tracker stopped")
	log.Info("stock-tracker stopped")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// waitForWatcher reports whether the watcher returned before ctx expired.
func waitForWatcher(ctx context.Context, done <-chan error) bool {
	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}
