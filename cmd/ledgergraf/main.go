package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cwj5/ledgergraf/internal/config"
	"github.com/cwj5/ledgergraf/internal/datasource"
	"github.com/cwj5/ledgergraf/internal/ledger"
)

func main() {
	// Optional .env file; the environment itself always wins.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	runner := ledger.NewRunner(cfg.LedgerBinary, cfg.CommandTimeout)
	client := ledger.NewClient(cfg.LedgerFile, runner, ledger.Options{
		Logger:         logger.With("component", "ledger"),
		StrictRegister: cfg.StrictAmounts,
	})

	svc := datasource.NewService(client,
		datasource.Mode(cfg.QueryMode),
		cfg.SearchSuffixKinds,
		logger.With("component", "datasource"))

	gin.SetMode(gin.ReleaseMode)
	router := datasource.NewRouter(svc)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
		// Write timeout must outlast a full batch of engine invocations.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.CommandTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting ledgergraf",
		"port", cfg.Port,
		"ledger_file", cfg.LedgerFile,
		"query_mode", cfg.QueryMode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
