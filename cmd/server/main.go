package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/wekeepgrowing/mollie-gateway/internal/config"
	"github.com/wekeepgrowing/mollie-gateway/internal/gateway"
	httpServer "github.com/wekeepgrowing/mollie-gateway/internal/infrastructure/http"
	"github.com/wekeepgrowing/mollie-gateway/internal/infrastructure/provider"
	"go.uber.org/zap"
)

func main() {
	printConfig := flag.Bool("print-config", false, "print the effective configuration (secrets masked) and exit")
	envFile := flag.String("env-file", ".env", "dotenv file to load before reading configuration")
	flag.Parse()

	// Load .env (missing file is fine)
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load %s: %v", *envFile, err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *printConfig {
		out, err := cfg.YAML()
		if err != nil {
			log.Fatalf("Failed to render config: %v", err)
		}
		os.Stdout.Write(out)
		return
	}

	// Initialize logger
	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Mollie.APIKey == "" {
		logger.Warn("Mollie API key is not configured; every operation will fail until MOLLIE_API_KEY is set")
	}

	factory := provider.NewFactory(cfg.Mollie, cfg.Service.Version, logger)
	gw := gateway.New(factory, logger)
	httpSrv := httpServer.NewServer(cfg, logger, gw)

	go func() {
		if err := httpSrv.Start(); err != nil {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	logger.Info("Mollie gateway started",
		zap.String("address", cfg.Server.Address()),
		zap.String("mollie_base_url", cfg.Mollie.BaseURL),
		zap.String("environment", cfg.Service.Environment))

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	logger.Info("Server shut down successfully")
}
