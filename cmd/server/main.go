package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/kapu/insta-insight-go/internal/app"
	"github.com/kapu/insta-insight-go/internal/config"
	"github.com/kapu/insta-insight-go/internal/util"
	"github.com/kapu/insta-insight-go/internal/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Instagram Profile API starting...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Logging.Level),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		os.Exit(1)
	}

	fiberApp := fiber.New(fiber.Config{
		AppName:               "insta-insight",
		DisableStartupMessage: true,
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(cors.New())
	fiberApp.Use(web.RequestLogger(logger))

	web.RegisterRoutes(fiberApp, container.Handlers)

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := fiberApp.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			errCh <- err
		}
	}()

	logger.Info("Server started, waiting for signals...")

	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("Server error", zap.Error(err))
	}

	logger.Info("Shutting down gracefully...")
	if err := fiberApp.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("Shutdown did not complete cleanly", zap.Error(err))
	}
	logger.Info("Shutdown complete")
}
