package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/asia-jinzai-support/orientation-consent/internal/config"
	"github.com/asia-jinzai-support/orientation-consent/internal/logger"
	"github.com/asia-jinzai-support/orientation-consent/internal/server"
	"github.com/asia-jinzai-support/orientation-consent/internal/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "orientation-server",
		Short: "Living orientation consent and signature service",
		Long:  `orientation-server collects a worker's consent to the living orientation guidance in their own language and issues the signed confirmation form (参考様式第５－８号) as a PDF`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		log.Printf("failed to load configuration: %v", err.Error())
		os.Exit(1)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	appLogger.Info("Configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.String("BLOB_BASE_URL", cfg.BlobBaseURL),
		slog.String("FONT_PATH", cfg.FontPath),
		slog.Bool("BLOB_READ_WRITE_TOKEN_SET", cfg.BlobReadWriteToken != ""),
	)

	if cfg.BlobReadWriteToken == "" {
		appLogger.Warn("BLOB_READ_WRITE_TOKEN is not set - signature uploads will fail at request time")
	}

	appLogger.Info("Starting server", slog.String("version", version.Get().Version))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := server.NewServer(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := server.Start(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}
