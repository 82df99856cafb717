package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/reshetovitsme/slack-translate-relay/internal/di"
	relayService "github.com/reshetovitsme/slack-translate-relay/internal/modules/relay/service"
	"github.com/reshetovitsme/slack-translate-relay/internal/shared/config"
	"github.com/reshetovitsme/slack-translate-relay/internal/shared/logging"
	"github.com/samber/do/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup(config.AppEnvProduction, "info")
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.AppEnv, cfg.LogLevel)

	injector := di.Setup(cfg)

	relay, err := do.Invoke[*relayService.Service](injector)
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	relay.Run(ctx)
}
