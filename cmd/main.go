package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/modsagraphy/universa/internal/configuration"
	"github.com/modsagraphy/universa/internal/logging"
	"github.com/modsagraphy/universa/internal/metrics"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	cfg, err := configuration.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return
	}

	logging.Init(cfg.Application.LogLevel)
	slog.Info("Starting node...")

	services, err := NewServices(cfg)
	if err != nil {
		slog.Error("Failed to assemble services", "error", err)
		return
	}

	if _, err := services.Transport.StartServer(); err != nil {
		slog.Error("Failed to start transport server", "error", err)
		services.Shutdown()
		return
	}

	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewServer(net.JoinHostPort(cfg.Metrics.Address, cfg.Metrics.Port))
		metricsServer.Start()
	}

	slog.Info("Node Ready", "node", cfg.Node.NodeId, "ledger_records", services.Ledger.Len())
	<-ctx.Done()

	slog.Info("Shutting down node...")
	services.Transport.Stop()
	if metricsServer != nil {
		metricsServer.Stop()
	}
	services.Shutdown()
}
