package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/telemetryd/internal/agent"
	"codeberg.org/mutker/telemetryd/internal/component"
	"codeberg.org/mutker/telemetryd/internal/config"
	"codeberg.org/mutker/telemetryd/internal/logger"
	"codeberg.org/mutker/telemetryd/internal/pid"
	"codeberg.org/mutker/telemetryd/internal/publisher"
	"codeberg.org/mutker/telemetryd/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel, logger.IsService()); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.Debug().Msg("Config loaded")

	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to write PID file")
	}
	defer pid.Remove()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := run(ctx, cfg); err != nil {
		logger.Error().Err(err).Msg("error in main loop")
	}
	logger.Info().Msg("Exiting...")
}

func run(ctx context.Context, cfg *config.Config) error {
	hostCPU, err := component.NewHostCPU()
	if err != nil {
		return err
	}

	// The GPU is optional; a host without one still reports CPU telemetry
	var gpu component.ThermalSensor
	if nvidiaGPU, err := component.NewNvidiaGPU(); err != nil {
		logger.Debug().Err(err).Msg("No NVIDIA GPU available")
	} else {
		gpu = nvidiaGPU
		defer func() {
			if err := nvidiaGPU.Shutdown(); err != nil {
				logger.Error().Err(err).Msg("failed to shutdown GPU")
			}
		}()
	}

	storeCfg := telemetry.DefaultConfig()
	storeCfg.Enabled = cfg.Telemetry
	if cfg.TelemetryDB != "" {
		storeCfg.DBPath = cfg.TelemetryDB
	}

	recorder, err := telemetry.NewRecorder(storeCfg, logger.Default())
	if err != nil {
		return err
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close message store")
		}
	}()

	pub, err := publisher.New(cfg.NATSURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := pub.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close publisher")
		}
	}()

	collector, err := agent.New(cfg, hostCPU, gpu, telemetry.NewGenerator(), recorder, pub)
	if err != nil {
		return err
	}

	return collector.Run(ctx)
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
