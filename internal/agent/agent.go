package agent

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/mutker/telemetryd/internal/component"
	"codeberg.org/mutker/telemetryd/internal/config"
	"codeberg.org/mutker/telemetryd/internal/errors"
	"codeberg.org/mutker/telemetryd/internal/logger"
	"codeberg.org/mutker/telemetryd/internal/publisher"
	"codeberg.org/mutker/telemetryd/internal/telemetry"
)

// Agent drives the collection loop: poll components, build a validated
// message per tick, hand it to the sinks. Sink failures are logged and the
// loop keeps running; a telemetry agent must survive a flaky broker or a
// full disk.
type Agent struct {
	cfg       *config.Config
	cpu       component.CPU
	gpu       component.ThermalSensor
	identity  telemetry.Identity
	recorder  telemetry.Recorder
	publisher publisher.Publisher
	subject   string
}

// New wires an agent. gpu may be nil when no thermal sensor beyond the CPU
// is present; everything else is required.
func New(cfg *config.Config, cpu component.CPU, gpu component.ThermalSensor,
	identity telemetry.Identity, recorder telemetry.Recorder, pub publisher.Publisher,
) (*Agent, error) {
	errFactory := errors.New()

	if cfg == nil || cpu == nil || identity == nil || recorder == nil || pub == nil {
		return nil, errFactory.New(errors.ErrInitCollector)
	}

	return &Agent{
		cfg:       cfg,
		cpu:       cpu,
		gpu:       gpu,
		identity:  identity,
		recorder:  recorder,
		publisher: pub,
		subject:   fmt.Sprintf("%s.%s", cfg.NATSSubject, cfg.Hostname),
	}, nil
}

// Run collects until the context is cancelled
func (a *Agent) Run(ctx context.Context) error {
	if a.cfg.Interval <= 0 {
		return errors.New().WithData(errors.ErrInvalidInterval, a.cfg.Interval)
	}

	interval := time.Duration(a.cfg.Interval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info().
		Str("component", a.cpu.Name()).
		Str("kind", a.cpu.Kind()).
		Int("interval", a.cfg.Interval).
		Msg("Collection loop started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			a.collectOnce(ctx)
		}
	}
}

// collectOnce performs a single tick. Readings whose value is the
// unavailable sentinel never reach a metric constructor; they simply leave
// their entry out of the payload.
func (a *Agent) collectOnce(ctx context.Context) {
	payload := a.buildPayload()
	if payload.Empty() {
		logger.Debug().Msg("No metrics available this tick")
		return
	}

	msg, err := telemetry.NewMessage(a.identity, telemetry.SchemaVersion,
		a.cfg.ServiceName, a.cfg.Hostname, payload)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build message")
		return
	}

	data, err := telemetry.Encode(msg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode message")
		return
	}

	if err := a.publisher.Publish(ctx, a.subject, data); err != nil {
		logger.Error().Err(err).Str("subject", a.subject).Msg("Failed to publish message")
	}

	if err := a.recorder.Record(ctx, msg); err != nil {
		logger.Error().Err(err).Msg("Failed to record message")
	}

	logger.Debug().Str("message_id", msg.MessageID).Msg("Collected telemetry")
}

func (a *Agent) buildPayload() telemetry.Payload {
	var payload telemetry.Payload

	if usage := a.cpu.Usage(); component.UsageAvailable(usage) {
		load := 0.0
		if reporter, ok := a.cpu.(component.LoadReporter); ok {
			if avg := reporter.LoadAverage1m(); avg >= 0 {
				load = avg
			}
		}

		cpuMetrics, err := telemetry.NewCpuMetrics(usage, a.cpu.NumCores(), load)
		if err != nil {
			logger.Error().Err(err).Msg("CPU reading rejected")
		} else {
			payload.Cpu = &cpuMetrics
		}
	} else {
		logger.Debug().Str("component", a.cpu.Name()).Msg("CPU usage unavailable, skipping metric this tick")
	}

	if a.gpu != nil {
		if temp := a.gpu.Temperature(); component.TemperatureAvailable(temp) {
			gpuMetrics, err := telemetry.NewGpuMetrics(temp)
			if err != nil {
				logger.Error().Err(err).Msg("GPU reading rejected")
			} else {
				payload.Gpu = &gpuMetrics
			}
		} else {
			logger.Debug().Str("component", a.gpu.Name()).Msg("GPU temperature unavailable, skipping metric this tick")
		}
	}

	return payload
}
