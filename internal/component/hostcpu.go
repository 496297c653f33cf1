package component

import (
	"strings"

	"codeberg.org/mutker/telemetryd/internal/errors"
	"codeberg.org/mutker/telemetryd/internal/logger"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
)

// HostCPU exposes the agent's own processor through the CPU capability set,
// backed by gopsutil instead of a register probe.
type HostCPU struct {
	descriptor Descriptor
	clockMHz   int
	cores      int
}

// NewHostCPU discovers the local processor. Model name and clock speed come
// from the first CPU info entry; core count is the logical count.
func NewHostCPU() (*HostCPU, error) {
	errFactory := errors.New()

	cores, err := cpu.Counts(true)
	if err != nil {
		return nil, errFactory.Wrap(ErrInitFailed, err)
	}
	if cores <= 0 {
		return nil, errFactory.WithData(ErrInvalidCoreCount, cores)
	}

	name := "host-cpu"
	clockMHz := 1
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		if infos[0].ModelName != "" {
			name = infos[0].ModelName
		}
		if infos[0].Mhz > 0 {
			clockMHz = int(infos[0].Mhz)
		}
	} else if err != nil {
		logger.Warn().Err(err).Msg("Failed to read CPU info, using fallback identity")
	}

	descriptor, err := NewDescriptor(name, KindCPU)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("model", name).
		Int("cores", cores).
		Int("clock_mhz", clockMHz).
		Msg("Detected host CPU")

	return &HostCPU{
		descriptor: descriptor,
		clockMHz:   clockMHz,
		cores:      cores,
	}, nil
}

func (c *HostCPU) Name() string {
	return c.descriptor.Name()
}

func (c *HostCPU) Kind() string {
	return c.descriptor.Kind()
}

func (c *HostCPU) MaxClockSpeedMHz() int {
	return c.clockMHz
}

func (c *HostCPU) NumCores() int {
	return c.cores
}

// Temperature scans the host sensors for a CPU package reading. Returns
// TemperatureUnavailable when no CPU sensor is exposed.
func (c *HostCPU) Temperature() float64 {
	sensors, err := host.SensorsTemperatures()
	if err != nil {
		logger.Debug().Err(err).Msg("Sensor read failed")
		return TemperatureUnavailable
	}

	for _, sensor := range sensors {
		key := strings.ToLower(sensor.SensorKey)
		if strings.Contains(key, "coretemp") || strings.Contains(key, "k10temp") ||
			strings.Contains(key, "cpu") {
			return sensor.Temperature
		}
	}

	return TemperatureUnavailable
}

// Usage reports CPU busy share as a delta since the previous call.
func (c *HostCPU) Usage() float64 {
	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		logger.Debug().Err(err).Msg("CPU usage read failed")
		return UsageUnavailable
	}

	return percents[0]
}

// LoadAverage1m reports the host 1-minute load average, negative when the
// platform does not expose one.
func (c *HostCPU) LoadAverage1m() float64 {
	avg, err := load.Avg()
	if err != nil {
		logger.Debug().Err(err).Msg("Load average read failed")
		return -1
	}

	return avg.Load1
}
