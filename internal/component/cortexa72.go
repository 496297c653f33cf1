package component

import (
	"sync"
	"time"

	"codeberg.org/mutker/telemetryd/internal/errors"
	"codeberg.org/mutker/telemetryd/internal/logger"
)

const milliDegreesPerDegree = 1000.0

// CortexA72 exposes an ARM Cortex-A72 cluster through the CPU capability
// set. All register knowledge stays behind the injected probe; usage is
// estimated from cycle counter deltas against the rated clock.
type CortexA72 struct {
	descriptor Descriptor
	probe      RegisterProbe
	clockMHz   int
	cores      int

	mu         sync.Mutex
	lastCycles uint64
	lastSample time.Time
	hasSample  bool
}

// NewCortexA72 builds a Cortex-A72 component over the given probe. Clock
// speed and core count are hardware facts supplied at discovery time and
// validated here; missing live readings are not an error at this layer.
func NewCortexA72(probe RegisterProbe, clockMHz, cores int) (*CortexA72, error) {
	errFactory := errors.New()

	descriptor, err := NewDescriptor("ARM Cortex-A72", KindCPU)
	if err != nil {
		return nil, err
	}
	if clockMHz <= 0 {
		return nil, errFactory.WithData(ErrInvalidClockSpeed, clockMHz)
	}
	if cores <= 0 {
		return nil, errFactory.WithData(ErrInvalidCoreCount, cores)
	}

	c := &CortexA72{
		descriptor: descriptor,
		probe:      probe,
		clockMHz:   clockMHz,
		cores:      cores,
	}

	if midr, err := probe.ReadMIDR(); err == nil {
		logger.Debug().
			Uint64("midr", midr).
			Int("cores", cores).
			Int("clock_mhz", clockMHz).
			Msg("Detected CPU")
	} else {
		logger.Warn().Err(err).Msg("Failed to read CPU identification register")
	}

	return c, nil
}

func (c *CortexA72) Name() string {
	return c.descriptor.Name()
}

func (c *CortexA72) Kind() string {
	return c.descriptor.Kind()
}

func (c *CortexA72) MaxClockSpeedMHz() int {
	return c.clockMHz
}

func (c *CortexA72) NumCores() int {
	return c.cores
}

// Temperature reads the SoC thermal sensor. Returns TemperatureUnavailable
// when the probe cannot deliver a reading.
func (c *CortexA72) Temperature() float64 {
	raw, err := c.probe.ReadThermalSensor()
	if err != nil {
		logger.Debug().Err(err).Msg("Thermal sensor read failed")
		return TemperatureUnavailable
	}

	return float64(raw) / milliDegreesPerDegree
}

// Usage estimates busy share from the cycle counter: cycles retired since
// the previous call over the cycles the cluster could have retired at its
// rated clock. The first call establishes the baseline and reports
// UsageUnavailable.
func (c *CortexA72) Usage() float64 {
	cycles, err := c.probe.ReadCycleCounter()
	if err != nil {
		logger.Debug().Err(err).Msg("Cycle counter read failed")
		return UsageUnavailable
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasSample {
		c.lastCycles = cycles
		c.lastSample = now
		c.hasSample = true

		return UsageUnavailable
	}

	elapsed := now.Sub(c.lastSample).Seconds()
	wrapped := cycles < c.lastCycles
	delta := cycles - c.lastCycles
	c.lastCycles = cycles
	c.lastSample = now

	if elapsed <= 0 || wrapped {
		// Counter wrapped or clock went backwards; re-baseline
		return UsageUnavailable
	}

	capacity := elapsed * float64(c.clockMHz) * 1e6 * float64(c.cores)
	if capacity <= 0 {
		return UsageUnavailable
	}

	usage := float64(delta) / capacity * 100
	if usage > 100 {
		usage = 100
	}

	return usage
}
