package telemetry

import (
	"fmt"

	"codeberg.org/mutker/telemetryd/internal/errors"
)

const absoluteZeroCelsius = -273.15

// fieldValue names the offending field in a validation error
type fieldValue struct {
	Field string
	Value any
}

// CpuMetrics is an immutable snapshot of processor readings at one instant.
// Construction validates every field; an invalid snapshot is never
// observable.
type CpuMetrics struct {
	UsagePercent  float64 `json:"usage_percent"`
	CoreCount     int     `json:"core_count"`
	LoadAverage1m float64 `json:"load_average_1m"`
}

// NewCpuMetrics validates and builds a CPU snapshot. Usage must lie in
// [0,100]; sentinel readings must be filtered out by the collection loop
// before they get here.
func NewCpuMetrics(usagePercent float64, coreCount int, loadAverage1m float64) (CpuMetrics, error) {
	errFactory := errors.New()

	if usagePercent < 0 || usagePercent > 100 {
		return CpuMetrics{}, errFactory.WithData(ErrMetricOutOfRange, fieldValue{"usage_percent", usagePercent})
	}
	if coreCount <= 0 {
		return CpuMetrics{}, errFactory.WithData(ErrMetricOutOfRange, fieldValue{"core_count", coreCount})
	}
	if loadAverage1m < 0 {
		return CpuMetrics{}, errFactory.WithData(ErrMetricOutOfRange, fieldValue{"load_average_1m", loadAverage1m})
	}

	return CpuMetrics{
		UsagePercent:  usagePercent,
		CoreCount:     coreCount,
		LoadAverage1m: loadAverage1m,
	}, nil
}

// String renders the snapshot for logs, with fixed two-decimal floats
func (m CpuMetrics) String() string {
	return fmt.Sprintf("CpuMetrics{usage_percent=%.2f, core_count=%d, load_average_1m=%.2f}",
		m.UsagePercent, m.CoreCount, m.LoadAverage1m)
}

// GpuMetrics is an immutable snapshot of GPU thermal readings
type GpuMetrics struct {
	TemperatureCelsius float64 `json:"temperature_celsius"`
}

// NewGpuMetrics validates and builds a GPU snapshot
func NewGpuMetrics(temperatureCelsius float64) (GpuMetrics, error) {
	if temperatureCelsius < absoluteZeroCelsius {
		return GpuMetrics{}, errors.New().
			WithData(ErrMetricOutOfRange, fieldValue{"temperature_celsius", temperatureCelsius})
	}

	return GpuMetrics{TemperatureCelsius: temperatureCelsius}, nil
}

func (m GpuMetrics) String() string {
	return fmt.Sprintf("GpuMetrics{temperature_celsius=%.2f}", m.TemperatureCelsius)
}
