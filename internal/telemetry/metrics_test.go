package telemetry_test

import (
	"testing"

	"codeberg.org/mutker/telemetryd/internal/errors"
	"codeberg.org/mutker/telemetryd/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCpuMetrics(t *testing.T) {
	m, err := telemetry.NewCpuMetrics(42.5, 4, 1.2)
	require.NoError(t, err)

	assert.InDelta(t, 42.5, m.UsagePercent, 0, "Expected UsagePercent 42.5")
	assert.Equal(t, 4, m.CoreCount, "Expected CoreCount 4")
	assert.InDelta(t, 1.2, m.LoadAverage1m, 0, "Expected LoadAverage1m 1.2")
}

func TestNewCpuMetricsBoundaries(t *testing.T) {
	_, err := telemetry.NewCpuMetrics(0, 1, 0)
	assert.NoError(t, err, "usage 0 is a valid boundary")

	_, err = telemetry.NewCpuMetrics(100, 1, 0)
	assert.NoError(t, err, "usage 100 is a valid boundary")
}

func TestNewCpuMetricsRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		usage float64
		cores int
		load  float64
	}{
		{"usage above 100", 150, 4, 1.2},
		{"negative usage", -0.1, 4, 1.2},
		{"zero cores", 50, 0, 1.2},
		{"negative cores", 50, -1, 1.2},
		{"negative load", 50, 4, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := telemetry.NewCpuMetrics(tt.usage, tt.cores, tt.load)
			require.Error(t, err)
			assert.Equal(t, telemetry.ErrMetricOutOfRange, errors.CodeOf(err))
		})
	}
}

func TestCpuMetricsStringFixedPrecision(t *testing.T) {
	m, err := telemetry.NewCpuMetrics(42.5, 4, 1.2)
	require.NoError(t, err)

	assert.Equal(t, "CpuMetrics{usage_percent=42.50, core_count=4, load_average_1m=1.20}", m.String())
}

func TestNewGpuMetrics(t *testing.T) {
	m, err := telemetry.NewGpuMetrics(61.5)
	require.NoError(t, err)
	assert.InDelta(t, 61.5, m.TemperatureCelsius, 0)
	assert.Equal(t, "GpuMetrics{temperature_celsius=61.50}", m.String())

	_, err = telemetry.NewGpuMetrics(-300)
	require.Error(t, err)
	assert.Equal(t, telemetry.ErrMetricOutOfRange, errors.CodeOf(err))
}
