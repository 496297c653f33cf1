package agent

import (
	"context"
	"testing"

	"codeberg.org/mutker/telemetryd/internal/component"
	"codeberg.org/mutker/telemetryd/internal/config"
	"codeberg.org/mutker/telemetryd/internal/logger"
	"codeberg.org/mutker/telemetryd/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCPU struct {
	usage float64
	temp  float64
	load  float64
}

func (f *fakeCPU) Name() string { return "fake-cpu" }

func (f *fakeCPU) Kind() string { return component.KindCPU }

func (f *fakeCPU) MaxClockSpeedMHz() int { return 1800 }

func (f *fakeCPU) NumCores() int { return 4 }

func (f *fakeCPU) Temperature() float64 { return f.temp }

func (f *fakeCPU) Usage() float64 { return f.usage }

func (f *fakeCPU) LoadAverage1m() float64 { return f.load }

type fakeSensor struct {
	temp float64
}

func (f *fakeSensor) Name() string { return "fake-gpu" }

func (f *fakeSensor) Kind() string { return component.KindGPU }

func (f *fakeSensor) Temperature() float64 { return f.temp }

type captureRecorder struct {
	messages []*telemetry.Message
}

func (r *captureRecorder) Record(_ context.Context, msg *telemetry.Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

func (r *captureRecorder) Close() error { return nil }

type capturePublisher struct {
	subjects []string
	payloads [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, subject string, data []byte) error {
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, data)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		ServiceName: "collector",
		Hostname:    "host-1",
		Interval:    1,
		LogLevel:    "error",
		NATSSubject: "telemetry",
	}
}

func newTestAgent(t *testing.T, cpu component.CPU, gpu component.ThermalSensor,
	recorder telemetry.Recorder, pub *capturePublisher,
) *Agent {
	t.Helper()
	require.NoError(t, logger.Init("error", true))

	a, err := New(testConfig(), cpu, gpu, telemetry.NewGenerator(), recorder, pub)
	require.NoError(t, err)
	return a
}

func TestCollectOncePublishesAndRecords(t *testing.T) {
	recorder := &captureRecorder{}
	pub := &capturePublisher{}
	a := newTestAgent(t, &fakeCPU{usage: 42.5, temp: 55, load: 1.2}, nil, recorder, pub)

	a.collectOnce(context.Background())

	require.Len(t, recorder.messages, 1)
	require.Len(t, pub.payloads, 1)
	assert.Equal(t, "telemetry.host-1", pub.subjects[0])

	msg := recorder.messages[0]
	require.NotNil(t, msg.Metrics.Cpu)
	assert.InDelta(t, 42.5, msg.Metrics.Cpu.UsagePercent, 0)
	assert.Equal(t, 4, msg.Metrics.Cpu.CoreCount)
	assert.InDelta(t, 1.2, msg.Metrics.Cpu.LoadAverage1m, 0)

	// The published bytes carry the same message the recorder saw
	decoded, err := telemetry.Decode(pub.payloads[0])
	require.NoError(t, err)
	assert.Equal(t, msg.MessageID, decoded.MessageID)
	assert.Equal(t, msg.Metrics, decoded.Metrics)
}

// A concrete family whose usage reading is unavailable must not produce a
// CPU metric this tick; the sentinel never reaches the metric constructor.
func TestCollectOnceSkipsUnavailableUsage(t *testing.T) {
	recorder := &captureRecorder{}
	pub := &capturePublisher{}
	a := newTestAgent(t, &fakeCPU{usage: component.UsageUnavailable}, nil, recorder, pub)

	a.collectOnce(context.Background())

	assert.Empty(t, recorder.messages, "no metrics means no envelope")
	assert.Empty(t, pub.payloads)
}

func TestCollectOnceIncludesGpuTemperature(t *testing.T) {
	recorder := &captureRecorder{}
	pub := &capturePublisher{}
	a := newTestAgent(t, &fakeCPU{usage: 10}, &fakeSensor{temp: 61.5}, recorder, pub)

	a.collectOnce(context.Background())

	require.Len(t, recorder.messages, 1)
	require.NotNil(t, recorder.messages[0].Metrics.Gpu)
	assert.InDelta(t, 61.5, recorder.messages[0].Metrics.Gpu.TemperatureCelsius, 0)
}

func TestCollectOnceSkipsUnavailableGpuTemperature(t *testing.T) {
	recorder := &captureRecorder{}
	pub := &capturePublisher{}
	a := newTestAgent(t, &fakeCPU{usage: 10}, &fakeSensor{temp: component.TemperatureUnavailable},
		recorder, pub)

	a.collectOnce(context.Background())

	require.Len(t, recorder.messages, 1, "the CPU metric still goes out")
	assert.Nil(t, recorder.messages[0].Metrics.Gpu)
}

func TestNegativeLoadAverageFallsBackToZero(t *testing.T) {
	recorder := &captureRecorder{}
	pub := &capturePublisher{}
	a := newTestAgent(t, &fakeCPU{usage: 10, load: -1}, nil, recorder, pub)

	a.collectOnce(context.Background())

	require.Len(t, recorder.messages, 1)
	require.NotNil(t, recorder.messages[0].Metrics.Cpu)
	assert.Zero(t, recorder.messages[0].Metrics.Cpu.LoadAverage1m)
}

func TestNewRejectsNilDependencies(t *testing.T) {
	require.NoError(t, logger.Init("error", true))

	_, err := New(testConfig(), nil, nil, telemetry.NewGenerator(), &captureRecorder{}, &capturePublisher{})
	assert.Error(t, err)

	_, err = New(nil, &fakeCPU{}, nil, telemetry.NewGenerator(), &captureRecorder{}, &capturePublisher{})
	assert.Error(t, err)
}
