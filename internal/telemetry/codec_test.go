package telemetry_test

import (
	"fmt"
	"testing"
	"time"

	"codeberg.org/mutker/telemetryd/internal/errors"
	"codeberg.org/mutker/telemetryd/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedGenerator() *telemetry.Generator {
	at := time.Date(2024, 5, 1, 12, 0, 0, 123000000, time.UTC)
	return telemetry.NewGeneratorWithSource(func() time.Time { return at }, 42)
}

func sampleMessage(t *testing.T) *telemetry.Message {
	t.Helper()

	cpu, err := telemetry.NewCpuMetrics(42.5, 4, 1.2)
	require.NoError(t, err)

	msg, err := telemetry.NewMessage(fixedGenerator(), 1, "collector", "host-1",
		telemetry.Payload{Cpu: &cpu})
	require.NoError(t, err)

	return msg
}

func TestEncodeWireShape(t *testing.T) {
	msg := sampleMessage(t)

	data, err := telemetry.Encode(msg)
	require.NoError(t, err)

	expected := fmt.Sprintf(`{"schema_version":1,"service_name":"collector","hostname":"host-1",`+
		`"message_id":"%s","timestamp":"2024-05-01T12:00:00.123Z",`+
		`"metrics":{"cpu":{"usage_percent":42.5,"core_count":4,"load_average_1m":1.2}}}`,
		msg.MessageID)
	assert.Equal(t, expected, string(data))
}

func TestRoundTrip(t *testing.T) {
	msg := sampleMessage(t)

	data, err := telemetry.Encode(msg)
	require.NoError(t, err)

	decoded, err := telemetry.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, msg.SchemaVersion, decoded.SchemaVersion)
	assert.Equal(t, msg.ServiceName, decoded.ServiceName)
	assert.Equal(t, msg.Hostname, decoded.Hostname)
	assert.Equal(t, msg.MessageID, decoded.MessageID)
	assert.True(t, msg.Timestamp.Equal(decoded.Timestamp), "timestamp must survive the round trip")
	assert.Equal(t, msg.Metrics, decoded.Metrics, "metrics must survive the round trip field-for-field")

	// Canonical form: re-encoding the decoded message is byte-identical
	reencoded, err := telemetry.Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(reencoded))
}

func TestDecodeMalformedInput(t *testing.T) {
	_, err := telemetry.Decode([]byte("not json"))
	require.Error(t, err)
	assert.Equal(t, telemetry.ErrDecodeFailed, errors.CodeOf(err))
}

func TestDecodeRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			"negative schema version",
			`{"schema_version":-1,"service_name":"collector","hostname":"host-1",` +
				`"message_id":"abc-123","timestamp":"2024-05-01T12:00:00.123Z","metrics":{}}`,
		},
		{
			"missing service name",
			`{"schema_version":1,"hostname":"host-1",` +
				`"message_id":"abc-123","timestamp":"2024-05-01T12:00:00.123Z","metrics":{}}`,
		},
		{
			"missing message id",
			`{"schema_version":1,"service_name":"collector","hostname":"host-1",` +
				`"timestamp":"2024-05-01T12:00:00.123Z","metrics":{}}`,
		},
		{
			"unparseable timestamp",
			`{"schema_version":1,"service_name":"collector","hostname":"host-1",` +
				`"message_id":"abc-123","timestamp":"yesterday","metrics":{}}`,
		},
		{
			"usage out of range",
			`{"schema_version":1,"service_name":"collector","hostname":"host-1",` +
				`"message_id":"abc-123","timestamp":"2024-05-01T12:00:00.123Z",` +
				`"metrics":{"cpu":{"usage_percent":150,"core_count":4,"load_average_1m":1.2}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := telemetry.Decode([]byte(tt.json))
			require.Error(t, err, "parseable-but-invalid input must be rejected like direct construction")
			assert.Nil(t, msg, "no partial message may escape a failed decode")
			assert.Equal(t, telemetry.ErrDecodeFailed, errors.CodeOf(err))
		})
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	input := `{"schema_version":1,"service_name":"collector","hostname":"host-1",` +
		`"message_id":"abc-123","timestamp":"2024-05-01T12:00:00.123Z",` +
		`"metrics":{"cpu":{"usage_percent":42.5,"core_count":4,"load_average_1m":1.2,"future_field":7}},` +
		`"another_future_field":"ignored"}`

	msg, err := telemetry.Decode([]byte(input))
	require.NoError(t, err)
	require.NotNil(t, msg.Metrics.Cpu)
	assert.InDelta(t, 42.5, msg.Metrics.Cpu.UsagePercent, 0)
}
