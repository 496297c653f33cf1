package telemetry_test

import (
	"testing"
	"time"

	"codeberg.org/mutker/telemetryd/internal/errors"
	"codeberg.org/mutker/telemetryd/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	msg, err := telemetry.NewMessage(telemetry.NewGenerator(), 1, "collector", "host-1", telemetry.Payload{})
	require.NoError(t, err)

	assert.Equal(t, 1, msg.SchemaVersion)
	assert.Equal(t, "collector", msg.ServiceName)
	assert.Equal(t, "host-1", msg.Hostname)
	assert.NotEmpty(t, msg.MessageID, "message id must be derived at construction")
	assert.WithinDuration(t, time.Now(), msg.Timestamp, time.Second, "timestamp must be capture time")
	assert.Equal(t, time.UTC, msg.Timestamp.Location(), "timestamp must be UTC")
}

func TestNewMessageRejectsInvalidEnvelope(t *testing.T) {
	gen := telemetry.NewGenerator()

	tests := []struct {
		name          string
		schemaVersion int
		serviceName   string
		hostname      string
	}{
		{"zero schema version", 0, "collector", "host-1"},
		{"negative schema version", -1, "collector", "host-1"},
		{"empty service name", 1, "", "host-1"},
		{"empty hostname", 1, "collector", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := telemetry.NewMessage(gen, tt.schemaVersion, tt.serviceName, tt.hostname, telemetry.Payload{})
			require.Error(t, err)
			assert.Equal(t, telemetry.ErrInvalidEnvelope, errors.CodeOf(err))
		})
	}
}

func TestMessageString(t *testing.T) {
	gen := telemetry.NewGeneratorWithSource(func() time.Time {
		return time.Date(2024, 5, 1, 12, 30, 45, 0, time.UTC)
	}, 1)

	msg, err := telemetry.NewMessage(gen, 1, "collector", "host-1", telemetry.Payload{})
	require.NoError(t, err)

	assert.Contains(t, msg.String(), "schema_version=1")
	assert.Contains(t, msg.String(), "service_name=collector")
	assert.Contains(t, msg.String(), "timestamp=2024-05-01 12:30:45")
}
