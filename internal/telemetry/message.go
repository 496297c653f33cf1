package telemetry

import (
	"fmt"
	"time"

	"codeberg.org/mutker/telemetryd/internal/errors"
)

// SchemaVersion is the current wire schema for telemetry messages
const SchemaVersion = 1

// Message is the versioned envelope around one collection event. Identity
// (MessageID, Timestamp) is derived at construction, never caller-supplied,
// and the whole value is immutable afterwards.
type Message struct {
	SchemaVersion int
	ServiceName   string
	Hostname      string
	MessageID     string
	Timestamp     time.Time
	Metrics       Payload
}

// NewMessage validates the envelope fields and stamps identity and capture
// time from the given Identity.
func NewMessage(identity Identity, schemaVersion int, serviceName, hostname string, metrics Payload) (*Message, error) {
	if err := validateEnvelope(schemaVersion, serviceName, hostname); err != nil {
		return nil, err
	}

	return &Message{
		SchemaVersion: schemaVersion,
		ServiceName:   serviceName,
		Hostname:      hostname,
		MessageID:     identity.NewID(),
		Timestamp:     identity.Now(),
		Metrics:       metrics,
	}, nil
}

func validateEnvelope(schemaVersion int, serviceName, hostname string) error {
	errFactory := errors.New()

	if schemaVersion <= 0 {
		return errFactory.WithData(ErrInvalidEnvelope, fieldValue{"schema_version", schemaVersion})
	}
	if serviceName == "" {
		return errFactory.WithData(ErrInvalidEnvelope, fieldValue{"service_name", serviceName})
	}
	if hostname == "" {
		return errFactory.WithData(ErrInvalidEnvelope, fieldValue{"hostname", hostname})
	}

	return nil
}

// String renders the envelope for logs
func (m *Message) String() string {
	return fmt.Sprintf("TelemetryMessage{schema_version=%d, service_name=%s, hostname=%s, message_id=%s, timestamp=%s}",
		m.SchemaVersion, m.ServiceName, m.Hostname, m.MessageID,
		m.Timestamp.Format("2006-01-02 15:04:05"))
}
