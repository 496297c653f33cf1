package telemetry

import (
	"encoding/json"
	"time"

	"codeberg.org/mutker/telemetryd/internal/errors"
)

// timestampLayout is RFC 3339 UTC with fixed millisecond precision, so a
// given instant always renders to the same bytes.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// wireMessage is the schema-version-1 wire shape. Field order here is the
// canonical key order of the encoded document.
type wireMessage struct {
	SchemaVersion int     `json:"schema_version"`
	ServiceName   string  `json:"service_name"`
	Hostname      string  `json:"hostname"`
	MessageID     string  `json:"message_id"`
	Timestamp     string  `json:"timestamp"`
	Metrics       Payload `json:"metrics"`
}

// Encode renders a message to its canonical JSON form. It cannot fail for a
// message built through NewMessage.
func Encode(msg *Message) ([]byte, error) {
	errFactory := errors.New()

	if msg == nil {
		return nil, errFactory.New(ErrInvalidMessage)
	}

	data, err := json.Marshal(wireMessage{
		SchemaVersion: msg.SchemaVersion,
		ServiceName:   msg.ServiceName,
		Hostname:      msg.Hostname,
		MessageID:     msg.MessageID,
		Timestamp:     msg.Timestamp.UTC().Format(timestampLayout),
		Metrics:       msg.Metrics,
	})
	if err != nil {
		return nil, errFactory.Wrap(ErrEncodeFailed, err)
	}

	return data, nil
}

// Decode parses and fully re-validates a message. Every failure — malformed
// text, missing required fields, or values a direct construction would
// reject — comes back as a recoverable decode error with a nil message; no
// partially decoded message is ever returned. Unknown keys are ignored for
// forward compatibility within a schema major version.
func Decode(data []byte) (*Message, error) {
	errFactory := errors.New()

	var wire wireMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errFactory.Wrap(ErrDecodeFailed, err)
	}

	if err := validateEnvelope(wire.SchemaVersion, wire.ServiceName, wire.Hostname); err != nil {
		return nil, errFactory.Wrap(ErrDecodeFailed, err)
	}
	if wire.MessageID == "" {
		return nil, errFactory.WithData(ErrDecodeFailed, fieldValue{"message_id", wire.MessageID})
	}

	timestamp, err := time.Parse(timestampLayout, wire.Timestamp)
	if err != nil {
		return nil, errFactory.Wrap(ErrDecodeFailed, err)
	}

	metrics, err := revalidatePayload(wire.Metrics)
	if err != nil {
		return nil, errFactory.Wrap(ErrDecodeFailed, err)
	}

	return &Message{
		SchemaVersion: wire.SchemaVersion,
		ServiceName:   wire.ServiceName,
		Hostname:      wire.Hostname,
		MessageID:     wire.MessageID,
		Timestamp:     timestamp.UTC(),
		Metrics:       metrics,
	}, nil
}

// revalidatePayload rebuilds each metric object through its constructor, so
// decoded input passes exactly the same validation as direct construction.
func revalidatePayload(wire Payload) (Payload, error) {
	var payload Payload

	if wire.Cpu != nil {
		cpu, err := NewCpuMetrics(wire.Cpu.UsagePercent, wire.Cpu.CoreCount, wire.Cpu.LoadAverage1m)
		if err != nil {
			return Payload{}, err
		}
		payload.Cpu = &cpu
	}

	if wire.Gpu != nil {
		gpu, err := NewGpuMetrics(wire.Gpu.TemperatureCelsius)
		if err != nil {
			return Payload{}, err
		}
		payload.Gpu = &gpu
	}

	return payload, nil
}
