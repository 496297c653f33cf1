package telemetry

import (
	"context"
	"time"
)

// Identity produces message identifiers and capture times. Implementations
// must be safe for concurrent use by multiple collection goroutines.
type Identity interface {
	NewID() string
	Now() time.Time
}

// Recorder persists emitted messages
type Recorder interface {
	Record(ctx context.Context, msg *Message) error
	Close() error
}

// Payload is the metrics object carried by a message: one optional entry per
// metric kind. New kinds add fields; existing readers ignore unknown keys.
type Payload struct {
	Cpu *CpuMetrics `json:"cpu,omitempty"`
	Gpu *GpuMetrics `json:"gpu,omitempty"`
}

// Empty reports whether the payload carries no metrics at all
func (p Payload) Empty() bool {
	return p.Cpu == nil && p.Gpu == nil
}
