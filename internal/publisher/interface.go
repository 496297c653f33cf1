package publisher

import "context"

// Publisher hands encoded telemetry messages to the transport
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
	Close() error
}
