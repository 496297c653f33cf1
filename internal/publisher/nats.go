package publisher

import (
	"context"
	"time"

	"codeberg.org/mutker/telemetryd/internal/errors"
	"codeberg.org/mutker/telemetryd/internal/logger"
	"github.com/nats-io/nats.go"
)

const (
	maxReconnects = -1 // Retry forever; a telemetry agent outlives broker restarts
	reconnectWait = 2 * time.Second
)

type natsPublisher struct {
	conn *nats.Conn
}

// No-op implementation
type noopPublisher struct{}

// New connects to the NATS server at url, or returns a no-op publisher when
// url is empty (publishing disabled).
func New(url string) (Publisher, error) {
	errFactory := errors.New()

	if url == "" {
		logger.Debug().Msg("Publishing disabled, using no-op publisher")
		return &noopPublisher{}, nil
	}

	opts := []nats.Option{
		nats.Name("telemetryd"),
		nats.MaxReconnects(maxReconnects),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn().Err(err).Msg("NATS disconnected")
			} else {
				logger.Info().Msg("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			logger.Info().Msg("NATS connection closed")
		}),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, errFactory.Wrap(ErrConnectFailed, err)
	}

	logger.Info().Str("url", conn.ConnectedUrl()).Msg("Connected to NATS")

	return &natsPublisher{conn: conn}, nil
}

func (p *natsPublisher) Publish(ctx context.Context, subject string, data []byte) error {
	errFactory := errors.New()

	select {
	case <-ctx.Done():
		return errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
		if err := p.conn.Publish(subject, data); err != nil {
			return errFactory.Wrap(ErrPublishFailed, err)
		}
	}

	return nil
}

func (p *natsPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		return errors.New().Wrap(ErrCloseFailed, err)
	}

	return nil
}

func (*noopPublisher) Publish(_ context.Context, _ string, _ []byte) error {
	return nil
}

func (*noopPublisher) Close() error {
	return nil
}
