package publisher

import "codeberg.org/mutker/telemetryd/internal/errors"

const (
	ErrConnectFailed    = errors.ErrorCode("publisher_connect_failed")
	ErrPublishFailed    = errors.ErrPublishFailed
	ErrOperationTimeout = errors.ErrTimeout
	ErrCloseFailed      = errors.ErrShutdownFailed
)
