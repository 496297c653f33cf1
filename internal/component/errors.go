package component

import "codeberg.org/mutker/telemetryd/internal/errors"

const (
	// Construction errors
	ErrInvalidDescriptor = errors.ErrInvalidComponent
	ErrInvalidClockSpeed = errors.ErrorCode("component_invalid_clock_speed")
	ErrInvalidCoreCount  = errors.ErrorCode("component_invalid_core_count")

	// Hardware errors
	ErrProbeRead   = errors.ErrProbeFailed
	ErrNVMLFailure = errors.ErrorCode("component_nvml_failure")
	ErrInitFailed  = errors.ErrInitFailed
)
