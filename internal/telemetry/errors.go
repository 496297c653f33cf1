package telemetry

import "codeberg.org/mutker/telemetryd/internal/errors"

const (
	// Validation errors
	ErrMetricOutOfRange = errors.ErrorCode("telemetry_metric_out_of_range")
	ErrInvalidEnvelope  = errors.ErrorCode("telemetry_invalid_envelope")
	ErrInvalidMessage   = errors.ErrorCode("telemetry_invalid_message")

	// Serialization errors
	ErrEncodeFailed = errors.ErrEncodeFailed
	ErrDecodeFailed = errors.ErrDecodeFailed

	// Configuration errors
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidDBPath = errors.ErrorCode("telemetry_invalid_db_path")

	// Schema errors
	ErrSchemaInitFailed       = errors.ErrorCode("telemetry_schema_init_failed")
	ErrSchemaValidationFailed = errors.ErrorCode("telemetry_schema_validation_failed")
	ErrSchemaVersionMismatch  = errors.ErrorCode("telemetry_schema_version_mismatch")
	ErrTransactionFailed      = errors.ErrorCode("telemetry_transaction_failed")

	// Storage errors
	ErrStorageInit  = errors.ErrInitFailed
	ErrStorageClose = errors.ErrShutdownFailed

	// Service errors
	ErrServiceShutdown = errors.ErrShutdownFailed
	ErrRecordFailed    = errors.ErrRecordFailed

	// Operation errors
	ErrOperationTimeout = errors.ErrTimeout
)
