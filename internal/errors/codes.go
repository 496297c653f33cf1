package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrNotImplemented  ErrorCode = "not_implemented"
	ErrUnavailable     ErrorCode = "service_unavailable"
	ErrAlreadyRunning  ErrorCode = "already_running"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrMissingConfig   ErrorCode = "missing_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidInterval ErrorCode = "invalid_interval"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Validation errors
	ErrValidationFailed ErrorCode = "validation_failed"
	ErrFieldOutOfRange  ErrorCode = "field_out_of_range"
	ErrFieldEmpty       ErrorCode = "field_empty"

	// Serialization errors
	ErrEncodeFailed ErrorCode = "encode_failed"
	ErrDecodeFailed ErrorCode = "decode_failed"

	// Component errors
	ErrInvalidComponent ErrorCode = "invalid_component"
	ErrProbeFailed      ErrorCode = "probe_read_failed"

	// Operation errors
	ErrOperationFailed  ErrorCode = "operation_failed"
	ErrTimeout          ErrorCode = "operation_timeout"
	ErrInvalidOperation ErrorCode = "invalid_operation"

	// Collection errors
	ErrInitCollector ErrorCode = "init_collector_failed"
	ErrCollectTick   ErrorCode = "collect_tick_failed"
	ErrMainLoop      ErrorCode = "main_loop_failed"

	// Sink errors
	ErrPublishFailed ErrorCode = "publish_failed"
	ErrRecordFailed  ErrorCode = "record_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:         "Internal error occurred",
	ErrInvalidArgument:  "Invalid argument provided",
	ErrNotImplemented:   "Operation not implemented",
	ErrUnavailable:      "Service unavailable",
	ErrAlreadyRunning:   "Another instance is already running",
	ErrInvalidConfig:    "Invalid configuration",
	ErrMissingConfig:    "Missing configuration",
	ErrBindFlags:        "Failed to bind flags",
	ErrReadConfig:       "Failed to read configuration",
	ErrInvalidInterval:  "Invalid interval value",
	ErrInvalidLogLevel:  "Invalid log level",
	ErrInitFailed:       "Initialization failed",
	ErrShutdownFailed:   "Shutdown failed",
	ErrValidationFailed: "Validation failed",
	ErrFieldOutOfRange:  "Field value out of range",
	ErrFieldEmpty:       "Required field is empty",
	ErrEncodeFailed:     "Failed to encode message",
	ErrDecodeFailed:     "Failed to decode message",
	ErrInvalidComponent: "Invalid component descriptor",
	ErrProbeFailed:      "Hardware probe read failed",
	ErrOperationFailed:  "Operation failed",
	ErrTimeout:          "Operation timed out",
	ErrInvalidOperation: "Invalid operation",
	ErrInitCollector:    "Failed to initialize collector",
	ErrCollectTick:      "Collection tick failed",
	ErrMainLoop:         "Error in main loop",
	ErrPublishFailed:    "Failed to publish message",
	ErrRecordFailed:     "Failed to record message",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
