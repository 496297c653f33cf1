package telemetry

import "codeberg.org/mutker/telemetryd/internal/errors"

const (
	defaultDirPerm      = 0o755
	defaultDBPath       = "/var/lib/telemetryd/telemetry.db"
	defaultBatchSize    = 16
	defaultBatchTimeout = 30
)

// Config controls the local message store
type Config struct {
	DBPath       string
	BatchSize    int
	BatchTimeout int
	Enabled      bool
}

func DefaultConfig() Config {
	return Config{
		DBPath:       defaultDBPath,
		BatchSize:    defaultBatchSize,
		BatchTimeout: defaultBatchTimeout,
		Enabled:      false, // Disabled by default
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	// Only validate DBPath if recording is enabled
	if c.Enabled && c.DBPath == "" {
		return errFactory.New(ErrInvalidDBPath)
	}
	return nil
}
