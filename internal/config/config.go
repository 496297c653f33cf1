package config

import (
	"os"

	"codeberg.org/mutker/telemetryd/internal/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel    = "info"
	DefaultInterval    = 5
	DefaultServiceName = "telemetryd"
	DefaultNATSSubject = "telemetry"
	defaultDBPath      = "/var/lib/telemetryd/telemetry.db"
)

type Config struct {
	ServiceName string `mapstructure:"service_name"`
	Hostname    string `mapstructure:"hostname"`
	Interval    int    `mapstructure:"interval"`
	LogLevel    string `mapstructure:"log_level"`
	Telemetry   bool   `mapstructure:"telemetry"`
	TelemetryDB string `mapstructure:"database"`
	NATSURL     string `mapstructure:"nats_url"`
	NATSSubject string `mapstructure:"nats_subject"`
}

// Load reads configuration from flags, the environment and an optional TOML
// file. Flag values override file values, file values override defaults.
// The config file is looked up in /etc unless TELEMETRYD_CONFIG points at an
// explicit path.
func Load() (*Config, error) {
	errFactory := errors.New()
	v := viper.New()

	flags := pflag.NewFlagSet("telemetryd", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.String("service-name", DefaultServiceName, "Service name attached to every message")
	flags.String("hostname", "", "Hostname attached to every message (default: system hostname)")
	flags.Int("interval", DefaultInterval, "Seconds between collection ticks")
	flags.String("log-level", DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	flags.Bool("telemetry", false, "Record messages to the local telemetry database")
	flags.String("database", defaultDBPath, "Path to the telemetry database")
	flags.String("nats-url", "", "NATS server URL (empty disables publishing)")
	flags.String("nats-subject", DefaultNATSSubject, "NATS subject prefix for published messages")

	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v.SetDefault("service_name", DefaultServiceName)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("telemetry", false)
	v.SetDefault("database", defaultDBPath)
	v.SetDefault("nats_subject", DefaultNATSSubject)

	if path := os.Getenv("TELEMETRYD_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("telemetryd")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.WithMessage(errors.ErrReadConfig, "Failed to read config file").
				WithData(err.Error())
		}
	}

	// Only flags the user actually set override the file
	flags.Visit(func(f *pflag.Flag) {
		key := flagToKey(f.Name)
		v.Set(key, f.Value.String())
	})

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if config.Hostname == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
		config.Hostname = hostname
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks invariants that hold regardless of the config source
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.ServiceName == "" {
		return errFactory.WithData(errors.ErrMissingConfig, "service_name")
	}
	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}
	if c.Telemetry && c.TelemetryDB == "" {
		return errFactory.WithData(errors.ErrMissingConfig, "database")
	}

	return nil
}

func flagToKey(name string) string {
	switch name {
	case "service-name":
		return "service_name"
	case "log-level":
		return "log_level"
	case "nats-url":
		return "nats_url"
	case "nats-subject":
		return "nats_subject"
	default:
		return name
	}
}
