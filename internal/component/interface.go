package component

// Sentinel readings. Live queries never fail with an error for a transient
// probe problem; they return a value outside the metric's domain instead so
// callers can tell "unavailable" from "zero".
const (
	// UsageUnavailable signals that a usage reading could not be taken
	UsageUnavailable float64 = -1.0

	// TemperatureUnavailable signals that a temperature reading could not
	// be taken. Well below absolute zero, so it can never be confused with
	// a real reading.
	TemperatureUnavailable float64 = -1000.0
)

// UsageAvailable reports whether a usage reading carries a real value
func UsageAvailable(usage float64) bool {
	return usage >= 0
}

// TemperatureAvailable reports whether a temperature reading carries a real value
func TemperatureAvailable(temperature float64) bool {
	return temperature != TemperatureUnavailable
}

// Component is the uniform identity every hardware unit exposes. Name and
// Kind are constant for the lifetime of the instance.
type Component interface {
	Name() string
	Kind() string
}

// Processor is a component with a rated clock. The clock speed is a hardware
// fact, not a live reading, so callers may cache it.
type Processor interface {
	Component
	MaxClockSpeedMHz() int
}

// ThermalSensor is a component that can report its temperature in °C.
// Temperature is a live, per-call query.
type ThermalSensor interface {
	Component
	Temperature() float64
}

// CPU is a processor with a core topology and live usage/temperature
// queries. NumCores is constant; Usage and Temperature consult hardware on
// every call.
type CPU interface {
	Processor
	NumCores() int
	Temperature() float64
	Usage() float64
}

// LoadReporter is a component that can report the host's 1-minute load
// average. Negative means unavailable.
type LoadReporter interface {
	LoadAverage1m() float64
}

// RegisterProbe reads raw machine registers and counters for one processor
// family. Implementations live at the hardware boundary; everything above it
// is testable with a scripted probe.
type RegisterProbe interface {
	// ReadMIDR reads the main ID register (MIDR_EL1)
	ReadMIDR() (uint64, error)

	// ReadMPIDR reads the multiprocessor affinity register (MPIDR_EL1)
	ReadMPIDR() (uint64, error)

	// ReadCycleCounter reads the performance monitor cycle counter (PMCCNTR_EL0)
	ReadCycleCounter() (uint64, error)

	// ReadThermalSensor reads the SoC thermal sensor in millidegrees Celsius
	ReadThermalSensor() (uint64, error)
}
