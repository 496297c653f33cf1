package component

import (
	"codeberg.org/mutker/telemetryd/internal/errors"
	"codeberg.org/mutker/telemetryd/internal/logger"
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// NvidiaGPU exposes an NVML-managed GPU as a Component with a thermal
// sensor. It composes only the capabilities the device has; nothing forces
// processor semantics onto it.
type NvidiaGPU struct {
	descriptor Descriptor
	device     nvml.Device
}

// NewNvidiaGPU initializes NVML and binds the first device.
func NewNvidiaGPU() (*NvidiaGPU, error) {
	errFactory := errors.New()

	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return nil, errFactory.WithData(ErrNVMLFailure, nvml.ErrorString(ret))
	}

	device, ret := nvml.DeviceGetHandleByIndex(0)
	if ret != nvml.SUCCESS {
		return nil, errFactory.WithData(ErrNVMLFailure, nvml.ErrorString(ret))
	}

	name := "nvidia-gpu"
	if detected, ret := device.GetName(); ret == nvml.SUCCESS {
		name = detected
		logger.Debug().Str("name", detected).Msg("Detected GPU")
	} else {
		logger.Warn().Msgf("Failed to get GPU name: %v", nvml.ErrorString(ret))
	}

	descriptor, err := NewDescriptor(name, KindGPU)
	if err != nil {
		return nil, err
	}

	return &NvidiaGPU{
		descriptor: descriptor,
		device:     device,
	}, nil
}

func (g *NvidiaGPU) Name() string {
	return g.descriptor.Name()
}

func (g *NvidiaGPU) Kind() string {
	return g.descriptor.Kind()
}

// Temperature reads the GPU die temperature. Returns TemperatureUnavailable
// when NVML cannot deliver a reading.
func (g *NvidiaGPU) Temperature() float64 {
	temp, ret := g.device.GetTemperature(nvml.TEMPERATURE_GPU)
	if ret != nvml.SUCCESS {
		logger.Debug().Msgf("GPU temperature read failed: %v", nvml.ErrorString(ret))
		return TemperatureUnavailable
	}

	return float64(temp)
}

// Shutdown releases the NVML library
func (g *NvidiaGPU) Shutdown() error {
	if ret := nvml.Shutdown(); ret != nvml.SUCCESS {
		return errors.New().WithData(ErrNVMLFailure, nvml.ErrorString(ret))
	}

	return nil
}
