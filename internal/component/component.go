package component

import "codeberg.org/mutker/telemetryd/internal/errors"

// Capability kinds as dotted paths, most general first
const (
	KindProcessor = "component::processor"
	KindCPU       = "component::processor::cpu"
	KindGPU       = "component::gpu"
)

// Descriptor is the fixed identity of a component: set once at discovery,
// never mutated.
type Descriptor struct {
	name string
	kind string
}

// NewDescriptor validates and builds a component identity. An empty name or
// kind is a programming error: a component that cannot identify itself must
// not exist.
func NewDescriptor(name, kind string) (Descriptor, error) {
	errFactory := errors.New()

	if name == "" {
		return Descriptor{}, errFactory.WithData(ErrInvalidDescriptor, "name is empty")
	}
	if kind == "" {
		return Descriptor{}, errFactory.WithData(ErrInvalidDescriptor, "kind is empty")
	}

	return Descriptor{name: name, kind: kind}, nil
}

func (d Descriptor) Name() string {
	return d.name
}

func (d Descriptor) Kind() string {
	return d.kind
}
