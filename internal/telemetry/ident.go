package telemetry

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const idSuffixBits = 48

// Generator is the default Identity: hex-encoded epoch milliseconds plus a
// fixed-length random suffix. With 48 random bits, 10k messages inside one
// millisecond collide with probability around 1e-6 (birthday bound n^2/2^49);
// good enough for a single collector at sub-second intervals, not a
// security guarantee.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a wall-clock generator seeded from the current time
func NewGenerator() *Generator {
	return NewGeneratorWithSource(time.Now, time.Now().UnixNano())
}

// NewGeneratorWithSource builds a generator with an explicit clock and seed,
// so tests can make identifiers and timestamps deterministic.
func NewGeneratorWithSource(now func() time.Time, seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// NewID returns a new message identifier. Safe for concurrent use.
func (g *Generator) NewID() string {
	g.mu.Lock()
	suffix := g.rng.Uint64() & (1<<idSuffixBits - 1)
	now := g.now()
	g.mu.Unlock()

	return fmt.Sprintf("%x-%012x", now.UnixMilli(), suffix)
}

// Now returns the current instant in UTC, truncated to millisecond
// precision so serialized timestamps round-trip losslessly.
func (g *Generator) Now() time.Time {
	return g.now().UTC().Truncate(time.Millisecond)
}
