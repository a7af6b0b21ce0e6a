package sim

import (
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible simulation scenario.
// Two runs with the same SimulationKey and identical configuration
// MUST produce identical batches and therefore identical completion traces.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// WorkloadRNG returns a fresh source for request generation seeded with the
// key itself, so --seed N reproduces the same batch as rand.NewSource(N).
// Each call starts the stream from the beginning.
func (k SimulationKey) WorkloadRNG() *rand.Rand {
	return rand.New(rand.NewSource(int64(k)))
}
