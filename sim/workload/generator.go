package workload

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/websched/sim"
)

// GenerateRequests creates n requests with processing times drawn uniformly
// from 1–10, priorities from 1–5 and arrival times from [0, maxArrival).
// Deterministic given the same rng state.
// Returns requests sorted by ArrivalTime; IDs follow generation order.
func GenerateRequests(n int, maxArrival float64, rng *rand.Rand) ([]*sim.Request, error) {
	return GenerateRequestsWithConfig(n, maxArrival, sim.DefaultGeneratorConfig(), rng)
}

// GenerateRequestsWithConfig is GenerateRequests with explicit draw ranges.
func GenerateRequestsWithConfig(n int, maxArrival float64, cfg sim.GeneratorConfig, rng *rand.Rand) ([]*sim.Request, error) {
	if n < 0 {
		return nil, fmt.Errorf("request count must be non-negative, got %d: %w", n, sim.ErrInvalidArgument)
	}
	if maxArrival < 0 || math.IsNaN(maxArrival) || math.IsInf(maxArrival, 0) {
		return nil, fmt.Errorf("max arrival must be a non-negative finite number, got %v: %w", maxArrival, sim.ErrInvalidArgument)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source must not be nil: %w", sim.ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}

	processingSpan := cfg.MaxProcessingTime - cfg.MinProcessingTime + 1
	prioritySpan := cfg.MaxPriority - cfg.MinPriority + 1

	requests := make([]*sim.Request, 0, n)
	for i := 0; i < n; i++ {
		processing := cfg.MinProcessingTime + rng.Int63n(processingSpan)
		priority := cfg.MinPriority + rng.Intn(prioritySpan)
		arrival := rng.Float64() * maxArrival
		requests = append(requests, sim.NewRequest(i, processing, priority, arrival))
	}

	// Sort by arrival time (stable sort keeps generation order for ties)
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].ArrivalTime < requests[j].ArrivalTime
	})

	logrus.Debugf("Generated %d requests (max arrival %.2f)", n, maxArrival)
	return requests, nil
}

// GenerateFromSeed generates a default-range batch from the workload stream of seed.
func GenerateFromSeed(n int, maxArrival float64, seed int64) ([]*sim.Request, error) {
	return GenerateRequests(n, maxArrival, sim.NewSimulationKey(seed).WorkloadRNG())
}

// GenerateFromScenario validates the scenario and generates the batch it describes.
func GenerateFromScenario(b *sim.ScenarioBundle) ([]*sim.Request, error) {
	if b == nil {
		return nil, fmt.Errorf("scenario must not be nil: %w", sim.ErrInvalidArgument)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return GenerateRequestsWithConfig(b.NumRequests, b.MaxArrival, b.Generator, sim.NewSimulationKey(b.Seed).WorkloadRNG())
}
