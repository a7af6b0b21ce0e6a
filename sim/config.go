package sim

import (
	"fmt"
	"math"

	"github.com/inference-sim/websched/sim/trace"
)

// Default draw ranges and options, matching the classic web-server exercise.
const (
	DefaultMinProcessingTime int64 = 1
	DefaultMaxProcessingTime int64 = 10
	DefaultMinPriority             = 1
	DefaultMaxPriority             = 5
	DefaultQuantum           int64 = 2
)

// GeneratorConfig groups the uniform draw ranges used by request generation.
// Both bounds are inclusive.
type GeneratorConfig struct {
	MinProcessingTime int64 `yaml:"min_processing_time"`
	MaxProcessingTime int64 `yaml:"max_processing_time"`
	MinPriority       int   `yaml:"min_priority"`
	MaxPriority       int   `yaml:"max_priority"`
}

// DefaultGeneratorConfig returns processing times 1–10 and priorities 1–5.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MinProcessingTime: DefaultMinProcessingTime,
		MaxProcessingTime: DefaultMaxProcessingTime,
		MinPriority:       DefaultMinPriority,
		MaxPriority:       DefaultMaxPriority,
	}
}

// Validate checks that both ranges are non-empty, processing times are
// positive and the priority span can be drawn from.
func (c GeneratorConfig) Validate() error {
	if c.MinProcessingTime < 1 {
		return fmt.Errorf("min_processing_time must be >= 1, got %d: %w", c.MinProcessingTime, ErrInvalidArgument)
	}
	if c.MaxProcessingTime < c.MinProcessingTime {
		return fmt.Errorf("max_processing_time %d is below min_processing_time %d: %w",
			c.MaxProcessingTime, c.MinProcessingTime, ErrInvalidArgument)
	}
	if c.MaxPriority < c.MinPriority {
		return fmt.Errorf("max_priority %d is below min_priority %d: %w", c.MaxPriority, c.MinPriority, ErrInvalidArgument)
	}
	// The inclusive span must fit in an int for rand.Intn.
	if uint(c.MaxPriority)-uint(c.MinPriority) >= uint(math.MaxInt) {
		return fmt.Errorf("priority range [%d, %d] is too wide: %w", c.MinPriority, c.MaxPriority, ErrInvalidArgument)
	}
	return nil
}

// Options groups the algorithm-specific parameters of a simulation run.
type Options struct {
	Quantum    int64            // slice length for round-robin; ignored by other algorithms
	Preemptive bool             // selection variant for priority and sjf; ignored by round-robin
	TraceLevel trace.TraceLevel // "none" (default) or "slices"
}

// DefaultOptions returns quantum 2, non-preemptive selection and no tracing.
func DefaultOptions() Options {
	return Options{
		Quantum:    DefaultQuantum,
		TraceLevel: trace.TraceLevelNone,
	}
}

// Validate checks the options that apply to algorithm.
func (o Options) Validate(algorithm Algorithm) error {
	if !IsValidAlgorithm(string(algorithm)) {
		return fmt.Errorf("unknown scheduling algorithm %q: %w", algorithm, ErrInvalidArgument)
	}
	if algorithm == AlgorithmRoundRobin && o.Quantum <= 0 {
		return fmt.Errorf("round-robin quantum must be positive, got %d: %w", o.Quantum, ErrInvalidArgument)
	}
	if !trace.IsValidTraceLevel(string(o.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q: %w", o.TraceLevel, ErrInvalidArgument)
	}
	return nil
}
