package sim

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Algorithm names a scheduling discipline.
type Algorithm string

const (
	AlgorithmRoundRobin Algorithm = "round_robin"
	AlgorithmPriority   Algorithm = "priority"
	AlgorithmSJF        Algorithm = "sjf"
)

// ValidAlgorithms is the set of recognized algorithm selectors.
// Shared by Options.Validate(), ParseAlgorithm() and the CLI help text.
var ValidAlgorithms = map[Algorithm]bool{
	AlgorithmRoundRobin: true,
	AlgorithmPriority:   true,
	AlgorithmSJF:        true,
}

// IsValidAlgorithm returns true if name is a recognized algorithm selector.
func IsValidAlgorithm(name string) bool {
	return ValidAlgorithms[Algorithm(name)]
}

// ParseAlgorithm converts a selector string into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	if !IsValidAlgorithm(name) {
		return "", fmt.Errorf("unknown scheduling algorithm %q (valid: %v): %w", name, ValidAlgorithmNames(), ErrInvalidArgument)
	}
	return Algorithm(name), nil
}

// ValidAlgorithmNames returns the recognized selectors in sorted order.
func ValidAlgorithmNames() []string {
	names := make([]string, 0, len(ValidAlgorithms))
	for a := range ValidAlgorithms {
		names = append(names, string(a))
	}
	sort.Strings(names)
	return names
}

// ScenarioBundle holds a complete simulation scenario, loadable from a YAML file.
// Keys absent from the file keep the values of DefaultScenario().
type ScenarioBundle struct {
	NumRequests int             `yaml:"num_requests"`
	MaxArrival  float64         `yaml:"max_arrival"`
	Seed        int64           `yaml:"seed"`
	Algorithm   string          `yaml:"algorithm"`
	Quantum     int64           `yaml:"quantum"`
	Preemptive  bool            `yaml:"preemptive"`
	Generator   GeneratorConfig `yaml:"generator"`
}

// DefaultScenario returns 20 requests arriving within 50 time units, seed 42,
// round-robin with quantum 2.
func DefaultScenario() ScenarioBundle {
	return ScenarioBundle{
		NumRequests: 20,
		MaxArrival:  50.0,
		Seed:        42,
		Algorithm:   string(AlgorithmRoundRobin),
		Quantum:     DefaultQuantum,
		Generator:   DefaultGeneratorConfig(),
	}
}

// LoadScenario reads and parses a YAML scenario file on top of DefaultScenario().
// Unknown keys are rejected so that typos cannot silently fall back to defaults.
func LoadScenario(path string) (*ScenarioBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes YAML scenario bytes on top of DefaultScenario().
func ParseScenario(data []byte) (*ScenarioBundle, error) {
	bundle := DefaultScenario()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &bundle, nil
}

// Validate checks every field of the scenario.
func (b *ScenarioBundle) Validate() error {
	if b.NumRequests < 0 {
		return fmt.Errorf("num_requests must be non-negative, got %d: %w", b.NumRequests, ErrInvalidArgument)
	}
	if b.MaxArrival < 0 || math.IsNaN(b.MaxArrival) || math.IsInf(b.MaxArrival, 0) {
		return fmt.Errorf("max_arrival must be a non-negative finite number, got %v: %w", b.MaxArrival, ErrInvalidArgument)
	}
	algorithm, err := ParseAlgorithm(b.Algorithm)
	if err != nil {
		return err
	}
	if err := b.Options().Validate(algorithm); err != nil {
		return err
	}
	return b.Generator.Validate()
}

// Options extracts the run options described by the scenario.
func (b *ScenarioBundle) Options() Options {
	opts := DefaultOptions()
	opts.Quantum = b.Quantum
	opts.Preemptive = b.Preemptive
	return opts
}
