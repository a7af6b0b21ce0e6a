package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/websched/sim"
)

var (
	// Scenario flags shared by run and compare
	logLevel     string  // Log verbosity level
	scenarioPath string  // Optional YAML scenario file
	numRequests  int     // Number of requests to generate
	maxArrival   float64 // Upper bound of generated arrival times
	seed         int64   // Seed for random request generation
	quantum      int64   // Round-robin time slice
)

// registerScenarioFlags attaches the generation flags to cmd.
// Defaults mirror sim.DefaultScenario().
func registerScenarioFlags(cmd *cobra.Command) {
	defaults := sim.DefaultScenario()
	cmd.Flags().StringVar(&scenarioPath, "config", "", "Path to a YAML scenario file")
	cmd.Flags().IntVar(&numRequests, "num-requests", defaults.NumRequests, "Number of requests to generate")
	cmd.Flags().Float64Var(&maxArrival, "max-arrival", defaults.MaxArrival, "Maximum arrival time of generated requests")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for random request generation")
	cmd.Flags().Int64Var(&quantum, "quantum", defaults.Quantum, "Round-robin time quantum")
}

// resolveScenario loads the scenario file (if any) and applies the flags the
// user set explicitly. Flags left at their defaults never override YAML values.
func resolveScenario(cmd *cobra.Command) (*sim.ScenarioBundle, error) {
	scenario := sim.DefaultScenario()
	if scenarioPath != "" {
		loaded, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			return nil, err
		}
		scenario = *loaded
		logrus.Infof("Loaded scenario from %s", scenarioPath)
	}

	flags := cmd.Flags()
	if flags.Changed("num-requests") {
		scenario.NumRequests = numRequests
	}
	if flags.Changed("max-arrival") {
		scenario.MaxArrival = maxArrival
	}
	if flags.Changed("seed") {
		scenario.Seed = seed
	}
	if flags.Changed("quantum") {
		scenario.Quantum = quantum
	}
	if flags.Changed("algorithm") {
		scenario.Algorithm = algorithm
	}
	if flags.Changed("preemptive") {
		scenario.Preemptive = preemptive
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}
