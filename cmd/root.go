package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/websched/sim"
	"github.com/inference-sim/websched/sim/trace"
	"github.com/inference-sim/websched/sim/workload"
)

var (
	// CLI flags for the run command
	algorithm    string // Scheduling algorithm selector
	preemptive   bool   // Preemptive selection for priority and sjf
	outputFormat string // "table" or "json"
	traceLevel   string // "none" or "slices"
	traceFile    string // CSV destination for the service trace
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "websched",
	Short: "Single-server request scheduling simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes the simulation using parameters from the scenario file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a request batch and simulate one scheduling algorithm",
	Run: func(cmd *cobra.Command, args []string) {
		scenario, err := resolveScenario(cmd)
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		if !isValidOutputFormat(outputFormat) {
			logrus.Fatalf("Unknown output format %q (valid: table, json)", outputFormat)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q (valid: none, slices)", traceLevel)
		}

		opts := scenario.Options()
		opts.TraceLevel = trace.TraceLevel(traceLevel)

		batch, err := workload.GenerateFromScenario(scenario)
		if err != nil {
			logrus.Fatalf("Request generation failed: %v", err)
		}
		logrus.Infof("Generated %d requests with seed %d", len(batch), scenario.Seed)

		res, err := sim.Simulate(batch, sim.Algorithm(scenario.Algorithm), opts)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		if err := writeRunReport(os.Stdout, batch, res, outputFormat); err != nil {
			logrus.Fatalf("Writing report failed: %v", err)
		}

		if res.Trace.Enabled() {
			writer := trace.NewCSVTraceWriter(traceFile)
			if err := writer.Write(res.Trace); err != nil {
				logrus.Fatalf("Writing trace failed: %v", err)
			}
			logrus.Infof("Service trace written to %s", writer.Path())
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	registerScenarioFlags(runCmd)
	runCmd.Flags().StringVar(&algorithm, "algorithm", string(sim.AlgorithmRoundRobin), "Scheduling algorithm (round_robin, priority, sjf)")
	runCmd.Flags().BoolVar(&preemptive, "preemptive", false, "Use the preemptive selection variant (priority, sjf)")
	runCmd.Flags().StringVar(&outputFormat, "output", "table", "Report format (table, json)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Service trace level (none, slices)")
	runCmd.Flags().StringVar(&traceFile, "trace-file", "", "CSV file for the service trace (default: websched_trace_<id>.csv)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
