package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/websched/sim"
	"github.com/inference-sim/websched/sim/workload"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Simulate every algorithm and selection variant on the same batch",
	Long: "Generate one request batch and run round_robin, priority, priority-preemptive, sjf " +
		"and sjf-preemptive over private copies of it, then print a side-by-side summary.",
	Run: func(cmd *cobra.Command, args []string) {
		scenario, err := resolveScenario(cmd)
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		batch, err := workload.GenerateFromScenario(scenario)
		if err != nil {
			logrus.Fatalf("Request generation failed: %v", err)
		}

		results, err := sim.Compare(batch, scenario.Options())
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		writeComparison(os.Stdout, results)
	},
}

func init() {
	registerScenarioFlags(compareCmd)

	rootCmd.AddCommand(compareCmd)
}
