package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	sim "github.com/inference-sim/websched/sim"
)

var validOutputFormats = map[string]bool{"table": true, "json": true}

func isValidOutputFormat(format string) bool {
	return validOutputFormats[format]
}

// writeRunReport renders one simulation run. The table format shows the
// generated batch, the completion order and the metrics; json prints metrics only.
func writeRunReport(w io.Writer, batch []*sim.Request, res *sim.Result, format string) error {
	metrics := sim.ComputeMetrics(res)
	if format == "json" {
		return metrics.Print(w)
	}

	_, _ = fmt.Fprintf(w, "%s Scheduling Results\n", res.Label())
	writeRequestTable(w, batch)
	writeCompletionTable(w, res)
	_, _ = fmt.Fprintf(w, "Total Execution Time: %.5f seconds\n", res.Duration.Seconds())
	return metrics.Print(w)
}

func writeRequestTable(w io.Writer, batch []*sim.Request) {
	_, _ = fmt.Fprintln(w, "Requests")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Processing Time", "Priority", "Arrival Time"})
	for _, req := range batch {
		table.Append([]string{
			fmt.Sprint(req.ID),
			fmt.Sprint(req.ProcessingTime),
			fmt.Sprint(req.Priority),
			fmt.Sprintf("%.2f", req.ArrivalTime),
		})
	}
	table.Render()
}

func writeCompletionTable(w io.Writer, res *sim.Result) {
	_, _ = fmt.Fprintln(w, "Completions")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Order", "ID", "Priority", "Processing Time", "Arrival Time", "Completed At"})
	for i, c := range res.Completions {
		table.Append([]string{
			fmt.Sprint(i + 1),
			fmt.Sprint(c.Request.ID),
			fmt.Sprint(c.Request.Priority),
			fmt.Sprint(c.Request.ProcessingTime),
			fmt.Sprintf("%.2f", c.Request.ArrivalTime),
			fmt.Sprint(c.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "Makespan", fmt.Sprint(res.Makespan)})
	table.Render()
}

// writeComparison renders one summary row per algorithm variant.
func writeComparison(w io.Writer, results []*sim.Result) {
	_, _ = fmt.Fprintln(w, "Algorithm comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Completed", "Makespan", "Mean Completion", "P90 Completion", "Mean Waiting", "Duration (s)"})
	for _, res := range results {
		m := sim.ComputeMetrics(res)
		table.Append([]string{
			m.Algorithm,
			fmt.Sprint(m.CompletedRequests),
			fmt.Sprint(m.Makespan),
			fmt.Sprintf("%.2f", m.MeanCompletionTime),
			fmt.Sprintf("%.2f", m.P90CompletionTime),
			fmt.Sprintf("%.2f", m.MeanWaitingTime),
			fmt.Sprintf("%.6f", m.SimulationDurationS),
		})
	}
	table.Render()
}
