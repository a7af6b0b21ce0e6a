// Tracks run-level and per-request scheduling metrics such as makespan,
// completion-time percentiles and waiting time.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/inference-sim/websched/sim/trace"
)

// Metrics aggregates statistics about one simulation run for final reporting.
type Metrics struct {
	Algorithm          string  `json:"algorithm"`
	CompletedRequests  int     `json:"completed_requests"`
	Makespan           int64   `json:"makespan"`
	MeanCompletionTime float64 `json:"mean_completion_time"`
	P50CompletionTime  float64 `json:"p50_completion_time"`
	P90CompletionTime  float64 `json:"p90_completion_time"`
	P99CompletionTime  float64 `json:"p99_completion_time"`
	// Completion minus ProcessingTime: time spent not being served since tick 0.
	MeanWaitingTime float64 `json:"mean_waiting_time"`
	// Completion minus ArrivalTime. Arrival does not gate service, so this can be negative.
	MeanTurnaroundTime  float64 `json:"mean_turnaround_time"`
	SimulationDurationS float64 `json:"simulation_duration_s"`

	// Populated only when the run was traced.
	ServiceSlices   int `json:"service_slices,omitempty"`
	Requeues        int `json:"requeues,omitempty"`
	ContextSwitches int `json:"context_switches,omitempty"`
}

// ComputeMetrics derives Metrics from a simulation result.
func ComputeMetrics(res *Result) *Metrics {
	m := &Metrics{
		Algorithm:           res.Label(),
		CompletedRequests:   len(res.Completions),
		Makespan:            res.Makespan,
		SimulationDurationS: res.Duration.Seconds(),
	}

	completions := make([]int64, 0, len(res.Completions))
	waits := make([]int64, 0, len(res.Completions))
	turnarounds := make([]float64, 0, len(res.Completions))
	for _, c := range res.Completions {
		completions = append(completions, c.CompletionTime)
		waits = append(waits, c.CompletionTime-c.Request.ProcessingTime)
		turnarounds = append(turnarounds, float64(c.CompletionTime)-c.Request.ArrivalTime)
	}
	sort.Slice(completions, func(i, j int) bool { return completions[i] < completions[j] })

	m.MeanCompletionTime = CalculateMean(completions)
	m.P50CompletionTime = CalculatePercentile(completions, 50)
	m.P90CompletionTime = CalculatePercentile(completions, 90)
	m.P99CompletionTime = CalculatePercentile(completions, 99)
	m.MeanWaitingTime = CalculateMean(waits)
	m.MeanTurnaroundTime = CalculateMean(turnarounds)

	if res.Trace.Enabled() {
		summary := trace.Summarize(res.Trace)
		m.ServiceSlices = summary.TotalSlices
		m.Requeues = summary.Requeues
		m.ContextSwitches = summary.ContextSwitches
	}
	return m
}

// Print writes the metrics as indented JSON under a header line.
func (m *Metrics) Print(w io.Writer) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metrics: %w", err)
	}
	if _, err := fmt.Fprintf(w, "=== Simulation Metrics ===\n%s\n", data); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}
