package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalSlices      int
	Completions      int
	Requeues         int // slices that ended without completing their request
	ContextSwitches  int // adjacent slices serving different requests
	BusyTime         int64
	SlicesPerRequest map[int]int // request ID → number of slices
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		SlicesPerRequest: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalSlices = len(st.Slices)
	for i, s := range st.Slices {
		summary.SlicesPerRequest[s.RequestID]++
		summary.BusyTime += s.Duration()
		if s.Completed {
			summary.Completions++
		} else {
			summary.Requeues++
		}
		if i > 0 && st.Slices[i-1].RequestID != s.RequestID {
			summary.ContextSwitches++
		}
	}

	return summary
}
