package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/inference-sim/websched/sim"
)

func sampleRun(t *testing.T) ([]*sim.Request, *sim.Result) {
	t.Helper()
	batch := []*sim.Request{
		sim.NewRequest(0, 9, 2, 0.25),
		sim.NewRequest(1, 1, 1, 1.5),
		sim.NewRequest(2, 4, 3, 2.75),
	}
	res, err := sim.Simulate(batch, sim.AlgorithmSJF, sim.DefaultOptions())
	require.NoError(t, err)
	return batch, res
}

func TestWriteRunReport_Table_IncludesBatchCompletionsAndMetrics(t *testing.T) {
	// GIVEN an SJF run over [9, 1, 4]
	batch, res := sampleRun(t)
	var buf bytes.Buffer

	// WHEN the table report is written
	require.NoError(t, writeRunReport(&buf, batch, res, "table"))

	// THEN batch rows, completion rows and the metrics JSON all appear
	out := buf.String()
	assert.Contains(t, out, "sjf Scheduling Results")
	assert.Contains(t, out, "0.25")
	assert.Contains(t, out, "14", "makespan must be shown")
	assert.Contains(t, out, "Total Execution Time:")
	assert.Contains(t, out, "=== Simulation Metrics ===")
	assert.Contains(t, out, `"completed_requests": 3`)
}

func TestWriteRunReport_JSON_MetricsOnly(t *testing.T) {
	batch, res := sampleRun(t)
	var buf bytes.Buffer

	require.NoError(t, writeRunReport(&buf, batch, res, "json"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "=== Simulation Metrics ==="))
	assert.Contains(t, out, `"makespan": 14`)
	assert.NotContains(t, out, "Scheduling Results")
}

func TestWriteComparison_OneRowPerVariant(t *testing.T) {
	batch, _ := sampleRun(t)
	results, err := sim.Compare(batch, sim.DefaultOptions())
	require.NoError(t, err)
	var buf bytes.Buffer

	writeComparison(&buf, results)

	out := buf.String()
	for _, label := range []string{"round_robin", "priority-preemptive", "sjf-preemptive"} {
		assert.Contains(t, out, label)
	}
}

func TestIsValidOutputFormat(t *testing.T) {
	assert.True(t, isValidOutputFormat("table"))
	assert.True(t, isValidOutputFormat("json"))
	assert.False(t, isValidOutputFormat("csv"))
	assert.False(t, isValidOutputFormat(""))
}
