package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/websched/sim/internal/testutil"
	"github.com/inference-sim/websched/sim/trace"
)

// randomBatch builds a batch with the default draw ranges without importing sim/workload.
func randomBatch(seed int64, n int) []*Request {
	rng := rand.New(rand.NewSource(seed))
	batch := make([]*Request, n)
	for i := range batch {
		batch[i] = NewRequest(i, 1+rng.Int63n(10), 1+rng.Intn(5), rng.Float64()*50)
	}
	return batch
}

func TestSimulate_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			// GIVEN the golden batch
			batch := make([]*Request, len(tc.Requests))
			for i, r := range tc.Requests {
				batch[i] = NewRequest(r.ID, r.ProcessingTime, r.Priority, r.ArrivalTime)
			}
			algorithm, err := ParseAlgorithm(tc.Algorithm)
			require.NoError(t, err)
			opts := Options{Quantum: tc.Quantum, Preemptive: tc.Preemptive, TraceLevel: trace.TraceLevelSlices}

			// WHEN simulated
			res, err := Simulate(batch, algorithm, opts)
			require.NoError(t, err)

			// THEN completions match in finish order
			require.Len(t, res.Completions, len(tc.Completions))
			for i, want := range tc.Completions {
				got := res.Completions[i]
				assert.Equal(t, want.ID, got.Request.ID, "completion[%d] id", i)
				assert.Equal(t, want.Time, got.CompletionTime, "completion[%d] time", i)
			}
			assert.Equal(t, tc.Makespan, res.Makespan)
			assert.Len(t, res.Trace.Slices, tc.Slices)
		})
	}
}

func TestSimulate_EveryRequestCompletesExactlyOnce(t *testing.T) {
	batch := randomBatch(42, 40)

	for _, v := range CompareVariants {
		t.Run(VariantLabel(v.Algorithm, v.Preemptive), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Preemptive = v.Preemptive

			res, err := Simulate(batch, v.Algorithm, opts)
			require.NoError(t, err)

			// THEN there is one completion per request, each ID once
			require.Len(t, res.Completions, len(batch))
			seen := make(map[int]int)
			var total int64
			for _, c := range res.Completions {
				seen[c.Request.ID]++
				assert.True(t, c.Request.IsComplete())
			}
			for _, req := range batch {
				assert.Equal(t, 1, seen[req.ID], "request %d completion count", req.ID)
				total += req.ProcessingTime
			}

			// AND completion times never decrease and the makespan is the total demand
			for i := 1; i < len(res.Completions); i++ {
				assert.LessOrEqual(t, res.Completions[i-1].CompletionTime, res.Completions[i].CompletionTime)
			}
			assert.Equal(t, total, res.Makespan)
			assert.Equal(t, res.Completions[len(res.Completions)-1].CompletionTime, res.Makespan)
		})
	}
}

func TestSimulate_Idempotent_CallerBatchUntouched(t *testing.T) {
	// GIVEN one batch simulated twice
	batch := randomBatch(7, 25)
	snapshot := CloneBatch(batch)
	opts := Options{Quantum: 3}

	r1, err := Simulate(batch, AlgorithmRoundRobin, opts)
	require.NoError(t, err)
	r2, err := Simulate(batch, AlgorithmRoundRobin, opts)
	require.NoError(t, err)

	// THEN both traces are identical
	require.Len(t, r2.Completions, len(r1.Completions))
	for i := range r1.Completions {
		assert.Equal(t, r1.Completions[i].Request.ID, r2.Completions[i].Request.ID)
		assert.Equal(t, r1.Completions[i].CompletionTime, r2.Completions[i].CompletionTime)
	}

	// AND the caller's requests keep their remaining time
	for i := range batch {
		assert.Equal(t, *snapshot[i], *batch[i])
	}
}

func TestSimulate_UnknownAlgorithm_ReturnsInvalidArgument(t *testing.T) {
	res, err := Simulate(batchOf(1, 2), Algorithm("fcfs"), DefaultOptions())

	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
}

func TestSimulate_InvalidQuantum_ReturnsInvalidArgument(t *testing.T) {
	for _, q := range []int64{0, -2} {
		res, err := Simulate(batchOf(1, 2), AlgorithmRoundRobin, Options{Quantum: q})

		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestSimulate_QuantumIgnoredOutsideRoundRobin(t *testing.T) {
	res, err := Simulate(batchOf(2, 1), AlgorithmSJF, Options{Quantum: 0})

	require.NoError(t, err)
	assert.Len(t, res.Completions, 2)
}

func TestSimulate_InvalidTraceLevel_ReturnsInvalidArgument(t *testing.T) {
	_, err := Simulate(batchOf(1), AlgorithmSJF, Options{TraceLevel: "verbose"})

	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSimulate_MalformedBatch_ReturnsInvalidArgument(t *testing.T) {
	negative := NewRequest(1, -3, 1, 0)
	overRemaining := NewRequest(2, 3, 1, 0)
	overRemaining.RemainingTime = 4

	tests := []struct {
		name  string
		batch []*Request
	}{
		{"nil request", []*Request{NewRequest(0, 1, 1, 0), nil}},
		{"negative processing time", []*Request{negative}},
		{"remaining above processing", []*Request{overRemaining}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Simulate(tt.batch, AlgorithmPriority, DefaultOptions())
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSimulate_TraceOnlyWhenRequested(t *testing.T) {
	res, err := Simulate(batchOf(3), AlgorithmRoundRobin, DefaultOptions())
	require.NoError(t, err)
	assert.Nil(t, res.Trace)

	opts := DefaultOptions()
	opts.TraceLevel = trace.TraceLevelSlices
	res, err = Simulate(batchOf(3), AlgorithmRoundRobin, opts)
	require.NoError(t, err)
	require.NotNil(t, res.Trace)
	assert.Len(t, res.Trace.Slices, 2)
}

func TestSimulate_ResultCarriesOptionsAndLabel(t *testing.T) {
	res, err := Simulate(batchOf(1), AlgorithmPriority, Options{Preemptive: true})
	require.NoError(t, err)

	assert.Equal(t, AlgorithmPriority, res.Algorithm)
	assert.True(t, res.Options.Preemptive)
	assert.Equal(t, "priority-preemptive", res.Label())
	assert.GreaterOrEqual(t, int64(res.Duration), int64(0))
}

func TestCompare_RunsAllVariantsInOrder(t *testing.T) {
	batch := randomBatch(3, 10)

	results, err := Compare(batch, DefaultOptions())
	require.NoError(t, err)

	want := []string{"round_robin", "priority", "priority-preemptive", "sjf", "sjf-preemptive"}
	require.Len(t, results, len(want))
	for i, res := range results {
		assert.Equal(t, want[i], res.Label())
		assert.Len(t, res.Completions, len(batch))
	}
}

func TestCompare_InvalidQuantum_NamesVariant(t *testing.T) {
	_, err := Compare(batchOf(1), Options{Quantum: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "round_robin")
}

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "round_robin", VariantLabel(AlgorithmRoundRobin, true))
	assert.Equal(t, "sjf", VariantLabel(AlgorithmSJF, false))
	assert.Equal(t, "sjf-preemptive", VariantLabel(AlgorithmSJF, true))
}
