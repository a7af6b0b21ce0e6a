// sim/simulator.go
package sim

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/websched/sim/trace"
)

// Result is the packaged outcome of one simulation run.
type Result struct {
	Algorithm   Algorithm
	Options     Options
	Completions []CompletionRecord     // in finish order
	Makespan    int64                  // cumulative simulated time of the last completion
	Duration    time.Duration          // wall-clock time of the computation; informational only
	Trace       *trace.SimulationTrace // nil unless Options.TraceLevel is "slices"
}

// Label names the run the way reports show it, e.g. "sjf-preemptive".
func (r *Result) Label() string {
	return VariantLabel(r.Algorithm, r.Options.Preemptive)
}

// Simulate runs algorithm over a private copy of batch and returns the
// completion trace. The caller's requests are never mutated, so identical
// inputs always produce identical completions.
//
// Fails with ErrInvalidArgument on an unknown algorithm, a non-positive
// round-robin quantum, an unknown trace level or a malformed request.
func Simulate(batch []*Request, algorithm Algorithm, opts Options) (*Result, error) {
	if err := opts.Validate(algorithm); err != nil {
		return nil, err
	}
	if err := validateBatch(batch); err != nil {
		return nil, err
	}

	engine := NewEngine(CloneBatch(batch))
	var st *trace.SimulationTrace
	if opts.TraceLevel == trace.TraceLevelSlices {
		st = trace.NewSimulationTrace(trace.TraceConfig{Level: opts.TraceLevel})
		engine.SetTrace(st)
	}

	logrus.Infof("Starting %s simulation with %d requests", VariantLabel(algorithm, opts.Preemptive), len(batch))
	start := time.Now()
	var run *RunResult
	switch algorithm {
	case AlgorithmRoundRobin:
		var err error
		run, err = engine.RoundRobin(opts.Quantum)
		if err != nil {
			return nil, err
		}
	case AlgorithmPriority:
		run = engine.Priority(opts.Preemptive)
	case AlgorithmSJF:
		run = engine.ShortestJobFirst(opts.Preemptive)
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", algorithm))
	}
	duration := time.Since(start)
	logrus.Infof("[tick %07d] Simulation ended after %d completions", run.Makespan, len(run.Completions))

	return &Result{
		Algorithm:   algorithm,
		Options:     opts,
		Completions: run.Completions,
		Makespan:    run.Makespan,
		Duration:    duration,
		Trace:       st,
	}, nil
}

// validateBatch rejects nil requests and requests whose counters break
// 0 <= RemainingTime <= ProcessingTime.
func validateBatch(batch []*Request) error {
	for i, req := range batch {
		if req == nil {
			return fmt.Errorf("request at index %d is nil: %w", i, ErrInvalidArgument)
		}
		if req.ProcessingTime < 0 {
			return fmt.Errorf("request %d has negative processing time %d: %w", req.ID, req.ProcessingTime, ErrInvalidArgument)
		}
		if req.RemainingTime < 0 || req.RemainingTime > req.ProcessingTime {
			return fmt.Errorf("request %d has remaining time %d outside [0,%d]: %w",
				req.ID, req.RemainingTime, req.ProcessingTime, ErrInvalidArgument)
		}
	}
	return nil
}

// Variant is one algorithm/selection combination run by Compare.
type Variant struct {
	Algorithm  Algorithm
	Preemptive bool
}

// CompareVariants lists the variants run by Compare, in report order.
// Round-robin has no preemptive selection variant.
var CompareVariants = []Variant{
	{Algorithm: AlgorithmRoundRobin},
	{Algorithm: AlgorithmPriority},
	{Algorithm: AlgorithmPriority, Preemptive: true},
	{Algorithm: AlgorithmSJF},
	{Algorithm: AlgorithmSJF, Preemptive: true},
}

// VariantLabel renders an algorithm and its selection flag, e.g. "priority-preemptive".
func VariantLabel(algorithm Algorithm, preemptive bool) string {
	if preemptive && algorithm != AlgorithmRoundRobin {
		return string(algorithm) + "-preemptive"
	}
	return string(algorithm)
}

// Compare runs every entry of CompareVariants over its own copy of batch.
// opts supplies the quantum and trace level; its Preemptive flag is ignored.
func Compare(batch []*Request, opts Options) ([]*Result, error) {
	results := make([]*Result, 0, len(CompareVariants))
	for _, v := range CompareVariants {
		o := opts
		o.Preemptive = v.Preemptive
		res, err := Simulate(batch, v.Algorithm, o)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VariantLabel(v.Algorithm, v.Preemptive), err)
		}
		results = append(results, res)
	}
	return results, nil
}
