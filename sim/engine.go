package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/websched/sim/trace"
)

// RunResult is the outcome of draining the engine's queue with one algorithm.
type RunResult struct {
	Completions []CompletionRecord // in finish order
	Makespan    int64              // cumulative simulated time when the queue emptied
}

// Engine holds the wait queue of a single simulation run and implements the
// scheduling algorithms as queue-draining procedures.
//
// The engine takes ownership of the requests it is given: RemainingTime is
// mutated in place. An Engine serves one run; once drained, further calls
// return an empty result.
type Engine struct {
	queue WaitQueue
	clock int64
	trace *trace.SimulationTrace
}

// NewEngine creates an engine whose queue is initialised from batch, in batch order.
func NewEngine(batch []*Request) *Engine {
	e := &Engine{}
	for _, req := range batch {
		e.queue.Enqueue(req)
	}
	return e
}

// SetTrace attaches a trace that receives one record per service slice.
// A nil trace disables recording.
func (e *Engine) SetTrace(st *trace.SimulationTrace) {
	e.trace = st
}

// Clock returns the cumulative simulated time.
func (e *Engine) Clock() int64 {
	return e.clock
}

// QueueLen returns the number of requests still owed service.
func (e *Engine) QueueLen() int {
	return e.queue.Len()
}

// RoundRobin serves the queue head for at most quantum ticks at a time,
// re-enqueueing unfinished requests at the tail. All requests are treated as
// present from time zero: ArrivalTime does not gate service.
func (e *Engine) RoundRobin(quantum int64) (*RunResult, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("round-robin quantum must be positive, got %d: %w", quantum, ErrInvalidArgument)
	}
	result := &RunResult{Completions: make([]CompletionRecord, 0, e.queue.Len())}
	for e.queue.Len() > 0 {
		req := e.queue.Dequeue()
		start := e.clock
		if req.RemainingTime <= quantum {
			e.clock += req.RemainingTime
			req.RemainingTime = 0
			e.recordSlice(req, start, true)
			result.Completions = append(result.Completions, e.complete(req))
			continue
		}
		e.clock += quantum
		req.RemainingTime -= quantum
		e.recordSlice(req, start, false)
		logrus.Tracef("[tick %07d] request %d requeued, remaining=%d", e.clock, req.ID, req.RemainingTime)
		e.queue.Enqueue(req)
	}
	result.Makespan = e.clock
	return result, nil
}

// Priority repeatedly runs the waiting request with the lowest Priority value
// to completion. With preemptive set, equal priorities are broken by earlier
// ArrivalTime; otherwise by lower ID.
func (e *Engine) Priority(preemptive bool) *RunResult {
	return e.runToCompletion(NewSelectionPolicy(AlgorithmPriority, preemptive))
}

// ShortestJobFirst repeatedly runs the waiting request with the smallest
// ProcessingTime to completion. With preemptive set the key becomes
// (RemainingTime, ArrivalTime); the request still runs to completion and is
// never partially served.
func (e *Engine) ShortestJobFirst(preemptive bool) *RunResult {
	return e.runToCompletion(NewSelectionPolicy(AlgorithmSJF, preemptive))
}

// runToCompletion drains the queue, each pick consuming its full ProcessingTime.
func (e *Engine) runToCompletion(policy SelectionPolicy) *RunResult {
	result := &RunResult{Completions: make([]CompletionRecord, 0, e.queue.Len())}
	for e.queue.Len() > 0 {
		req := e.queue.RemoveAt(selectNext(e.queue.Items(), policy))
		start := e.clock
		e.clock += req.ProcessingTime
		req.RemainingTime = 0
		e.recordSlice(req, start, true)
		result.Completions = append(result.Completions, e.complete(req))
	}
	result.Makespan = e.clock
	return result
}

func (e *Engine) complete(req *Request) CompletionRecord {
	logrus.Debugf("[tick %07d] request %d completed", e.clock, req.ID)
	return CompletionRecord{Request: req, CompletionTime: e.clock}
}

func (e *Engine) recordSlice(req *Request, start int64, completed bool) {
	if e.trace == nil || !e.trace.Enabled() {
		return
	}
	e.trace.RecordSlice(trace.SliceRecord{
		RequestID: req.ID,
		Start:     start,
		End:       e.clock,
		Completed: completed,
	})
}
