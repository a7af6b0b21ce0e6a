package sim

import (
	"fmt"
)

// SelectionPolicy decides which waiting request runs next under the
// run-to-completion algorithms (priority and shortest-job-first).
// Less must be a strict total order; every implementation falls back to
// ascending ID so that selection is deterministic.
type SelectionPolicy interface {
	Less(a, b *Request) bool
}

// PriorityPolicy orders by Priority (ascending), then by ID.
type PriorityPolicy struct{}

func (p *PriorityPolicy) Less(a, b *Request) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ID < b.ID
}

// PreemptivePriorityPolicy orders by Priority, then by ArrivalTime, then by ID.
// It only changes which request is picked; the pick still runs to completion.
type PreemptivePriorityPolicy struct{}

func (p *PreemptivePriorityPolicy) Less(a, b *Request) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

// SJFPolicy orders by ProcessingTime (ascending, shortest first), then by ID.
// Warning: SJF can starve long requests when short ones keep arriving.
type SJFPolicy struct{}

func (s *SJFPolicy) Less(a, b *Request) bool {
	if a.ProcessingTime != b.ProcessingTime {
		return a.ProcessingTime < b.ProcessingTime
	}
	return a.ID < b.ID
}

// ShortestRemainingPolicy orders by RemainingTime, then by ArrivalTime, then by ID.
// Selection only: the chosen request is not time-sliced.
type ShortestRemainingPolicy struct{}

func (s *ShortestRemainingPolicy) Less(a, b *Request) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

// NewSelectionPolicy returns the selection policy for a run-to-completion algorithm.
// Panics when called for round-robin or an unknown algorithm; callers validate first.
func NewSelectionPolicy(algorithm Algorithm, preemptive bool) SelectionPolicy {
	switch algorithm {
	case AlgorithmPriority:
		if preemptive {
			return &PreemptivePriorityPolicy{}
		}
		return &PriorityPolicy{}
	case AlgorithmSJF:
		if preemptive {
			return &ShortestRemainingPolicy{}
		}
		return &SJFPolicy{}
	default:
		panic(fmt.Sprintf("no selection policy for algorithm %q", algorithm))
	}
}

// selectNext returns the index of the minimum request under policy.
// Returns -1 for an empty slice.
func selectNext(reqs []*Request, policy SelectionPolicy) int {
	best := -1
	for i, r := range reqs {
		if best < 0 || policy.Less(r, reqs[best]) {
			best = i
		}
	}
	return best
}
