// Defines the Request struct that models a single request served by the simulated server.
// Tracks identity, service demand, priority, arrival time and remaining service time.

package sim

import (
	"fmt"
)

// Request models a single request's lifecycle in the simulation.
// Everything except RemainingTime is fixed at creation. RemainingTime is
// mutated only by the Engine and reaches zero exactly once, at completion.
type Request struct {
	ID             int     // Dense identifier assigned in generation order
	ProcessingTime int64   // Total service demand in ticks
	Priority       int     // Lower value = served first
	ArrivalTime    float64 // Modeled instant the request enters the system
	RemainingTime  int64   // Service still owed; starts at ProcessingTime
}

// NewRequest creates a Request with RemainingTime initialised to processingTime.
func NewRequest(id int, processingTime int64, priority int, arrivalTime float64) *Request {
	return &Request{
		ID:             id,
		ProcessingTime: processingTime,
		Priority:       priority,
		ArrivalTime:    arrivalTime,
		RemainingTime:  processingTime,
	}
}

// IsComplete reports whether the request has received all of its service.
func (req *Request) IsComplete() bool {
	return req.RemainingTime == 0
}

// Clone returns an independent copy of the request.
func (req *Request) Clone() *Request {
	c := *req
	return &c
}

// This method returns a human-readable string representation of a Request.
func (req Request) String() string {
	return fmt.Sprintf("Request %d (Priority: %d, Time: %d, Arrival: %.2f)", req.ID, req.Priority, req.ProcessingTime, req.ArrivalTime)
}

// CloneBatch deep-copies a batch so that a simulation run can mutate
// RemainingTime without touching the caller's requests.
func CloneBatch(batch []*Request) []*Request {
	out := make([]*Request, len(batch))
	for i, req := range batch {
		out[i] = req.Clone()
	}
	return out
}

// CompletionRecord pairs a completed request with the cumulative simulated
// time at which it finished.
type CompletionRecord struct {
	Request        *Request
	CompletionTime int64
}

func (c CompletionRecord) String() string {
	return fmt.Sprintf("%v - Completed at: %d", c.Request, c.CompletionTime)
}
