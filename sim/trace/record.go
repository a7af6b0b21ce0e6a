// Package trace provides service-trace recording for scheduling analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// SliceRecord captures one contiguous period of service granted to a request.
// Run-to-completion algorithms emit one slice per request; round-robin emits
// one per quantum.
type SliceRecord struct {
	RequestID int
	Start     int64 // cumulative simulated time when service began
	End       int64 // cumulative simulated time when service stopped
	Completed bool  // true if the request finished at End
}

// Duration returns the service granted in this slice.
func (r SliceRecord) Duration() int64 {
	return r.End - r.Start
}
