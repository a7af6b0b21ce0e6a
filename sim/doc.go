// Package sim provides the scheduling-simulation engine for websched.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - request.go: Request fields, RemainingTime invariant, CompletionRecord
//   - engine.go: the round-robin, priority and shortest-job-first algorithms
//   - simulator.go: Simulate, which validates options, copies the batch and runs the engine
//
// # Architecture
//
// The sim package holds the engine and its configuration; helpers live in
// sub-packages:
//   - sim/workload/: seeded request batch generation
//   - sim/trace/: service-slice recording, summaries and CSV export
//
// # Selection Rules
//
// Priority and SJF run each selected request to completion. The preemptive
// flag only changes the selection key:
//   - priority: (Priority, ID); preemptive (Priority, ArrivalTime, ID)
//   - sjf: (ProcessingTime, ID); preemptive (RemainingTime, ArrivalTime, ID)
//
// Round-robin is the only algorithm that serves a request in several slices.
// No algorithm gates service on ArrivalTime: every request in the batch is
// treated as present from tick 0.
package sim
