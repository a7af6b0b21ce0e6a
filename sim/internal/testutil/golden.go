// Package testutil provides shared test infrastructure for the simulator.
// It holds the golden dataset types and assertion helpers used across
// sim/ and cmd/ test packages. It must not import sim/ (sim tests import it).
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is a hand-traced scheduling scenario with its expected outcome.
type GoldenTestCase struct {
	Name        string             `json:"name"`
	Algorithm   string             `json:"algorithm"`
	Quantum     int64              `json:"quantum"`
	Preemptive  bool               `json:"preemptive"`
	Requests    []GoldenRequest    `json:"requests"`
	Completions []GoldenCompletion `json:"completions"`
	Makespan    int64              `json:"makespan"`
	Slices      int                `json:"slices"` // expected number of service slices when traced
}

// GoldenRequest describes one input request of a golden case.
type GoldenRequest struct {
	ID             int     `json:"id"`
	ProcessingTime int64   `json:"processing_time"`
	Priority       int     `json:"priority"`
	ArrivalTime    float64 `json:"arrival_time"`
}

// GoldenCompletion is one expected completion record, in finish order.
type GoldenCompletion struct {
	ID   int   `json:"id"`
	Time int64 `json:"time"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset has no test cases")
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
