package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest_RemainingStartsAtProcessingTime(t *testing.T) {
	// GIVEN required field values
	// WHEN NewRequest is called
	req := NewRequest(3, 7, 2, 1.5)

	// THEN fields MUST match and the request is not complete
	assert.Equal(t, 3, req.ID)
	assert.Equal(t, int64(7), req.ProcessingTime)
	assert.Equal(t, 2, req.Priority)
	assert.Equal(t, 1.5, req.ArrivalTime)
	assert.Equal(t, int64(7), req.RemainingTime)
	assert.False(t, req.IsComplete())
}

func TestRequest_String_MatchesReportFormat(t *testing.T) {
	req := NewRequest(4, 6, 1, 12.5)

	assert.Equal(t, "Request 4 (Priority: 1, Time: 6, Arrival: 12.50)", req.String())
}

func TestRequest_Clone_IsIndependent(t *testing.T) {
	orig := NewRequest(1, 5, 1, 0)
	c := orig.Clone()

	c.RemainingTime = 0

	assert.Equal(t, int64(5), orig.RemainingTime, "mutating the clone changed the original")
	assert.NotSame(t, orig, c)
}

func TestCloneBatch_CopiesEveryRequest(t *testing.T) {
	batch := []*Request{NewRequest(0, 2, 1, 0), NewRequest(1, 3, 1, 1)}

	out := CloneBatch(batch)

	assert.Len(t, out, 2)
	for i := range batch {
		assert.Equal(t, *batch[i], *out[i])
		assert.NotSame(t, batch[i], out[i])
	}
}

func TestCompletionRecord_String(t *testing.T) {
	rec := CompletionRecord{Request: NewRequest(2, 3, 5, 0.5), CompletionTime: 9}

	assert.Equal(t, "Request 2 (Priority: 5, Time: 3, Arrival: 0.50) - Completed at: 9", rec.String())
}
