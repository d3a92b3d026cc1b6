package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordTickAggregates(t *testing.T) {
	m := NewMetrics(PolicySmart, 4, 2)
	assert.NotEmpty(t, m.RunID)

	m.RecordTick([]Transfer{{From: 0, To: 1, Chunk: 0}})
	m.RecordTick([]Transfer{{From: 0, To: 2, Chunk: 0}, {From: 1, To: 3, Chunk: 0}})
	m.RecordTick(nil)

	assert.Equal(t, 3, m.TotalTransfers)
	assert.Equal(t, 2, m.PeakConcurrentSenders)
	assert.Equal(t, 1, m.IdleTicks)
	assert.InDelta(t, 1.0, m.TransfersPerTick(), 1e-9)
}

func TestMetrics_TransfersPerTickEmpty(t *testing.T) {
	m := NewMetrics(PolicyNaive, 2, 1)
	assert.Zero(t, m.TransfersPerTick())
}

func TestMetrics_DistinctRunIDs(t *testing.T) {
	a := NewMetrics(PolicyNaive, 2, 1)
	b := NewMetrics(PolicyNaive, 2, 1)
	assert.NotEqual(t, a.RunID, b.RunID)
}
