package sim

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Metrics aggregates statistics about a single simulation run for final
// reporting. Useful for comparing policy efficiency and debugging behavior
// over time.
type Metrics struct {
	RunID      string `json:"run_id"`
	Policy     string `json:"policy"`
	NodeCount  int    `json:"node_count"`
	ChunkCount int    `json:"chunk_count"`

	// TotalTicks is the number of ticks executed so far. After a completed
	// run it equals the total propagation cycles.
	TotalTicks int `json:"total_ticks"`
	// TotalTransfers counts every chunk transfer across the run. For the
	// naive policy this equals (N-1)*C; the smart policy performs the same
	// number of transfers in far fewer ticks.
	TotalTransfers int `json:"total_transfers"`
	// PeakConcurrentSenders is the largest number of nodes transmitting in
	// a single tick.
	PeakConcurrentSenders int `json:"peak_concurrent_senders"`
	// IdleTicks counts ticks in which no transfer occurred.
	IdleTicks int `json:"idle_ticks"`
}

// NewMetrics creates a Metrics with a fresh run identifier.
func NewMetrics(policy string, nodeCount, chunkCount int) *Metrics {
	return &Metrics{
		RunID:      uuid.NewString(),
		Policy:     policy,
		NodeCount:  nodeCount,
		ChunkCount: chunkCount,
	}
}

// RecordTick accumulates one tick's transfers into the aggregates.
func (m *Metrics) RecordTick(transfers []Transfer) {
	m.TotalTicks++
	m.TotalTransfers += len(transfers)
	if len(transfers) > m.PeakConcurrentSenders {
		m.PeakConcurrentSenders = len(transfers)
	}
	if len(transfers) == 0 {
		m.IdleTicks++
	}
}

// TransfersPerTick returns the mean transfer count across recorded ticks.
func (m *Metrics) TransfersPerTick() float64 {
	if m.TotalTicks == 0 {
		return 0
	}
	return float64(m.TotalTransfers) / float64(m.TotalTicks)
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(elapsed time.Duration) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Run ID               : %s\n", m.RunID)
	fmt.Printf("Policy               : %s\n", m.Policy)
	fmt.Printf("Nodes x Chunks       : %d x %d\n", m.NodeCount, m.ChunkCount)
	fmt.Printf("Ticks Executed       : %d\n", m.TotalTicks)
	fmt.Printf("Total Transfers      : %d\n", m.TotalTransfers)
	fmt.Printf("Transfers per Tick   : %.2f\n", m.TransfersPerTick())
	fmt.Printf("Peak Senders per Tick: %d\n", m.PeakConcurrentSenders)
	fmt.Printf("Idle Ticks           : %d\n", m.IdleTicks)
	fmt.Printf("Wall Time            : %s\n", elapsed)
}
