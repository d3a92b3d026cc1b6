package trace

// TraceSummary aggregates statistics from a TransferTrace.
type TraceSummary struct {
	TotalTransfers int `json:"total_transfers"`
	// Ticks is the number of distinct ticks with at least one transfer.
	Ticks int `json:"ticks"`
	// MaxTransfersPerTick is the busiest tick's transfer count.
	MaxTransfersPerTick int `json:"max_transfers_per_tick"`
	// UniqueSenders is the number of distinct nodes that ever sent.
	UniqueSenders int `json:"unique_senders"`
	// SenderDistribution maps sender node id → count of transfers sent.
	SenderDistribution map[int]int `json:"sender_distribution"`
}

// Summarize computes aggregate statistics from a TransferTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(tt *TransferTrace) *TraceSummary {
	summary := &TraceSummary{
		SenderDistribution: make(map[int]int),
	}
	if tt == nil {
		return summary
	}

	summary.TotalTransfers = len(tt.Records)

	perTick := make(map[int]int)
	for _, r := range tt.Records {
		summary.SenderDistribution[r.From]++
		perTick[r.Tick]++
	}
	summary.Ticks = len(perTick)
	for _, count := range perTick {
		if count > summary.MaxTransfersPerTick {
			summary.MaxTransfersPerTick = count
		}
	}
	summary.UniqueSenders = len(summary.SenderDistribution)

	return summary
}
