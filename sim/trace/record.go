// Package trace provides transfer-trace recording for propagation analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// TransferRecord captures a single chunk transfer applied during a tick.
type TransferRecord struct {
	Tick  int `json:"tick"`
	From  int `json:"from"`
	To    int `json:"to"`
	Chunk int `json:"chunk"`
}
