package trace

import (
	"encoding/json"
	"fmt"
	"os"
)

// TransferTrace collects transfer records during a simulation run.
type TransferTrace struct {
	RunID      string           `json:"run_id"`
	Policy     string           `json:"policy"`
	NodeCount  int              `json:"node_count"`
	ChunkCount int              `json:"chunk_count"`
	Records    []TransferRecord `json:"records"`
}

// NewTransferTrace creates a TransferTrace ready for recording.
func NewTransferTrace(runID, policy string, nodeCount, chunkCount int) *TransferTrace {
	return &TransferTrace{
		RunID:      runID,
		Policy:     policy,
		NodeCount:  nodeCount,
		ChunkCount: chunkCount,
		Records:    make([]TransferRecord, 0),
	}
}

// Record appends a transfer record.
func (tt *TransferTrace) Record(record TransferRecord) {
	tt.Records = append(tt.Records, record)
}

// WriteJSON writes the trace and its summary to a file as indented JSON.
func (tt *TransferTrace) WriteJSON(path string) error {
	out := struct {
		*TransferTrace
		Summary *TraceSummary `json:"summary"`
	}{tt, Summarize(tt)}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}
