package sim

import "fmt"

// Recognized transfer policy names.
const (
	PolicyNaive = "naive"
	PolicySmart = "smart"
)

// ValidPolicies is the set of recognized transfer policy names.
// Shared by Scenario.Validate and NewTransferPolicy to avoid duplication.
var ValidPolicies = map[string]bool{PolicyNaive: true, PolicySmart: true}

// Transfer records one chunk moving from one node to another during a tick.
type Transfer struct {
	From  int // sender node id
	To    int // receiver node id
	Chunk int // chunk index transferred
}

// TransferPolicy decides which chunk transfers happen on a given tick.
//
// Apply mutates state in place: it sets the transferred chunks present on
// their receivers and marks each sender's transmitting annotations. It is
// called by the engine after transmitting markers have been cleared, with
// the 0-based tick index counted from simulation start. The returned slice
// lists the transfers performed, in application order; it is empty when no
// eligible transfer exists (never an error).
type TransferPolicy interface {
	Name() string
	Apply(state *NetworkState, tick int) []Transfer
}

// NewTransferPolicy creates a transfer policy by name.
func NewTransferPolicy(name string) (TransferPolicy, error) {
	switch name {
	case PolicyNaive:
		return &NaivePolicy{}, nil
	case PolicySmart:
		return &SmartPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown transfer policy %q", name)
	}
}
