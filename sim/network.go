package sim

import (
	"errors"
	"fmt"
)

// Default simulation parameters, matching the reference deployment.
const (
	DefaultNodeCount  = 50
	DefaultChunkCount = 16
)

// NoTarget is the TransmittingTo value of a node that is not sending this tick.
const NoTarget = -1

// ErrConfig reports invalid initialization parameters.
var ErrConfig = errors.New("invalid configuration")

// ErrInvalidState reports a NetworkState whose per-node chunk counts are
// inconsistent. Defensive only; it cannot occur under correct use.
var ErrInvalidState = errors.New("invalid network state")

// Chunk is one indexed unit of the dataset being propagated. Identity is
// immutable; Present transitions false→true exactly once and never reverts.
type Chunk struct {
	ID      int  `json:"id"`
	Present bool `json:"present"`
}

// Node is a participant (domain term "server") holding a subset of chunks.
// Transmitting and TransmittingTo are tick-scoped annotations describing the
// most recent tick's activity for external renderers; the engine resets them
// at the start of every Step before the policy runs.
type Node struct {
	ID             int     `json:"id"`
	Chunks         []Chunk `json:"chunks"`
	Transmitting   bool    `json:"transmitting"`
	TransmittingTo int     `json:"transmitting_to"` // NoTarget when idle
}

// PresentCount returns how many of the node's chunks are present.
func (n *Node) PresentCount() int {
	count := 0
	for _, c := range n.Chunks {
		if c.Present {
			count++
		}
	}
	return count
}

// HasData reports whether the node holds at least one chunk.
func (n *Node) HasData() bool {
	for _, c := range n.Chunks {
		if c.Present {
			return true
		}
	}
	return false
}

// IsComplete reports whether the node holds every chunk.
func (n *Node) IsComplete() bool {
	return n.PresentCount() == len(n.Chunks)
}

// FirstNeededFrom returns the lowest-indexed chunk that src has and n lacks,
// or -1 if src has nothing n needs. Used both for receiver eligibility and
// for selecting which chunk to transfer.
func (n *Node) FirstNeededFrom(src *Node) int {
	for i := range n.Chunks {
		if src.Chunks[i].Present && !n.Chunks[i].Present {
			return i
		}
	}
	return -1
}

// NetworkState is the full state of the simulated network: an ordered
// collection of nodes indexed 0..N-1. Node 0 is the origin and starts with
// every chunk; all others start empty.
type NetworkState struct {
	Nodes []*Node `json:"nodes"`
}

// NewNetworkState creates the initial network: node 0 holds all chunkCount
// chunks, the remaining nodeCount-1 nodes hold none.
func NewNetworkState(nodeCount, chunkCount int) (*NetworkState, error) {
	if nodeCount < 2 {
		return nil, fmt.Errorf("%w: node count must be at least 2, got %d", ErrConfig, nodeCount)
	}
	if chunkCount < 1 {
		return nil, fmt.Errorf("%w: chunk count must be at least 1, got %d", ErrConfig, chunkCount)
	}

	state := &NetworkState{Nodes: make([]*Node, nodeCount)}
	for i := 0; i < nodeCount; i++ {
		chunks := make([]Chunk, chunkCount)
		for j := 0; j < chunkCount; j++ {
			chunks[j] = Chunk{ID: j, Present: i == 0}
		}
		state.Nodes[i] = &Node{ID: i, Chunks: chunks, TransmittingTo: NoTarget}
	}
	return state, nil
}

// NodeCount returns the number of nodes in the network.
func (s *NetworkState) NodeCount() int {
	return len(s.Nodes)
}

// ChunkCount returns the number of chunks per node.
func (s *NetworkState) ChunkCount() int {
	if len(s.Nodes) == 0 {
		return 0
	}
	return len(s.Nodes[0].Chunks)
}

// TotalPresent returns the total present-chunk count across the network.
// Non-decreasing tick-over-tick; reaches N*C exactly at completion.
func (s *NetworkState) TotalPresent() int {
	total := 0
	for _, n := range s.Nodes {
		total += n.PresentCount()
	}
	return total
}

// NodesWithData returns how many nodes hold at least one chunk.
func (s *NetworkState) NodesWithData() int {
	count := 0
	for _, n := range s.Nodes {
		if n.HasData() {
			count++
		}
	}
	return count
}

// Validate checks that every node carries the same chunk count.
func (s *NetworkState) Validate() error {
	if len(s.Nodes) < 2 {
		return fmt.Errorf("%w: %d nodes", ErrInvalidState, len(s.Nodes))
	}
	want := len(s.Nodes[0].Chunks)
	for _, n := range s.Nodes {
		if len(n.Chunks) != want {
			return fmt.Errorf("%w: node %d has %d chunks, want %d", ErrInvalidState, n.ID, len(n.Chunks), want)
		}
	}
	return nil
}

// ClearTransmissions resets the tick-scoped transmitting markers on all
// nodes. The engine calls this at the start of every Step.
func (s *NetworkState) ClearTransmissions() {
	for _, n := range s.Nodes {
		n.Transmitting = false
		n.TransmittingTo = NoTarget
	}
}

// Clone returns a deep copy of the state.
func (s *NetworkState) Clone() *NetworkState {
	out := &NetworkState{Nodes: make([]*Node, len(s.Nodes))}
	for i, n := range s.Nodes {
		copied := *n
		copied.Chunks = make([]Chunk, len(n.Chunks))
		copy(copied.Chunks, n.Chunks)
		out.Nodes[i] = &copied
	}
	return out
}

// IsComplete is the completion oracle: true iff every node holds every
// chunk. Pure; safe to call repeatedly.
func IsComplete(s *NetworkState) bool {
	for _, n := range s.Nodes {
		if !n.IsComplete() {
			return false
		}
	}
	return true
}
