package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNetworkState_OriginHoldsEverything(t *testing.T) {
	state, err := NewNetworkState(4, 3)
	assert.NoError(t, err)
	assert.Equal(t, 4, state.NodeCount())
	assert.Equal(t, 3, state.ChunkCount())

	assert.True(t, state.Nodes[0].IsComplete(), "origin must start with all chunks")
	for _, n := range state.Nodes[1:] {
		assert.Equal(t, 0, n.PresentCount(), "node %d must start empty", n.ID)
	}
	assert.Equal(t, 3, state.TotalPresent())
	assert.Equal(t, 1, state.NodesWithData())
}

func TestNewNetworkState_ChunkIdentity(t *testing.T) {
	state, err := NewNetworkState(2, 4)
	assert.NoError(t, err)
	for _, n := range state.Nodes {
		for j, c := range n.Chunks {
			assert.Equal(t, j, c.ID)
		}
		assert.False(t, n.Transmitting)
		assert.Equal(t, NoTarget, n.TransmittingTo)
	}
}

func TestNewNetworkState_RejectsBadParameters(t *testing.T) {
	for _, tc := range []struct {
		name   string
		nodes  int
		chunks int
	}{
		{"one node", 1, 16},
		{"zero nodes", 0, 16},
		{"zero chunks", 2, 0},
		{"negative chunks", 2, -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewNetworkState(tc.nodes, tc.chunks)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestNetworkState_Validate_DetectsRaggedChunks(t *testing.T) {
	state, err := NewNetworkState(3, 2)
	assert.NoError(t, err)
	assert.NoError(t, state.Validate())

	state.Nodes[2].Chunks = state.Nodes[2].Chunks[:1]
	assert.ErrorIs(t, state.Validate(), ErrInvalidState)
}

func TestNetworkState_Clone_IsIndependent(t *testing.T) {
	// GIVEN a fresh state and its clone
	state, err := NewNetworkState(3, 2)
	assert.NoError(t, err)
	clone := state.Clone()
	assert.Equal(t, state, clone)

	// WHEN the original is mutated
	state.Nodes[1].Chunks[0].Present = true
	state.Nodes[0].Transmitting = true
	state.Nodes[0].TransmittingTo = 1

	// THEN the clone is unaffected
	assert.False(t, clone.Nodes[1].Chunks[0].Present)
	assert.False(t, clone.Nodes[0].Transmitting)
	assert.Equal(t, NoTarget, clone.Nodes[0].TransmittingTo)
}

func TestNode_FirstNeededFrom(t *testing.T) {
	state, err := NewNetworkState(2, 3)
	assert.NoError(t, err)
	origin, peer := state.Nodes[0], state.Nodes[1]

	// Peer needs every chunk: lowest index wins.
	assert.Equal(t, 0, peer.FirstNeededFrom(origin))

	peer.Chunks[0].Present = true
	assert.Equal(t, 1, peer.FirstNeededFrom(origin))

	// Origin needs nothing from the peer.
	assert.Equal(t, -1, origin.FirstNeededFrom(peer))
}

func TestIsComplete(t *testing.T) {
	state, err := NewNetworkState(2, 2)
	assert.NoError(t, err)
	assert.False(t, IsComplete(state))

	state.Nodes[1].Chunks[0].Present = true
	assert.False(t, IsComplete(state), "partial state must not be complete")

	state.Nodes[1].Chunks[1].Present = true
	assert.True(t, IsComplete(state))
	// Pure predicate: repeated calls agree and mutate nothing.
	assert.True(t, IsComplete(state))
}

func TestClearTransmissions(t *testing.T) {
	state, err := NewNetworkState(3, 1)
	assert.NoError(t, err)
	state.Nodes[0].Transmitting = true
	state.Nodes[0].TransmittingTo = 2

	state.ClearTransmissions()

	for _, n := range state.Nodes {
		assert.False(t, n.Transmitting)
		assert.Equal(t, NoTarget, n.TransmittingTo)
	}
}
