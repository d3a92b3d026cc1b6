package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaivePolicy_TwoNodesOneChunk_CompletesImmediately(t *testing.T) {
	// GIVEN the smallest possible network
	state, err := NewNetworkState(2, 1)
	assert.NoError(t, err)
	policy := &NaivePolicy{}

	// WHEN the first tick runs
	transfers := policy.Apply(state, 0)

	// THEN chunk 0 moved to node 1 and the network is complete
	assert.Equal(t, []Transfer{{From: 0, To: 1, Chunk: 0}}, transfers)
	assert.True(t, IsComplete(state))
	assert.True(t, state.Nodes[0].Transmitting)
	assert.Equal(t, 1, state.Nodes[0].TransmittingTo)
}

func TestNaivePolicy_RoundRobinOrder(t *testing.T) {
	// GIVEN a 3-node, 2-chunk network
	state, err := NewNetworkState(3, 2)
	assert.NoError(t, err)
	policy := &NaivePolicy{}

	// WHEN the simulation runs to completion
	var got []Transfer
	for tick := 0; !IsComplete(state); tick++ {
		state.ClearTransmissions()
		got = append(got, policy.Apply(state, tick)...)
	}

	// THEN each chunk visits every node before the next chunk starts
	want := []Transfer{
		{From: 0, To: 1, Chunk: 0},
		{From: 0, To: 2, Chunk: 0},
		{From: 0, To: 1, Chunk: 1},
		{From: 0, To: 2, Chunk: 1},
	}
	assert.Equal(t, want, got)
}

func TestNaivePolicy_TargetAndChunkFormulas(t *testing.T) {
	state, err := NewNetworkState(5, 3)
	assert.NoError(t, err)
	policy := &NaivePolicy{}

	fanout := state.NodeCount() - 1
	for tick := 0; tick < fanout*state.ChunkCount(); tick++ {
		state.ClearTransmissions()
		transfers := policy.Apply(state, tick)
		if assert.Len(t, transfers, 1, "tick %d", tick) {
			assert.Equal(t, tick%fanout+1, transfers[0].To, "tick %d target", tick)
			assert.Equal(t, tick/fanout, transfers[0].Chunk, "tick %d chunk", tick)
		}
	}
	assert.True(t, IsComplete(state))
}

func TestNaivePolicy_ExhaustedScheduleIsNoOp(t *testing.T) {
	// GIVEN a network whose entire schedule has already been played
	state, err := NewNetworkState(3, 2)
	assert.NoError(t, err)
	policy := &NaivePolicy{}
	lastTick := (state.NodeCount() - 1) * state.ChunkCount() // first out-of-range tick

	// WHEN the policy runs past the end of the schedule
	state.ClearTransmissions()
	transfers := policy.Apply(state, lastTick)

	// THEN nothing happens and the origin stays idle
	assert.Empty(t, transfers)
	assert.False(t, state.Nodes[0].Transmitting)
	assert.Equal(t, NoTarget, state.Nodes[0].TransmittingTo)
}
