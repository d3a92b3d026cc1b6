package sim

// NaivePolicy models a single perpetual sender: only the origin (node 0)
// ever transmits, serving the other N-1 nodes one chunk per tick in strict
// round-robin order. Chunk k goes to every node before chunk k+1 starts, so
// full distribution always takes exactly (N-1)*C ticks.
type NaivePolicy struct{}

// Name implements TransferPolicy.
func (p *NaivePolicy) Name() string { return PolicyNaive }

// Apply implements TransferPolicy for NaivePolicy.
//
// At tick t the receiver is t mod (N-1) + 1 and the chunk is t / (N-1).
// Once every chunk has been scheduled (chunk index ≥ C) the policy is a
// safe no-op and the origin stays idle; the engine normally detects
// completion before that point is reached.
func (p *NaivePolicy) Apply(state *NetworkState, tick int) []Transfer {
	fanout := state.NodeCount() - 1
	target := tick%fanout + 1
	chunk := tick / fanout

	if chunk >= state.ChunkCount() {
		return nil
	}

	state.Nodes[target].Chunks[chunk].Present = true
	origin := state.Nodes[0]
	origin.Transmitting = true
	origin.TransmittingTo = target

	return []Transfer{{From: 0, To: target, Chunk: chunk}}
}
