package sim

// SmartPolicy models cooperative distribution: every node holding at least
// one chunk offers to send, once per tick, to the neediest peer that still
// lacks something it has. The count of data-holding nodes can double each
// tick, so full distribution typically takes O(log N + C) ticks instead of
// the naive policy's O(N*C).
//
// Senders are processed in ascending node-id order against a state that is
// mutated as processing proceeds: a sender later in the pass observes the
// chunks its predecessors delivered earlier in the same tick. That ordering
// is part of the determinism contract, not an accident. A node that has
// sent this tick is excluded as a receiver, but a node that has only
// received is not — the same receiver may accept chunks from several
// senders within one tick.
type SmartPolicy struct{}

// Name implements TransferPolicy.
func (p *SmartPolicy) Name() string { return PolicySmart }

// Apply implements TransferPolicy for SmartPolicy.
func (p *SmartPolicy) Apply(state *NetworkState, tick int) []Transfer {
	// Snapshot the candidate senders before any transfer happens: nodes
	// holding data and not already marked transmitting. Nodes that first
	// receive data mid-tick wait until the next tick to send.
	senders := make([]*Node, 0, len(state.Nodes))
	for _, n := range state.Nodes {
		if n.HasData() && !n.Transmitting {
			senders = append(senders, n)
		}
	}

	var transfers []Transfer
	for _, src := range senders {
		best := p.pickReceiver(state, src)
		if best == nil {
			continue
		}

		chunk := best.FirstNeededFrom(src)
		best.Chunks[chunk].Present = true
		src.Transmitting = true
		src.TransmittingTo = best.ID
		transfers = append(transfers, Transfer{From: src.ID, To: best.ID, Chunk: chunk})
	}
	return transfers
}

// pickReceiver scans the live state for the peer with the fewest present
// chunks among those missing something src has and not themselves sending
// this tick. Ties break to the lowest node id (first encountered in the
// ascending-id scan).
func (p *SmartPolicy) pickReceiver(state *NetworkState, src *Node) *Node {
	var best *Node
	fewest := state.ChunkCount()

	for _, cand := range state.Nodes {
		if cand.ID == src.ID || cand.Transmitting {
			continue
		}
		if cand.FirstNeededFrom(src) < 0 {
			continue
		}
		if count := cand.PresentCount(); count < fewest {
			best = cand
			fewest = count
		}
	}
	return best
}
