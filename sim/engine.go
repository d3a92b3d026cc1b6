package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/propagation-sim/propagation-sim/sim/trace"
)

// Phase is the engine lifecycle state.
type Phase string

const (
	// PhaseIdle means the simulation is initialized but no Step has run.
	PhaseIdle Phase = "idle"
	// PhaseRunning means at least one Step has run and propagation is incomplete.
	PhaseRunning Phase = "running"
	// PhaseCompleted is terminal: every node holds every chunk. Further
	// Steps are no-ops.
	PhaseCompleted Phase = "completed"
)

// Simulator owns the per-tick lifecycle: it clears the previous tick's
// transmitting markers, invokes the active policy, advances the tick
// counter, and evaluates the completion predicate.
//
// Not safe for concurrent use: callers must serialize Step invocations.
type Simulator struct {
	State  *NetworkState
	Policy TransferPolicy
	// Clock counts executed ticks. After the completing Step it holds the
	// total propagation cycles.
	Clock int
	Phase Phase
	// Horizon bounds Run to at most this many ticks; 0 means unbounded.
	Horizon int
	Metrics *Metrics
	// Trace, when non-nil, records every transfer for offline analysis.
	Trace *trace.TransferTrace
}

// NewSimulator creates a simulator over a fresh NetworkState.
func NewSimulator(nodeCount, chunkCount int, policy TransferPolicy) (*Simulator, error) {
	state, err := NewNetworkState(nodeCount, chunkCount)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		State:   state,
		Policy:  policy,
		Phase:   PhaseIdle,
		Metrics: NewMetrics(policy.Name(), nodeCount, chunkCount),
	}, nil
}

// Step executes one tick: reset markers, apply the policy, advance the
// clock, check completion. It returns the resulting state (including this
// tick's transmitting markers, for external renderers) and whether the
// network is now fully propagated.
//
// Once the simulation has completed, Step returns the same state with
// completed=true and mutates nothing.
func (sim *Simulator) Step() (*NetworkState, bool, error) {
	if sim.Phase == PhaseCompleted {
		return sim.State, true, nil
	}
	if err := sim.State.Validate(); err != nil {
		return nil, false, err
	}

	sim.State.ClearTransmissions()
	transfers := sim.Policy.Apply(sim.State, sim.Clock)

	logrus.Infof("[tick %07d] %s: %d transfers, %d/%d chunks present",
		sim.Clock, sim.Policy.Name(), len(transfers), sim.State.TotalPresent(),
		sim.State.NodeCount()*sim.State.ChunkCount())

	sim.Metrics.RecordTick(transfers)
	if sim.Trace != nil {
		for _, t := range transfers {
			sim.Trace.Record(trace.TransferRecord{
				Tick:  sim.Clock,
				From:  t.From,
				To:    t.To,
				Chunk: t.Chunk,
			})
		}
	}

	sim.Clock++

	if IsComplete(sim.State) {
		sim.Phase = PhaseCompleted
		logrus.Infof("[tick %07d] Propagation complete", sim.Clock)
		return sim.State, true, nil
	}
	sim.Phase = PhaseRunning
	return sim.State, false, nil
}

// Run steps the simulation until completion, or until Horizon ticks have
// executed when Horizon is set.
func (sim *Simulator) Run() error {
	for sim.Phase != PhaseCompleted {
		if sim.Horizon > 0 && sim.Clock >= sim.Horizon {
			logrus.Warnf("[tick %07d] Horizon reached before completion", sim.Clock)
			return nil
		}
		if _, _, err := sim.Step(); err != nil {
			return err
		}
	}
	return nil
}
