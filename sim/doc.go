// Package sim provides the core tick-based simulation engine for the chunk
// propagation simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - network.go: Chunk/Node/NetworkState data model and initialization
//   - policy.go: the TransferPolicy interface and policy factory
//   - engine.go: the Simulator state machine and per-tick Step lifecycle
//
// # Architecture
//
// A simulation propagates C chunks from origin node 0 to all N nodes. Each
// Step clears the previous tick's transmitting markers, asks the active
// TransferPolicy for this tick's transfers, applies them, and checks the
// completion predicate. Two policies are provided:
//   - naive.go: single perpetual sender, strict round-robin
//   - smart.go: every data-holding node sends to its neediest peer
//
// Everything is single-threaded and deterministic: identical parameters and
// policy produce bit-for-bit identical tick-by-tick state sequences. The
// SmartPolicy's within-tick sender ordering (ascending node id over a state
// mutated as processing proceeds) is part of that contract.
//
// The sim/trace sub-package records per-tick transfers for offline analysis;
// it stores pure data types and has no dependency on sim.
package sim
