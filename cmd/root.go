package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/propagation-sim/propagation-sim/sim"
	"github.com/propagation-sim/propagation-sim/sim/trace"
)

var (
	// CLI flags for the simulation run
	nodeCount    int    // Number of nodes in the network (node 0 is the origin)
	chunkCount   int    // Number of chunks in the dataset
	policyName   string // Transfer policy (naive, smart)
	maxTicks     int    // Stop after this many ticks even if incomplete (0 = run to completion)
	logLevel     string // Log verbosity level
	scenarioPath string // Optional YAML scenario file
	traceOutPath string // Optional JSON transfer trace output file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "propagation-sim",
	Short: "Tick-based simulator comparing chunk distribution policies",
}

// runCmd executes one simulation using parameters from CLI flags and the
// optional scenario file. Explicitly set flags override the file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a propagation simulation to completion",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if scenarioPath != "" {
			sc, err := sim.LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Failed to load scenario %s: %v", scenarioPath, err)
			}
			if err := sc.Validate(); err != nil {
				logrus.Fatalf("Invalid scenario %s: %v", scenarioPath, err)
			}
			applyScenario(cmd, sc)
		}

		logrus.Infof("Starting simulation: %d nodes, %d chunks, policy=%s",
			nodeCount, chunkCount, policyName)

		startTime := time.Now()
		metrics, err := runSimulation(nodeCount, chunkCount, policyName, maxTicks, traceOutPath)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		metrics.Print(time.Since(startTime))

		logrus.Info("Simulation complete.")
	},
}

// applyScenario copies scenario values into the flag variables, keeping any
// flag the user set explicitly.
func applyScenario(cmd *cobra.Command, sc *sim.Scenario) {
	if sc.Nodes != 0 && !cmd.Flags().Changed("nodes") {
		nodeCount = sc.Nodes
	}
	if sc.Chunks != 0 && !cmd.Flags().Changed("chunks") {
		chunkCount = sc.Chunks
	}
	if sc.Policy != "" && !cmd.Flags().Changed("policy") {
		policyName = sc.Policy
	}
	if sc.MaxTicks != 0 && !cmd.Flags().Changed("max-ticks") {
		maxTicks = sc.MaxTicks
	}
}

// runSimulation builds and runs one simulation, optionally writing a
// transfer trace, and returns its metrics.
func runSimulation(nodes, chunks int, policy string, horizon int, traceOut string) (*sim.Metrics, error) {
	pol, err := sim.NewTransferPolicy(policy)
	if err != nil {
		return nil, err
	}
	s, err := sim.NewSimulator(nodes, chunks, pol)
	if err != nil {
		return nil, err
	}
	s.Horizon = horizon
	if traceOut != "" {
		s.Trace = trace.NewTransferTrace(s.Metrics.RunID, policy, nodes, chunks)
	}
	if err := s.Run(); err != nil {
		return nil, err
	}
	if s.Trace != nil {
		if err := s.Trace.WriteJSON(traceOut); err != nil {
			return nil, err
		}
		logrus.Infof("Transfer trace written to %s", traceOut)
	}
	return s.Metrics, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&nodeCount, "nodes", sim.DefaultNodeCount, "Number of nodes in the network")
	runCmd.Flags().IntVar(&chunkCount, "chunks", sim.DefaultChunkCount, "Number of chunks in the dataset")
	runCmd.Flags().StringVar(&policyName, "policy", sim.PolicySmart, "Transfer policy (naive, smart)")
	runCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "Stop after this many ticks even if incomplete (0 = no limit)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to YAML scenario file")
	runCmd.Flags().StringVar(&traceOutPath, "trace-out", "", "Path to write the JSON transfer trace")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
