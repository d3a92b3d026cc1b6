package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/propagation-sim/propagation-sim/sim"
)

var (
	compareNodeCounts []int // Node counts to sweep
	compareChunks     int   // Chunk count for every sweep entry
)

// comparisonRow holds both policies' results for one node count.
type comparisonRow struct {
	Nodes      int
	Chunks     int
	NaiveTicks int
	SmartTicks int
}

// Speedup returns how many times faster the smart policy completed.
func (r comparisonRow) Speedup() float64 {
	if r.SmartTicks == 0 {
		return 0
	}
	return float64(r.NaiveTicks) / float64(r.SmartTicks)
}

// compareCmd runs both policies across a sweep of node counts and prints a
// comparison table.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run both policies across node counts and compare tick counts",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		rows := make([]comparisonRow, 0, len(compareNodeCounts))
		for _, n := range compareNodeCounts {
			row, err := comparePolicies(n, compareChunks)
			if err != nil {
				logrus.Fatalf("Comparison failed for %d nodes: %v", n, err)
			}
			rows = append(rows, row)
		}
		printComparison(rows)
	},
}

// comparePolicies runs the naive and smart policies to completion over the
// same network shape and returns their tick counts.
func comparePolicies(nodes, chunks int) (comparisonRow, error) {
	naive, err := runSimulation(nodes, chunks, sim.PolicyNaive, 0, "")
	if err != nil {
		return comparisonRow{}, err
	}
	smart, err := runSimulation(nodes, chunks, sim.PolicySmart, 0, "")
	if err != nil {
		return comparisonRow{}, err
	}
	return comparisonRow{
		Nodes:      nodes,
		Chunks:     chunks,
		NaiveTicks: naive.TotalTicks,
		SmartTicks: smart.TotalTicks,
	}, nil
}

// printComparison displays the sweep results.
func printComparison(rows []comparisonRow) {
	fmt.Println("=== Policy Comparison ===")
	fmt.Printf("%8s %8s %12s %12s %9s\n", "Nodes", "Chunks", "Naive Ticks", "Smart Ticks", "Speedup")
	for _, r := range rows {
		fmt.Printf("%8d %8d %12d %12d %8.1fx\n", r.Nodes, r.Chunks, r.NaiveTicks, r.SmartTicks, r.Speedup())
	}
}

func init() {
	compareCmd.Flags().IntSliceVar(&compareNodeCounts, "nodes", []int{5, 10, 20, 50}, "Node counts to sweep (can be comma-separated)")
	compareCmd.Flags().IntVar(&compareChunks, "chunks", sim.DefaultChunkCount, "Number of chunks in the dataset")
	compareCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(compareCmd)
}
