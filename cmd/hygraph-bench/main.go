// Command hygraph-bench partitions a graph and reports per-partition
// statistics and timing, mirroring what an algorithm driver would observe.
//
// Usage:
//
//	hygraph-bench --random 10000:0.001 --platform hybrid --accelerators 2
//	hygraph-bench --strategy sorted-dsc --cpu-share 0.4 edges.txt
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hygraph/engine"
	"github.com/katalvlaran/hygraph/graph"
	"github.com/katalvlaran/hygraph/partition"
)

var flags struct {
	platform     string
	strategy     string
	accelerators int
	cpuShare     float64
	seed         int64
	directed     bool
	weighted     bool
	randomSpec   string
	randomizeAcc bool
	verbose      bool
}

var rootCmd = &cobra.Command{
	Use:   "hygraph-bench [edge-list file]",
	Short: "Partition a graph and report balance and timing",
	Long: `hygraph-bench loads an edge list (or generates a random graph),
splits it across the configured CPU/accelerator resources, and prints
per-partition vertex, edge, and remote-edge counts, the arc-balance
summary, and the engine timing record.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flags.platform, "platform", "hybrid", "execution platform: cpu|accelerator|hybrid")
	rootCmd.Flags().StringVar(&flags.strategy, "strategy", "random", "partitioning strategy: random|sorted-asc|sorted-dsc")
	rootCmd.Flags().IntVar(&flags.accelerators, "accelerators", 1, "number of accelerator partitions")
	rootCmd.Flags().Float64Var(&flags.cpuShare, "cpu-share", 0, "target CPU arc share in [0,1]; 0 = equal split")
	rootCmd.Flags().Int64Var(&flags.seed, "seed", 0, "seed for random strategy and generator")
	rootCmd.Flags().BoolVar(&flags.directed, "directed", false, "treat input edges as directed arcs")
	rootCmd.Flags().BoolVar(&flags.weighted, "weighted", false, "input carries edge weights")
	rootCmd.Flags().StringVar(&flags.randomSpec, "random", "", "generate a random graph instead of reading a file, as n:p")
	rootCmd.Flags().BoolVar(&flags.randomizeAcc, "randomize-accelerators", false, "scatter non-CPU vertices randomly across accelerators")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log engine lifecycle")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	g, err := loadGraph(args)
	if err != nil {
		return err
	}

	attr, err := buildAttr()
	if err != nil {
		return err
	}

	e, err := engine.New(g, attr)
	if err != nil {
		return err
	}
	defer e.Close()

	report(cmd, e)

	return nil
}

// loadGraph builds the input graph from --random or from the file argument.
func loadGraph(args []string) (*graph.Graph, error) {
	var opts []graph.Option
	opts = append(opts, graph.WithDirected(flags.directed))
	if flags.weighted {
		opts = append(opts, graph.WithWeighted())
	}

	if flags.randomSpec != "" {
		n, p, err := parseRandomSpec(flags.randomSpec)
		if err != nil {
			return nil, err
		}
		return graph.Random(n, p, flags.seed, opts...)
	}

	if len(args) != 1 {
		return nil, errors.New("either an edge-list file or --random n:p is required")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", args[0])
	}
	defer f.Close()

	g, err := graph.ParseEdgeList(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", args[0])
	}
	return g, nil
}

func parseRandomSpec(spec string) (int, float64, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("--random %q: expected n:p", spec)
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "--random vertex count %q", parts[0])
	}
	p, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "--random probability %q", parts[1])
	}
	return n, p, nil
}

func buildAttr() (engine.Attr, error) {
	attr := engine.DefaultAttr()
	attr.Accelerators = flags.accelerators
	attr.CPUShare = flags.cpuShare
	attr.Seed = flags.seed
	attr.RandomizedAccelerators = flags.randomizeAcc
	attr.PushMsgBits = 32

	switch flags.platform {
	case "cpu":
		attr.Platform = engine.PlatformCPU
		attr.Accelerators = 0
	case "accelerator":
		attr.Platform = engine.PlatformAccelerator
	case "hybrid":
		attr.Platform = engine.PlatformHybrid
	default:
		return attr, errors.Errorf("unknown platform %q", flags.platform)
	}

	switch flags.strategy {
	case "random":
		attr.Strategy = partition.StrategyRandom
	case "sorted-asc":
		attr.Strategy = partition.StrategySortedAscending
	case "sorted-dsc":
		attr.Strategy = partition.StrategySortedDescending
	default:
		return attr, errors.Errorf("unknown strategy %q", flags.strategy)
	}

	if flags.verbose {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		attr.Logger = log
	}

	return attr, nil
}

func report(cmd *cobra.Command, e *engine.Engine) {
	out := cmd.OutOrStdout()
	g := e.Set().Graph()
	fmt.Fprintf(out, "graph: %d vertices, %d arcs, directed=%v, weighted=%v\n",
		g.VertexCount(), g.EdgeCount(), g.Directed(), g.Weighted())

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tROLE\tVERTICES\tEDGES\tRMT VERTICES\tRMT EDGES")
	for pid := 0; pid < e.PartitionCount(); pid++ {
		role := "accelerator"
		if pid == e.CPUPartition() {
			role = "cpu"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\n",
			pid, role, e.VertexCount(pid), e.EdgeCount(pid),
			e.RemoteVertexCount(pid), e.RemoteEdgeCount(pid))
	}
	w.Flush()

	bal := partition.Stats(e.Set())
	fmt.Fprintf(out, "balance: mean=%.4f stddev=%.4f min=%.4f max=%.4f remote=%.4f\n",
		bal.Mean, bal.StdDev, bal.Min, bal.Max, bal.RemoteFraction)

	t := e.Timing()
	fmt.Fprintf(out, "timing: init=%v partition=%v\n", t.EngineInit, t.EnginePartition)
}
