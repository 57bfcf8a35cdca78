// Package cli implements the gridpaths command line: loading a grid fixture,
// running one of the shortest-path algorithms over it and printing the result.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpaths/bellmanford"
	"github.com/katalvlaran/gridpaths/dagsp"
	"github.com/katalvlaran/gridpaths/dijkstra"
	"github.com/katalvlaran/gridpaths/gridfile"
	"github.com/katalvlaran/gridpaths/gridgraph"
	"github.com/katalvlaran/gridpaths/pqueue"
	"github.com/katalvlaran/gridpaths/spt"
)

// Sentinel errors for flag values.
var (
	ErrBadCoord     = errors.New("cli: coordinate must be \"row,col\"")
	ErrUnknownAlgo  = errors.New("cli: unknown algorithm")
	ErrUnknownQueue = errors.New("cli: unknown queue")
	ErrNotConverged = errors.New("cli: bellmanford did not converge, a negative cycle is reachable from the source")
)

// Algorithm names accepted by --algo.
const (
	AlgoAuto        = "auto"
	AlgoDijkstra    = "dijkstra"
	AlgoBellmanFord = "bellmanford"
	AlgoDAG         = "dagsp"
)

// Input holds the flag values of one invocation.
type Input struct {
	file    string
	verbose bool

	from   string
	to     string
	algo   string
	queue  string
	naive  bool
	check  bool
	matrix bool
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(&Input{}, version).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree bound to in.
func NewRootCommand(in *Input, version string) *cobra.Command {
	root := &cobra.Command{
		Use:          "gridpaths",
		Short:        "Shortest paths over implicit grid graphs loaded from YAML fixtures",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&in.file, "file", "f", "", "path to the grid fixture (YAML)")
	root.PersistentFlags().BoolVarP(&in.verbose, "verbose", "v", false, "log algorithm summaries at debug level")
	_ = root.MarkPersistentFlagRequired("file")

	root.AddCommand(newPathCommand(in), newDistCommand(in), newInfoCommand(in))
	return root
}

func addSearchFlags(cmd *cobra.Command, in *Input) {
	cmd.Flags().StringVar(&in.from, "from", "0,0", "source cell as row,col")
	cmd.Flags().StringVar(&in.algo, "algo", AlgoAuto, "auto | dijkstra | bellmanford | dagsp")
	cmd.Flags().StringVar(&in.queue, "queue", "indexed", "dijkstra queue: indexed | heap | btree")
	cmd.Flags().BoolVar(&in.naive, "naive", false, "dijkstra: reinsert instead of decrease-key")
	cmd.Flags().BoolVar(&in.check, "check", false, "validate algorithm preconditions before running")
}

func newPathCommand(in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the cheapest path between two cells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, tree, algo, err := in.search(cmd)
			if err != nil {
				return err
			}
			d, err := parseCoord(g, in.to)
			if err != nil {
				return err
			}
			p, err := tree.PathTo(d)
			if err != nil {
				return err
			}
			return writePath(cmd.OutOrStdout(), g, algo, p, tree.Dists[d], in.matrix)
		},
	}
	addSearchFlags(cmd, in)
	cmd.Flags().StringVar(&in.to, "to", "", "destination cell as row,col (default bottom-right)")
	cmd.Flags().BoolVar(&in.matrix, "matrix", false, "also print the path as a visit matrix")
	return cmd
}

func newDistCommand(in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dist",
		Short: "Print the distance from the source to every cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, tree, algo, err := in.search(cmd)
			if err != nil {
				return err
			}
			return writeDists(cmd.OutOrStdout(), g, algo, tree)
		},
	}
	addSearchFlags(cmd, in)
	return cmd
}

func newInfoCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := gridfile.LoadGrid(in.file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, g)
			fmt.Fprintf(out, "vertices: %d\n", g.NumVertices())
			fmt.Fprintf(out, "negative weights: %t\n", g.HasNegativeWeights())
			fmt.Fprintf(out, "ascending order is topological: %t\n", dagsp.CheckOrder(g) == nil)
			fmt.Fprintf(out, "components: %d\n", len(g.Components()))
			fmt.Fprintf(out, "suggested algorithm: %s\n", pickAlgo(g))
			return nil
		},
	}
}

// logger returns a logger writing to the command's error stream.
func (in *Input) logger(cmd *cobra.Command) logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(cmd.ErrOrStderr())
	if in.verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l.WithField("file", in.file)
}

// search loads the grid and runs the selected algorithm from --from.
func (in *Input) search(cmd *cobra.Command) (*gridgraph.Grid, *spt.Tree, string, error) {
	g, err := gridfile.LoadGrid(in.file)
	if err != nil {
		return nil, nil, "", err
	}
	s, err := parseCoord(g, in.from)
	if err != nil {
		return nil, nil, "", err
	}
	algo := in.algo
	if algo == AlgoAuto {
		algo = pickAlgo(g)
	}
	tree, err := in.run(cmd.Context(), in.logger(cmd), g, s, algo)
	if err != nil {
		return nil, nil, "", err
	}
	return g, tree, algo, nil
}

// pickAlgo chooses the fastest algorithm whose preconditions g meets.
func pickAlgo(g *gridgraph.Grid) string {
	switch {
	case g.IsAcyclic():
		return AlgoDAG
	case g.HasNegativeWeights():
		return AlgoBellmanFord
	default:
		return AlgoDijkstra
	}
}

func (in *Input) run(ctx context.Context, log logrus.FieldLogger, g *gridgraph.Grid, s int, algo string) (*spt.Tree, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	switch algo {
	case AlgoDijkstra:
		opts := []dijkstra.Option{dijkstra.WithLogger(log), dijkstra.WithCancelContext(ctx)}
		if in.naive {
			opts = append(opts, dijkstra.WithNaive())
		}
		if in.check {
			opts = append(opts, dijkstra.WithNegativeWeightCheck())
		}
		q, err := newQueue(in.queue, g.NumVertices())
		if err != nil {
			return nil, err
		}
		return dijkstra.Run(q, g, s, opts...)

	case AlgoBellmanFord:
		var st bellmanford.Stats
		tree, err := bellmanford.BellmanFord(g, s,
			bellmanford.WithLogger(log), bellmanford.WithCancelContext(ctx), bellmanford.WithStats(&st))
		if err != nil {
			return nil, err
		}
		if !st.Converged {
			return nil, fmt.Errorf("%w: still improving after %d passes", ErrNotConverged, st.Passes)
		}
		return tree, nil

	case AlgoDAG:
		opts := []dagsp.Option{dagsp.WithLogger(log), dagsp.WithCancelContext(ctx)}
		if in.check {
			opts = append(opts, dagsp.WithOrderCheck())
		}
		return dagsp.Shortest(g, s, opts...)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgo, algo)
	}
}

func newQueue(name string, n int) (pqueue.Queue, error) {
	switch name {
	case "indexed":
		return pqueue.NewIndexedHeap(n), nil
	case "heap":
		return pqueue.NewHeap(n), nil
	case "btree":
		return pqueue.NewBTree(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQueue, name)
	}
}

// parseCoord turns "row,col" into a vertex of g. An empty string means the
// bottom-right cell.
func parseCoord(g *gridgraph.Grid, s string) (int, error) {
	if s == "" {
		return g.NumVertices() - 1, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	j, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	return g.Index(i, j)
}

func writePath(w io.Writer, g *gridgraph.Grid, algo string, p []int, cost float64, matrix bool) error {
	cells := make([]string, len(p))
	for k, v := range p {
		i, j, err := g.Coord(v)
		if err != nil {
			return err
		}
		cells[k] = fmt.Sprintf("(%d,%d)", i, j)
	}
	fmt.Fprintf(w, "algorithm: %s\n", algo)
	fmt.Fprintf(w, "cost: %g\n", cost)
	fmt.Fprintf(w, "path: %s\n", strings.Join(cells, " "))
	if !matrix {
		return nil
	}
	m, err := spt.PathToMatrix(g, p)
	if err != nil {
		return err
	}
	for _, row := range m {
		for j, c := range row {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, c)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func writeDists(w io.Writer, g *gridgraph.Grid, algo string, tree *spt.Tree) error {
	fmt.Fprintf(w, "algorithm: %s\n", algo)
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			v, err := g.Index(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			d := tree.Dists[v]
			if math.IsInf(d, 1) {
				fmt.Fprintf(w, "%4s", "inf")
				continue
			}
			fmt.Fprintf(w, "%4g", d)
		}
		fmt.Fprintln(w)
	}
	return nil
}
