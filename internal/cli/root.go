package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// options collects every flag of spec.md §6's CLI surface.
type options struct {
	graph        bool
	noCNF        bool
	symmetryOnly bool
	incremental  bool
	threshold    int
	length       int
	prefix       []int
	inputPath    string
	outputPath   string
}

// Execute runs the reduce CLI and returns an error if the run fails.
// It builds the root command described by spec.md §6, wires a
// charmbracelet/log logger into the command's context according to
// the --verbose flag, and dispatches to Run.
func Execute() error {
	var verbose bool
	opts := &options{}

	root := &cobra.Command{
		Use:          "reduce",
		Short:        "reduce enumerates canonical representatives of symmetric prefix assignments",
		Long: `reduce performs adaptive prefix-assignment symmetry reduction over a
vertex-colored graph's automorphism group: given a variable vertex set
V and a value vertex set R, it emits one canonical representative per
orbit of partial assignments up to a target length, optionally
re-emitting an input CNF with each emission Tseitin-encoded as a fresh
branch literal.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostic logging")

	flags := root.Flags()
	flags.BoolVarP(&opts.graph, "graph", "g", false, "expect an explicit symmetry graph section in the input")
	flags.BoolVarP(&opts.noCNF, "no-cnf", "n", false, "skip CNF re-emission even if a CNF section is present")
	flags.BoolVarP(&opts.symmetryOnly, "symmetry-only", "s", false, "run initialization only; report orbit structure and exit")
	flags.BoolVarP(&opts.incremental, "incremental", "i", false, "emit incremental cube format instead of textual output")
	flags.IntVarP(&opts.threshold, "threshold", "t", 0, "automorphism-order threshold t: a partial assignment with |Aut| <= t is emitted early")
	flags.IntVarP(&opts.length, "length", "l", 0, "target prefix length K")
	flags.IntSliceVarP(&opts.prefix, "prefix", "p", nil, "1-indexed variable vertices to preload as the initial prefix")
	flags.StringVarP(&opts.inputPath, "file", "f", "", "input path (default stdin)")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "output path (default stdout)")

	return root.ExecuteContext(context.Background())
}
