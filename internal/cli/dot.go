package cli

import (
	"github.com/spf13/cobra"

	"github.com/graftlabs/graft/pkg/graph/dot"
)

// newDotCmd creates the dot command, which converts a graph file into
// Graphviz DOT source or a rendered SVG.
func newDotCmd() *cobra.Command {
	var (
		output string
		svg    bool
	)

	cmd := &cobra.Command{
		Use:   "dot <file>",
		Short: "Convert a graph to Graphviz DOT or SVG",
		Long: `Convert a graph file into Graphviz DOT source, or render it to SVG
directly with the embedded Graphviz engine.

Examples:
  graft dot deps.graph                    # DOT source to stdout
  graft dot deps.graph --svg -o deps.svg  # rendered SVG`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := readGraphArg(args[0])
			if err != nil {
				return err
			}

			src := dot.ToDOT(g, dot.Strings())
			data := []byte(src)

			if svg {
				p := newProgress(logger)
				data, err = dot.RenderSVG(cmd.Context(), src)
				if err != nil {
					return err
				}
				p.done("Rendered SVG")
			}

			if err := writeOutput(output, data); err != nil {
				return err
			}
			if output != "" && output != "-" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of emitting DOT source")

	return cmd
}
