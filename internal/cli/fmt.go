package cli

import (
	"github.com/spf13/cobra"

	"github.com/graftlabs/graft/pkg/graph/text"
)

// newFmtCmd creates the fmt command, which rewrites a graph file into
// canonical form: header first, vertices in ascending descriptor order,
// edges sorted by endpoints, comments and blank lines dropped.
func newFmtCmd() *cobra.Command {
	var (
		output  string
		inPlace bool
	)

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a graph file into canonical form",
		Long: `Rewrite a graph file into canonical form.

Formatting is idempotent: running fmt on already-canonical input produces
byte-identical output. Use "-" as the file argument to read from stdin.

Examples:
  graft fmt deps.graph              # print canonical form to stdout
  graft fmt -w deps.graph           # rewrite the file in place
  graft fmt deps.graph -o out.graph # write to a different file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraphArg(args[0])
			if err != nil {
				return err
			}

			data, err := text.Marshal(g, text.Strings())
			if err != nil {
				return err
			}

			dest := output
			if inPlace {
				dest = args[0]
			}
			if err := writeOutput(dest, data); err != nil {
				return err
			}
			if inPlace {
				printSuccess("Formatted %s", args[0])
				printCounts(g.VertexCount(), g.EdgeCount())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "rewrite the input file in place")
	cmd.MarkFlagsMutuallyExclusive("output", "write")

	return cmd
}
