package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graftlabs/graft/pkg/graph"
)

// newStatsCmd creates the stats command, which prints structural information
// about a graph file: counts, sources, sinks, and validation status.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Print vertex, edge, source, and sink counts for a graph",
		Long: `Print structural statistics for a graph file.

Use "-" as the file argument to read from stdin.

Examples:
  graft stats deps.graph
  cat deps.graph | graft stats -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := readGraphArg(args[0])
			if err != nil {
				return err
			}
			logger.Debug("Loaded graph", "vertices", g.VertexCount(), "edges", g.EdgeCount())

			fmt.Println(StyleTitle.Render("Graph statistics"))
			printKeyValue("vertices", strconv.Itoa(g.VertexCount()))
			printKeyValue("edges", strconv.Itoa(g.EdgeCount()))
			printKeyValue("sources", formatVertexList(g.Sources()))
			printKeyValue("sinks", formatVertexList(g.Sinks()))

			maxOut, maxIn := 0, 0
			for v := range g.Vertices() {
				maxOut = max(maxOut, g.OutDegree(v.ID()))
				maxIn = max(maxIn, g.InDegree(v.ID()))
			}
			printKeyValue("max out", strconv.Itoa(maxOut))
			printKeyValue("max in", strconv.Itoa(maxIn))

			if err := g.Validate(); err != nil {
				printWarning("validation failed: %v", err)
				return err
			}
			printKeyValue("valid", "yes")
			return nil
		},
	}
}

// formatVertexList renders descriptors as a comma-separated list, with a
// placeholder for the empty case.
func formatVertexList(ids []graph.VertexID) string {
	if len(ids) == 0 {
		return "(none)"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ", ")
}
