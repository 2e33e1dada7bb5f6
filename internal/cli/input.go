package cli

import (
	"fmt"
	"os"

	"github.com/graftlabs/graft/pkg/graph"
	"github.com/graftlabs/graft/pkg/graph/text"
)

// readGraphArg loads a string-property graph from path, or from stdin when
// path is "-". Commands taking a graph file as their positional argument
// share this helper.
func readGraphArg(path string) (*graph.Graph[string, string], error) {
	if path == "-" {
		g, err := text.Read(os.Stdin, text.Strings())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return g, nil
	}
	g, err := text.Import(path, text.Strings())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return g, nil
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
