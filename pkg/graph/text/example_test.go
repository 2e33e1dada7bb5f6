package text_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/graftlabs/graft/pkg/graph"
	"github.com/graftlabs/graft/pkg/graph/text"
)

func ExampleWrite() {
	g := graph.New[string, string]()
	app := g.AddVertex("app")
	lib := g.AddVertex("lib")
	g.AddEdge(app, lib, "imports")

	text.Write(os.Stdout, g, text.Strings())
	// Output:
	// # graft graph v1
	// vertex 0 "app"
	// vertex 1 "lib"
	// edge 0 1 "imports"
}

func ExampleRead() {
	input := `# graft graph v1
vertex 0 "app"
vertex 1 "lib"
edge 0 1 "imports"
`
	g, err := text.Read(strings.NewReader(input), text.Strings())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Vertices:", g.VertexCount())
	fmt.Println("Edges:", g.EdgeCount())
	// Output:
	// Vertices: 2
	// Edges: 1
}

func ExampleRead_parseError() {
	_, err := text.Read(strings.NewReader("vertex zero \"a\"\n"), text.Strings())
	fmt.Println(err)
	// Output:
	// text: line 1: bad vertex descriptor: strconv.Atoi: parsing "zero": invalid syntax ("vertex zero \"a\"")
}
