package dot

import (
	"strings"
	"testing"

	"github.com/graftlabs/graft/pkg/graph"
)

func buildFixture(t *testing.T) *graph.Graph[string, string] {
	t.Helper()
	g := graph.New[string, string]()
	a := g.AddVertex("app")
	b := g.AddVertex("lib")
	c := g.AddVertex("core")
	if _, err := g.AddEdge(b, c, "y"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge(a, b, "x"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	g := buildFixture(t)
	out := ToDOT(g, Strings())

	for _, want := range []string{
		"digraph G {",
		`0 [label="0: app"];`,
		`1 [label="1: lib"];`,
		`2 [label="2: core"];`,
		`0 -> 1 [label="x"];`,
		`1 -> 2 [label="y"];`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}

	// Edges are sorted by descriptor even though they were inserted out of order.
	if strings.Index(out, "0 -> 1") > strings.Index(out, "1 -> 2") {
		t.Errorf("edges not in canonical order:\n%s", out)
	}
}

func TestToDOTWithoutLabels(t *testing.T) {
	g := buildFixture(t)
	out := ToDOT(g, Options[string, string]{})

	if !strings.Contains(out, `0 [label="0"];`) {
		t.Errorf("descriptor-only node label missing:\n%s", out)
	}
	if strings.Contains(out, "0 -> 1 [label") {
		t.Errorf("unexpected edge label:\n%s", out)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	g := buildFixture(t)
	if ToDOT(g, Strings()) != ToDOT(g, Strings()) {
		t.Error("DOT output not deterministic")
	}
}
