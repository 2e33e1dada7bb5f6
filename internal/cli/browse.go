package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/graftlabs/graft/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newBrowseCmd creates the browse command, an interactive terminal view of a
// graph: a scrollable vertex list with the selected vertex's property and
// incident edges shown alongside.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Explore a graph interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraphArg(args[0])
			if err != nil {
				return err
			}
			if g.VertexCount() == 0 {
				printInfo("Graph is empty, nothing to browse")
				return nil
			}

			m := newBrowseModel(g)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// =============================================================================
// browseModel - Interactive vertex browser
// =============================================================================

// vertexEntry is a pre-rendered row for the vertex list.
type vertexEntry struct {
	id    graph.VertexID
	label string
	outs  []string // rendered outgoing edges
	ins   []string // rendered incoming edges
}

// browseModel is the bubbletea model for the graph browser.
type browseModel struct {
	entries []vertexEntry
	cursor  int
	offset  int
	height  int
}

// newBrowseModel snapshots g into a static browse model. Mutations to g after
// this point are not reflected in the view.
func newBrowseModel(g *graph.Graph[string, string]) browseModel {
	var entries []vertexEntry
	for v := range g.Vertices() {
		e := vertexEntry{id: v.ID(), label: v.Property}
		for eid := range g.OutEdges(v.ID()) {
			prop, _ := g.EdgeValue(eid)
			e.outs = append(e.outs, fmt.Sprintf("%s %d %s", iconArrow, eid.Target, renderEdgeProp(prop)))
		}
		for eid := range g.InEdges(v.ID()) {
			prop, _ := g.EdgeValue(eid)
			e.ins = append(e.ins, fmt.Sprintf("%d %s %s", eid.Source, iconArrow, renderEdgeProp(prop)))
		}
		entries = append(entries, e)
	}
	return browseModel{entries: entries, height: 15}
}

func renderEdgeProp(prop string) string {
	if prop == "" {
		return ""
	}
	return listDimStyle.Render("(" + prop + ")")
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g", "home":
			m.cursor = 0
			m.offset = 0
		case "G", "end":
			m.cursor = len(m.entries) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse Graph"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G jump  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.entries) {
		end = len(m.entries)
	}

	for i := m.offset; i < end; i++ {
		e := m.entries[i]
		line := fmt.Sprintf("%d: %s", e.id, e.label)
		if i == m.cursor {
			b.WriteString("▸ " + listSelectedStyle.Render(line))
		} else {
			b.WriteString("  " + listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(m.entries) > 0 {
		sel := m.entries[m.cursor]
		b.WriteString("\n")
		b.WriteString(StyleHighlight.Render(fmt.Sprintf("Vertex %d", sel.id)))
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d out · %d in", len(sel.outs), len(sel.ins))))
		b.WriteString("\n")
		for _, out := range sel.outs {
			b.WriteString("  " + out + "\n")
		}
		for _, in := range sel.ins {
			b.WriteString("  " + in + "\n")
		}
	}

	return b.String()
}
