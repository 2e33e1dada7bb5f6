package text

import "strconv"

// Options supplies the property renderers and parsers the codec needs.
// The graph container is generic over arbitrary property types, so the codec
// cannot know how to print or read them; callers bridge the gap here.
//
// [Write] and [Export] use the Format funcs; [Read] and [Import] use the
// Parse funcs. Only the funcs a call actually needs must be set.
//
// Rendered properties are quoted with strconv.Quote on output and unquoted
// before being handed to the Parse funcs, so Format results may contain
// spaces, newlines, or arbitrary bytes.
type Options[V, E any] struct {
	FormatVertex func(V) string
	ParseVertex  func(string) (V, error)
	FormatEdge   func(E) string
	ParseEdge    func(string) (E, error)
}

// Strings returns ready-made options for graphs with string properties on
// both vertices and edges, the common case for the CLI and HTTP surfaces.
func Strings() Options[string, string] {
	identity := func(s string) string { return s }
	parse := func(s string) (string, error) { return s, nil }
	return Options[string, string]{
		FormatVertex: identity,
		ParseVertex:  parse,
		FormatEdge:   identity,
		ParseEdge:    parse,
	}
}

// Ints returns options for graphs with int properties, parsing with strconv.
func Ints() Options[int, int] {
	format := strconv.Itoa
	return Options[int, int]{
		FormatVertex: format,
		ParseVertex:  strconv.Atoi,
		FormatEdge:   format,
		ParseEdge:    strconv.Atoi,
	}
}
