// Package text provides a deterministic, line-oriented serialization format
// for graphs.
//
// # Format
//
// An encoded graph is a header comment, a vertex section, then an edge
// section:
//
//	# graft graph v1
//	vertex 0 "app"
//	vertex 1 "lib"
//	vertex 3 "core"
//	edge 0 1 "imports"
//	edge 1 3 "imports"
//
// Vertices appear in ascending descriptor order and edges in ascending
// (source, target, sequence) order, so the same graph always encodes to the
// same bytes. Vertex descriptors are written explicitly and preserved on
// import - note the hole at descriptor 2 above, left by an erased vertex.
//
// Properties are rendered through caller-supplied [Options] funcs and quoted
// with strconv.Quote, so they may contain spaces and arbitrary bytes.
// [Strings] covers the common all-string-properties case.
//
// # Round Trip
//
// Importing an exported graph reproduces the vertex set exactly (same
// descriptors, same properties) and the edge multiset (same endpoint pairs
// and properties). Edge sequence numbers are reallocated in input order and
// are not guaranteed to match bit-for-bit when parallel edges are present.
//
// # Errors
//
// Malformed input fails with a [ParseError] carrying the line number and the
// offending text. An edge line that references a vertex descriptor missing
// from the vertex section fails with a [ParseError] wrapping
// [graph.ErrInvalidEndpoint].
//
// [graph.ErrInvalidEndpoint]: github.com/graftlabs/graft/pkg/graph.ErrInvalidEndpoint
package text
