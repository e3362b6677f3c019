/*
Package sgf parses and writes SGF (Smart Game Format) game records.

An SGF file is a collection of game trees. Each game tree is a parenthesized
sequence of semicolon-prefixed nodes followed by parenthesized variations;
each node carries properties, an uppercase identifier with one or more
bracketed values. Parse returns the collection as a forest of Node values:
consecutive nodes of a sequence become single-child chains, and variations
become the children of the node the main line ends at.

Consists of:
  - Parse, ParseString, ParseBytes: parsing entry points;
  - Node, Collection: the parsed tree with typed property accessors;
  - DecodeText, DecodeSimpleText, EncodeText: property value escaping;
  - Collection.String and Node.WriteTree: canonical (whitespace-free) output;
  - source: input buffer with byte offset to line/column mapping;
  - cmd/sgf: console utility to check, reformat, and inspect SGF files.

The parser enforces syntactic shape and identifier uniqueness within a node
only. It does not restrict identifiers to a fixed catalogue, does not check
value counts per identifier, and stores every value in the exact form it had
between its brackets; interpretation is deferred to the accessors.
*/
package sgf

import (
	"github.com/y-ich/sgf/source"
)

// Parse parses an SGF collection and returns its root nodes in input order.
// The whole input must be consumed; otherwise nil and a *ParseError holding
// the furthest failure position are returned.
func Parse(s *source.Source) (Collection, error) {
	st := newParseState(string(s.Content()))
	pos, c, ok := st.parseCollection(0)
	if ok && pos == len(st.input) {
		return c, nil
	}

	line, col := s.LineCol(st.maxErrPos)
	return nil, &ParseError{
		SourceName: s.Name(),
		Line:       line,
		Col:        col,
		Offset:     st.maxErrPos,
		Expected:   st.expectedList(),
	}
}

// ParseString parses an SGF collection.
// Returns nil and *ParseError on error.
func ParseString(name, content string) (Collection, error) {
	return Parse(source.New(name, []byte(content)))
}

// ParseBytes parses an SGF collection.
// Returns nil and *ParseError on error.
func ParseBytes(name string, content []byte) (Collection, error) {
	return Parse(source.New(name, content))
}
