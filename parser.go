package sgf

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// The grammar, in PEG terms:
//
//	Collection := GameTree+
//	GameTree   := Ws "(" Sequence GameTree* ")" Ws
//	Sequence   := Ws Node+ Ws
//	Node       := Ws ";" Property* Ws
//	Property   := Ws PropIdent PropValue+ Ws
//	PropIdent  := [A-Z]+
//	PropValue  := Ws "[" ( "\]" / [^]] )* "]" Ws
//
// Matching is top-down with no backtracking: a repetition greedily takes as
// many consecutive matches as possible and stops at the first element that
// fails, keeping what it already consumed. A repetition only fails as a whole
// when its minimum count is not met.

// Expected-token descriptions for character classes. The whitespace class
// includes the letter 'v'; see DESIGN.md before changing it.
const (
	expectSpace    = "[ \t\r\nv]"
	expectUpper    = "[A-Z]"
	expectNonClose = "[^]]"
	expectAnyChar  = "<character>"

	duplicatedProps = "duplicated properties"
)

// parseState carries the input and the failure tracker through the descent.
// Every rule is a method on it: given a position it returns the position
// after the match plus a value, or reports failure through the ok flag after
// recording what it expected.
type parseState struct {
	input string

	// Furthest-failure tracking: among all alternatives tried anywhere in
	// the descent, only failures at the deepest input position are kept.
	maxErrPos    int
	suppressFail int
	expected     map[string]struct{}
}

func newParseState(input string) *parseState {
	return &parseState{input: input, expected: map[string]struct{}{}}
}

// markFailure records a failed expectation at pos. Failures behind the
// current high-water mark are ignored; a failure past it resets the set.
// Recording never affects control flow.
func (st *parseState) markFailure(pos int, expected string) {
	if st.suppressFail > 0 {
		return
	}
	if pos > st.maxErrPos {
		st.maxErrPos = pos
		st.expected = map[string]struct{}{}
	}
	if pos == st.maxErrPos {
		st.expected[expected] = struct{}{}
	}
}

func (st *parseState) expectedList() []string {
	res := make([]string, 0, len(st.expected))
	for e := range st.expected {
		res = append(res, e)
	}
	sort.Strings(res)
	return res
}

// matchLiteral matches lit exactly at pos.
func (st *parseState) matchLiteral(pos int, lit string) (int, bool) {
	if strings.HasPrefix(st.input[pos:], lit) {
		return pos + len(lit), true
	}
	st.markFailure(pos, lit)
	return pos, false
}

// matchAnyChar consumes one rune, advancing by its encoded length.
func (st *parseState) matchAnyChar(pos int) (int, bool) {
	if pos >= len(st.input) {
		st.markFailure(pos, expectAnyChar)
		return pos, false
	}
	_, size := utf8.DecodeRuneInString(st.input[pos:])
	return pos + size, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == 'v'
}

// skipSpace consumes a maximal (possibly empty) run of whitespace.
// The position where the run stops is recorded as a failed expectation,
// like any other repetition element.
func (st *parseState) skipSpace(pos int) int {
	for pos < len(st.input) && isSpace(st.input[pos]) {
		pos++
	}
	st.markFailure(pos, expectSpace)
	return pos
}

// parseCollection matches one or more game trees.
func (st *parseState) parseCollection(pos int) (int, Collection, bool) {
	var roots Collection
	for {
		next, root, ok := st.parseGameTree(pos)
		if !ok {
			break
		}
		roots = append(roots, root)
		pos = next
	}
	if len(roots) == 0 {
		return pos, nil, false
	}
	return pos, roots, true
}

// parseGameTree matches a parenthesized sequence plus nested variations and
// attaches the variations as children of the sequence chain's leaf.
func (st *parseState) parseGameTree(pos int) (int, *Node, bool) {
	pos = st.skipSpace(pos)
	pos, ok := st.matchLiteral(pos, "(")
	if !ok {
		return pos, nil, false
	}

	pos, root, ok := st.parseSequence(pos)
	if !ok {
		return pos, nil, false
	}

	var variations []*Node
	for {
		next, v, ok := st.parseGameTree(pos)
		if !ok {
			break
		}
		variations = append(variations, v)
		pos = next
	}

	pos, ok = st.matchLiteral(pos, ")")
	if !ok {
		return pos, nil, false
	}
	pos = st.skipSpace(pos)

	if len(variations) > 0 {
		leaf := root.Leaf()
		leaf.Children = append(leaf.Children, variations...)
	}
	return pos, root, true
}

// parseSequence matches one or more nodes and folds them into a single-child
// chain: each node becomes the only child of its predecessor, so the first
// node is the chain's root and the last its leaf.
func (st *parseState) parseSequence(pos int) (int, *Node, bool) {
	pos = st.skipSpace(pos)

	var nodes []*Node
	for {
		next, n, ok := st.parseNode(pos)
		if !ok {
			break
		}
		nodes = append(nodes, n)
		pos = next
	}
	if len(nodes) == 0 {
		return pos, nil, false
	}
	pos = st.skipSpace(pos)

	for i := len(nodes) - 1; i > 0; i-- {
		nodes[i-1].Children = append(nodes[i-1].Children, nodes[i])
	}
	return pos, nodes[0], true
}

// parseNode matches ";" followed by any number of properties. A property
// identifier bound twice within the node is a failure, reported through the
// same tracker as a syntax failure.
func (st *parseState) parseNode(pos int) (int, *Node, bool) {
	pos = st.skipSpace(pos)
	pos, ok := st.matchLiteral(pos, ";")
	if !ok {
		return pos, nil, false
	}

	var idents []string
	var values [][]string
	for {
		next, ident, vs, ok := st.parseProperty(pos)
		if !ok {
			break
		}
		idents = append(idents, ident)
		values = append(values, vs)
		pos = next
	}
	pos = st.skipSpace(pos)

	n := NewNode()
	for i, ident := range idents {
		if n.Has(ident) {
			st.markFailure(pos, duplicatedProps)
			return pos, nil, false
		}
		n.setProperty(ident, values[i])
	}
	return pos, n, true
}

// parseProperty matches an identifier followed by one or more values.
func (st *parseState) parseProperty(pos int) (int, string, []string, bool) {
	pos = st.skipSpace(pos)
	pos, ident, ok := st.parsePropIdent(pos)
	if !ok {
		return pos, "", nil, false
	}

	var vs []string
	for {
		next, v, ok := st.parsePropValue(pos)
		if !ok {
			break
		}
		vs = append(vs, v)
		pos = next
	}
	if len(vs) == 0 {
		return pos, "", nil, false
	}
	pos = st.skipSpace(pos)
	return pos, ident, vs, true
}

// parsePropIdent matches a greedy run of one or more uppercase letters.
// There is no length limit and no identifier catalogue.
func (st *parseState) parsePropIdent(pos int) (int, string, bool) {
	start := pos
	for pos < len(st.input) && st.input[pos] >= 'A' && st.input[pos] <= 'Z' {
		pos++
	}
	st.markFailure(pos, expectUpper)
	if pos == start {
		return pos, "", false
	}
	return pos, st.input[start:pos], true
}

// parsePropValue matches a bracketed value. "\]" inside the brackets is kept
// as two literal characters and does not close the value; any other rune but
// "]" passes through. The returned string is the exact source text between
// the brackets, with no escape interpretation.
func (st *parseState) parsePropValue(pos int) (int, string, bool) {
	pos = st.skipSpace(pos)
	pos, ok := st.matchLiteral(pos, "[")
	if !ok {
		return pos, "", false
	}

	start := pos
	for {
		if next, ok := st.matchLiteral(pos, `\]`); ok {
			pos = next
			continue
		}
		if pos >= len(st.input) || st.input[pos] == ']' {
			st.markFailure(pos, expectNonClose)
			break
		}
		pos, _ = st.matchAnyChar(pos)
	}
	value := st.input[start:pos]

	pos, ok = st.matchLiteral(pos, "]")
	if !ok {
		return pos, "", false
	}
	pos = st.skipSpace(pos)
	return pos, value, true
}
