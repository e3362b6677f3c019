package sgf

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Property value types. Values are stored as raw source text; the accessors
// below convert them on demand.
type (
	Point      = string
	Number     = int
	Real       = float64
	Color      = rune
	Double     = rune
	Text       = string
	SimpleText = string
)

// Node is one game-record node: properties plus child nodes. A chain of
// single-child nodes is a variation-free move sequence; two or more children
// mark a branch point, one child per variation in source order.
//
// Property identifiers keep their source order and are unique within a node
// (the parser rejects duplicates). Values keep the exact syntactic form they
// had between their brackets.
type Node struct {
	idents []string
	props  map[string][]string

	Children []*Node
}

// NewNode creates an empty node.
func NewNode() *Node {
	return &Node{props: map[string][]string{}}
}

// Idents returns the node's property identifiers in source order.
func (n *Node) Idents() []string {
	res := make([]string, len(n.idents))
	copy(res, n.idents)
	return res
}

// Has reports whether the node carries the property.
func (n *Node) Has(ident string) bool {
	_, ok := n.props[ident]
	return ok
}

// Values returns the raw value list of a property, or nil.
// The result must not be modified.
func (n *Node) Values(ident string) []string {
	return n.props[ident]
}

// setProperty binds ident to values, replacing any previous binding but
// keeping its position in the identifier order.
func (n *Node) setProperty(ident string, values []string) {
	if !n.Has(ident) {
		n.idents = append(n.idents, ident)
	}
	n.props[ident] = values
}

// Leaf returns the deepest node reachable by repeatedly descending into the
// first child, i.e. the end of the main line below n.
func (n *Node) Leaf() *Node {
	for len(n.Children) > 0 {
		n = n.Children[0]
	}
	return n
}

// MainLine returns n and every node reachable from it through first
// children, in order.
func (n *Node) MainLine() []*Node {
	res := []*Node{n}
	for len(n.Children) > 0 {
		n = n.Children[0]
		res = append(res, n)
	}
	return res
}

// NumNodes returns the number of nodes in the subtree rooted at n,
// including n itself.
func (n *Node) NumNodes() int {
	res := 1
	for _, c := range n.Children {
		res += c.NumNodes()
	}
	return res
}

// Walk visits the subtree rooted at n in depth-first pre-order, children in
// source order. Returning false from the visitor skips the node's children.
func (n *Node) Walk(visit func(n *Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

func (n *Node) first(ident string) (string, bool) {
	vs, ok := n.props[ident]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// GetPoint returns a property's value as a point.
func (n *Node) GetPoint(ident string) (Point, bool) {
	return n.first(ident)
}

func (n *Node) SetPoint(ident string, value Point) {
	n.setProperty(ident, []string{value})
}

// GetPoints returns all values of a property as points.
func (n *Node) GetPoints(ident string) ([]Point, bool) {
	vs, ok := n.props[ident]
	if !ok {
		return nil, false
	}
	res := make([]Point, len(vs))
	copy(res, vs)
	return res, true
}

func (n *Node) SetPoints(ident string, values []Point) {
	vs := make([]string, len(values))
	copy(vs, values)
	n.setProperty(ident, vs)
}

// GetNumber returns a property's value as a number.
func (n *Node) GetNumber(ident string) (Number, bool) {
	v, ok := n.first(ident)
	if !ok {
		return 0, false
	}
	num, e := strconv.Atoi(v)
	if e != nil {
		return 0, false
	}
	return num, true
}

func (n *Node) SetNumber(ident string, value Number) {
	n.setProperty(ident, []string{strconv.Itoa(value)})
}

// GetReal returns a property's value as a real number.
func (n *Node) GetReal(ident string) (Real, bool) {
	v, ok := n.first(ident)
	if !ok {
		return 0, false
	}
	num, e := strconv.ParseFloat(v, 64)
	if e != nil {
		return 0, false
	}
	return num, true
}

func (n *Node) SetReal(ident string, value Real) {
	n.setProperty(ident, []string{strconv.FormatFloat(value, 'g', -1, 64)})
}

// GetColor returns a property's value as a color ('B' or 'W' in well-formed
// records, though no catalogue is enforced).
func (n *Node) GetColor(ident string) (Color, bool) {
	return n.firstRune(ident)
}

func (n *Node) SetColor(ident string, value Color) {
	n.setProperty(ident, []string{string(value)})
}

// GetDouble returns a property's value as a double ('1' or '2').
func (n *Node) GetDouble(ident string) (Double, bool) {
	return n.firstRune(ident)
}

func (n *Node) SetDouble(ident string, value Double) {
	n.setProperty(ident, []string{string(value)})
}

func (n *Node) firstRune(ident string) (rune, bool) {
	v, ok := n.first(ident)
	if !ok || v == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r, true
}

// GetText returns a property's value as text, with soft line breaks removed
// and escapes resolved.
func (n *Node) GetText(ident string) (Text, bool) {
	v, ok := n.first(ident)
	if !ok {
		return "", false
	}
	return DecodeText(v), true
}

func (n *Node) SetText(ident string, value Text) {
	n.setProperty(ident, []string{EncodeText(value)})
}

// GetSimpleText returns a property's value as single-line text, with line
// breaks folded to spaces.
func (n *Node) GetSimpleText(ident string) (SimpleText, bool) {
	v, ok := n.first(ident)
	if !ok {
		return "", false
	}
	return DecodeSimpleText(v), true
}

func (n *Node) SetSimpleText(ident string, value SimpleText) {
	n.setProperty(ident, []string{EncodeText(value)})
}

// compose splits a composed value on its first ":".
func compose(v string) (string, string, bool) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// GetPointPoint returns a property's value as a point:point pair.
func (n *Node) GetPointPoint(ident string) (Point, Point, bool) {
	v, ok := n.first(ident)
	if !ok {
		return "", "", false
	}
	return compose(v)
}

func (n *Node) SetPointPoint(ident string, first, second Point) {
	n.setProperty(ident, []string{first + ":" + second})
}

// GetPointSimpleText returns a property's value as a point:simple-text pair.
func (n *Node) GetPointSimpleText(ident string) (Point, SimpleText, bool) {
	v, ok := n.first(ident)
	if !ok {
		return "", "", false
	}
	first, second, ok := compose(v)
	if !ok {
		return "", "", false
	}
	return first, DecodeSimpleText(second), true
}

func (n *Node) SetPointSimpleText(ident string, first Point, second SimpleText) {
	n.setProperty(ident, []string{first + ":" + EncodeText(second)})
}

// GetSimpleTextSimpleText returns a property's value as a pair of simple
// texts, e.g. the AP application:version property.
func (n *Node) GetSimpleTextSimpleText(ident string) (SimpleText, SimpleText, bool) {
	v, ok := n.first(ident)
	if !ok {
		return "", "", false
	}
	first, second, ok := compose(v)
	if !ok {
		return "", "", false
	}
	return DecodeSimpleText(first), DecodeSimpleText(second), true
}

func (n *Node) SetSimpleTextSimpleText(ident string, first, second SimpleText) {
	n.setProperty(ident, []string{EncodeText(first) + ":" + EncodeText(second)})
}

// GetNumberNumber returns a property's value as a number:number pair.
func (n *Node) GetNumberNumber(ident string) (Number, Number, bool) {
	v, ok := n.first(ident)
	if !ok {
		return 0, 0, false
	}
	f, s, ok := compose(v)
	if !ok {
		return 0, 0, false
	}
	first, e := strconv.Atoi(f)
	if e != nil {
		return 0, 0, false
	}
	second, e := strconv.Atoi(s)
	if e != nil {
		return 0, 0, false
	}
	return first, second, true
}

func (n *Node) SetNumberNumber(ident string, first, second Number) {
	n.setProperty(ident, []string{strconv.Itoa(first) + ":" + strconv.Itoa(second)})
}

// GetNumberSimpleText returns a property's value as a number:simple-text
// pair, e.g. the FG figure property.
func (n *Node) GetNumberSimpleText(ident string) (Number, SimpleText, bool) {
	v, ok := n.first(ident)
	if !ok {
		return 0, "", false
	}
	f, s, ok := compose(v)
	if !ok {
		return 0, "", false
	}
	first, e := strconv.Atoi(f)
	if e != nil {
		return 0, "", false
	}
	return first, DecodeSimpleText(s), true
}

func (n *Node) SetNumberSimpleText(ident string, first Number, second SimpleText) {
	n.setProperty(ident, []string{strconv.Itoa(first) + ":" + EncodeText(second)})
}

// Collection is the ordered list of root nodes of a parsed SGF file,
// one per game record. It is never empty when returned by Parse.
type Collection []*Node
