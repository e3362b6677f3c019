package sgf

import (
	"io"
	"strings"
)

// The canonical form is whitespace-free: properties keep their source order,
// values are emitted verbatim (they are stored in source syntactic form), a
// single-child node continues the ";" sequence, and a node with two or more
// children emits each child as a parenthesized variation. Parsing canonical
// output yields the identical tree.

// WriteTree writes the game tree rooted at n in canonical form.
func (n *Node) WriteTree(w io.StringWriter) error {
	tw := treeWriter{w: w}
	tw.writeGameTree(n)
	return tw.e
}

// String returns the collection in canonical form.
func (c Collection) String() string {
	var b strings.Builder
	c.Write(&b)
	return b.String()
}

// Write writes every game tree of the collection in canonical form.
func (c Collection) Write(w io.StringWriter) error {
	tw := treeWriter{w: w}
	for _, root := range c {
		tw.writeGameTree(root)
	}
	return tw.e
}

// treeWriter latches the first write error and turns the rest into no-ops.
type treeWriter struct {
	w io.StringWriter
	e error
}

func (tw *treeWriter) write(s string) {
	if tw.e == nil {
		_, tw.e = tw.w.WriteString(s)
	}
}

func (tw *treeWriter) writeGameTree(n *Node) {
	tw.write("(")
	for {
		tw.writeNode(n)
		if len(n.Children) != 1 {
			break
		}
		n = n.Children[0]
	}
	for _, c := range n.Children {
		tw.writeGameTree(c)
	}
	tw.write(")")
}

func (tw *treeWriter) writeNode(n *Node) {
	tw.write(";")
	for _, ident := range n.idents {
		tw.write(ident)
		for _, v := range n.props[ident] {
			tw.write("[")
			tw.write(v)
			tw.write("]")
		}
	}
}
