package sgf

import (
	"strings"
	"testing"

	"github.com/y-ich/sgf/internal/test"
)

func parseRoot(t *testing.T, src string) *Node {
	c, e := ParseString("sample", src)
	test.ExpectNoError(t, e)
	return c[0]
}

func TestGetNumber(t *testing.T) {
	root := parseRoot(t, "(;CA[UTF-8]FF[4])")
	v, ok := root.GetNumber("FF")
	test.Assert(t, ok, "expecting FF")
	test.ExpectInt(t, 4, v)

	_, ok = root.GetNumber("XX")
	test.Assert(t, !ok, "expecting no XX")
	_, ok = root.GetNumber("CA")
	test.Assert(t, !ok, "expecting CA not to parse as a number")
}

func TestGetReal(t *testing.T) {
	root := parseRoot(t, "(;FF[4]KM[6.5])")
	v, ok := root.GetReal("KM")
	test.Assert(t, ok && v == 6.5, "expecting KM 6.5, got %v (%v)", v, ok)
}

func TestGetPoint(t *testing.T) {
	root := parseRoot(t, "(;FF[4];B[ab])")
	v, ok := root.Children[0].GetPoint("B")
	test.Assert(t, ok, "expecting B")
	test.ExpectString(t, "ab", v)
}

func TestGetPoints(t *testing.T) {
	root := parseRoot(t, "(;FF[4]AB[aa][bb])")
	vs, ok := root.GetPoints("AB")
	test.Assert(t, ok, "expecting AB")
	test.ExpectString(t, "aa bb", strings.Join(vs, " "))
}

func TestGetColor(t *testing.T) {
	root := parseRoot(t, "(;FF[4]PL[B])")
	v, ok := root.GetColor("PL")
	test.Assert(t, ok && v == 'B', "expecting color B, got %q (%v)", v, ok)
}

func TestGetDouble(t *testing.T) {
	root := parseRoot(t, "(;FF[4]GB[2])")
	v, ok := root.GetDouble("GB")
	test.Assert(t, ok && v == '2', "expecting double 2, got %q (%v)", v, ok)
}

func TestGetText(t *testing.T) {
	root := parseRoot(t, "(;FF[4]GC[text\ntext])")
	v, ok := root.GetText("GC")
	test.Assert(t, ok, "expecting GC")
	test.ExpectString(t, "text\ntext", v)
}

func TestGetSimpleText(t *testing.T) {
	root := parseRoot(t, "(;FF[4]N[simple\\\ntext\nsimple])")
	v, ok := root.GetSimpleText("N")
	test.Assert(t, ok, "expecting N")
	test.ExpectString(t, "simpletext simple", v)
}

func TestGetSimpleTextSimpleText(t *testing.T) {
	root := parseRoot(t, "(;FF[4]AP[mimiaka:1.0])")
	app, version, ok := root.GetSimpleTextSimpleText("AP")
	test.Assert(t, ok, "expecting AP")
	test.ExpectString(t, "mimiaka", app)
	test.ExpectString(t, "1.0", version)

	_, _, ok = root.GetSimpleTextSimpleText("FF")
	test.Assert(t, !ok, "expecting FF not to split")
}

func TestGetPointPoint(t *testing.T) {
	root := parseRoot(t, "(;FF[4]VW[aa:ss])")
	first, second, ok := root.GetPointPoint("VW")
	test.Assert(t, ok, "expecting VW")
	test.ExpectString(t, "aa", first)
	test.ExpectString(t, "ss", second)
}

func TestGetNumberNumber(t *testing.T) {
	root := parseRoot(t, "(;FF[4]SZ[19:20])")
	first, second, ok := root.GetNumberNumber("SZ")
	test.Assert(t, ok, "expecting SZ")
	test.ExpectInt(t, 19, first)
	test.ExpectInt(t, 20, second)
}

func TestGetNumberSimpleText(t *testing.T) {
	root := parseRoot(t, "(;FF[4]FG[257:Figure 1])")
	num, caption, ok := root.GetNumberSimpleText("FG")
	test.Assert(t, ok, "expecting FG")
	test.ExpectInt(t, 257, num)
	test.ExpectString(t, "Figure 1", caption)
}

func TestSetText(t *testing.T) {
	root := parseRoot(t, "(;FF[4]AP[mimiaka:1.0])")
	root.SetText("GC", "test:")
	v, ok := root.GetText("GC")
	test.Assert(t, ok, "expecting GC")
	test.ExpectString(t, "test:", v)
	// Stored escaped.
	test.ExpectString(t, `test\:`, root.Values("GC")[0])
}

func TestSettersKeepIdentOrder(t *testing.T) {
	root := parseRoot(t, "(;FF[4]CA[UTF-8])")
	root.SetNumber("FF", 5)
	root.SetSimpleText("PB", "Black")
	test.ExpectString(t, "FF CA PB", strings.Join(root.Idents(), " "))

	v, _ := root.GetNumber("FF")
	test.ExpectInt(t, 5, v)
}

func TestSetOnNewNode(t *testing.T) {
	n := NewNode()
	n.SetNumber("FF", 4)
	n.SetPointPoint("VW", "aa", "ss")
	test.ExpectString(t, "FF VW", strings.Join(n.Idents(), " "))
	test.ExpectString(t, "aa:ss", n.Values("VW")[0])
}

func TestLeafAndMainLine(t *testing.T) {
	root := parseRoot(t, "(;FF[4];B[aa];W[bb](;B[cc])(;B[dd]))")
	// Leaf follows first children all the way down, through the branch.
	v, _ := root.Leaf().GetPoint("B")
	test.ExpectString(t, "cc", v)

	line := root.MainLine()
	test.ExpectInt(t, 4, len(line))
	test.Assert(t, line[len(line)-1] == root.Leaf(), "expecting main line to end at the leaf")
}

func TestNumNodesAndWalk(t *testing.T) {
	root := parseRoot(t, "(;FF[4];B[aa];W[bb](;B[cc])(;B[dd]))")
	test.ExpectInt(t, 5, root.NumNodes())

	visited := 0
	root.Walk(func(n *Node) bool {
		visited++
		return true
	})
	test.ExpectInt(t, 5, visited)

	// Pruning at the branch point stops the descent there.
	visited = 0
	root.Walk(func(n *Node) bool {
		visited++
		return len(n.Children) < 2
	})
	test.ExpectInt(t, 3, visited)
}
