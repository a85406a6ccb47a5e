package newick

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"
)

func sample(s string) io.Reader {
	return strings.NewReader(s)
}

func TestParser(t *testing.T) {
	r := NewReader(sample("(A,B,(X,Y)C)ROOT;(A,B,C)ROOT;"))
	trees, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 2 {
		t.Fatalf("Expected 2 trees but got %d", len(trees))
	}

	first := trees[0].(*Internal)
	if first.Label != "ROOT" || len(first.Children) != 3 {
		t.Fatalf("Unexpected root: %q with %d children",
			first.Label, len(first.Children))
	}
	c := first.Children[2].(*Internal)
	if c.Label != "C" || strings.Join(Leaves(c), ",") != "X,Y" {
		t.Fatalf("Unexpected subtree %q with leaves %v", c.Label, Leaves(c))
	}
	if got := strings.Join(Leaves(trees[1]), ","); got != "A,B,C" {
		t.Fatalf("Expected leaves A,B,C but got %s", got)
	}
}

func TestParseLengths(t *testing.T) {
	tree, err := Parse("((d1qbea_:0.597492,d1dwna_:0.632208):0.162939," +
		"(d1gav0_:0.526213,(d1unaa_:0.457107,d2iznb1:0.523093):0.043387));")
	if err != nil {
		t.Fatal(err)
	}
	root := tree.(*Internal)
	if root.Label != Placeholder || root.Length != 0 {
		t.Fatalf("Root should be unnamed with no length, got %q:%g",
			root.Label, root.Length)
	}
	left := root.Children[0].(*Internal)
	if left.Length != 0.162939 {
		t.Fatalf("Expected length 0.162939 but got %g", left.Length)
	}
	leaf := left.Children[1].(*Leaf)
	if leaf.Name != "d1dwna_" || leaf.Length != 0.632208 {
		t.Fatalf("Unexpected leaf %s:%g", leaf.Name, leaf.Length)
	}
	want := "d1qbea_,d1dwna_,d1gav0_,d1unaa_,d2iznb1"
	if got := strings.Join(Leaves(tree), ","); got != want {
		t.Fatalf("Leaves are %s, want %s", got, want)
	}
	if Internals(tree) != 4 {
		t.Fatalf("Expected 4 internal nodes but got %d", Internals(tree))
	}
}

func TestParseLenient(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		leaves string
		check  func(t *testing.T, n Node)
	}{
		{"no terminal", "(A:1,B:2)", "A,B", nil},
		{"whitespace", " ( A : 1 ,\n\tB:2 ) X : 0.5 ;\n", "A,B",
			func(t *testing.T, n Node) {
				in := n.(*Internal)
				if in.Label != "X" || in.Length != 0.5 {
					t.Fatalf("Expected X:0.5, got %s:%g", in.Label, in.Length)
				}
			}},
		{"empty labels", "(,,(,));", ",,,", nil},
		{"lengths only", "(:0.1,:0.2,(:0.3,:0.4):0.5);", ",,,",
			func(t *testing.T, n Node) {
				inner := n.(*Internal).Children[2]
				if inner.BranchLength() != 0.5 {
					t.Fatalf("Expected 0.5, got %g", inner.BranchLength())
				}
			}},
		{"bad length", "(A:abc,B:)C:x;", "A,B",
			func(t *testing.T, n Node) {
				in := n.(*Internal)
				if in.Label != "C" || in.Length != 0 ||
					in.Children[0].BranchLength() != 0 {
					t.Fatalf("Malformed lengths should read as 0")
				}
			}},
		{"no children", "();", "",
			func(t *testing.T, n Node) {
				if len(n.(*Internal).Children) != 0 {
					t.Fatalf("Expected no children")
				}
			}},
		{"single child", "(B)A;", "B",
			func(t *testing.T, n Node) {
				if n.(*Internal).Label != "A" {
					t.Fatalf("Expected root label A")
				}
			}},
		{"leaf only", "A:0.3;", "A",
			func(t *testing.T, n Node) {
				if l := n.(*Leaf); l.Name != "A" || l.Length != 0.3 {
					t.Fatalf("Expected leaf A:0.3, got %s:%g", l.Name, l.Length)
				}
			}},
		{"deep nesting", "((((A,B),C),D),E);", "A,B,C,D,E",
			func(t *testing.T, n Node) {
				if Internals(n) != 4 {
					t.Fatalf("Expected 4 internal nodes, got %d", Internals(n))
				}
			}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("%s", err)
			}
			if got := strings.Join(Leaves(tree), ","); got != tt.leaves {
				t.Fatalf("Leaves are %q, want %q", got, tt.leaves)
			}
			if tt.check != nil {
				tt.check(t, tree)
			}
		})
	}
}

func TestParseUnbalanced(t *testing.T) {
	for i := 0; i < 2; i++ {
		tree, err := Parse("(A:1,B:2")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Expected a ParseError, got %v", err)
		}
		if !strings.Contains(perr.Reason, "unbalanced") {
			t.Fatalf("Unexpected reason: %s", perr.Reason)
		}
		in, ok := tree.(*Internal)
		if !ok || len(in.Children) != 0 || in.Label != "" || in.Length != 0 {
			t.Fatalf("Expected an empty internal node, got %#v", tree)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		" ; ",
		"(A,B)C,D;",
		"(A,B))",
		"A,B;",
	}
	for _, input := range tests {
		_, err := Parse(input)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Expected a ParseError for %q, got %v", input, err)
		}
	}
}

func TestReaderError(t *testing.T) {
	r := NewReader(sample("(A,B);(A,B;"))
	if _, err := r.ReadTree(); err != nil {
		t.Fatal(err)
	}
	_, err := r.ReadTree()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected a ParseError, got %v", err)
	}
	if _, err := r.ReadTree(); err != io.EOF {
		t.Fatalf("Expected io.EOF, got %v", err)
	}

	if _, err := NewReader(sample("(A,B);(A,B;")).ReadAll(); err == nil {
		t.Fatalf("ReadAll should fail on a malformed tree")
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"((A:0.125,B:0.125):0.0625,C:0.1875);",
		"(((a:0.1,b:0.1):0.05,(c:0.02,d:0.02):0.13):0.3,e:0.45);",
		"(x:0,y:0);",
		"solo;",
	}
	for _, input := range inputs {
		tree, err := Parse(input)
		if err != nil {
			t.Fatalf("%s", err)
		}
		again, err := Parse(Marshal(tree))
		if err != nil {
			t.Fatalf("%s", err)
		}
		testSameTree(t, tree, again)
	}
}

// testSameTree checks that two trees have the same topology, leaf names and
// branch lengths (within 1e-9).
func testSameTree(t *testing.T, a, b Node) {
	if math.Abs(a.BranchLength()-b.BranchLength()) > 1e-9 {
		t.Fatalf("Branch lengths differ: %g != %g",
			a.BranchLength(), b.BranchLength())
	}
	switch a := a.(type) {
	case *Leaf:
		lb, ok := b.(*Leaf)
		if !ok || a.Name != lb.Name {
			t.Fatalf("Expected leaf %s, got %#v", a.Name, b)
		}
	case *Internal:
		ib, ok := b.(*Internal)
		if !ok || len(a.Children) != len(ib.Children) {
			t.Fatalf("Topology differs at %s", Name(a))
		}
		for i := range a.Children {
			testSameTree(t, a.Children[i], ib.Children[i])
		}
	}
}
