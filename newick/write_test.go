package newick

import (
	"bytes"
	"testing"
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		name string
		tree Node
		want string
	}{
		{
			"single leaf",
			&Leaf{Name: "A"},
			"A;",
		},
		{
			"root with length",
			&Leaf{Name: "A", Length: 0.5},
			"A:0.5;",
		},
		{
			"nested",
			&Internal{Children: []Node{
				&Internal{Children: []Node{
					&Leaf{Name: "A", Length: 0.125},
					&Leaf{Name: "B", Length: 0.125},
				}, Length: 0.0625},
				&Leaf{Name: "C", Length: 0.1875},
			}},
			"((A:0.125,B:0.125):0.0625,C:0.1875);",
		},
		{
			"zero lengths kept below the root",
			&Internal{Label: "R", Children: []Node{
				&Leaf{Name: "x"},
				&Internal{Label: "I", Children: []Node{&Leaf{Name: "y"}}},
			}},
			"(x:0,(y:0)I:0)R;",
		},
		{
			"children keep their order",
			&Internal{Children: []Node{
				&Leaf{Name: "Z", Length: 1},
				&Leaf{Name: "A", Length: 2},
			}},
			"(Z:1,A:2);",
		},
		{
			"empty internal",
			&Internal{},
			"();",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Marshal(tt.tree); got != tt.want {
				t.Fatalf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWriterPrecision(t *testing.T) {
	tree := &Internal{Children: []Node{
		&Leaf{Name: "A", Length: 1.0 / 3},
		&Leaf{Name: "B", Length: 0.25},
	}}

	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	w.Precision = 4
	if err := w.WriteAll([]Node{tree, &Leaf{Name: "C"}}); err != nil {
		t.Fatal(err)
	}
	want := "(A:0.3333,B:0.2500);\nC;\n"
	if buf.String() != want {
		t.Fatalf("Writer output is\n%s\nbut should be\n%s", buf.String(), want)
	}

	trees, err := NewReader(buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 2 {
		t.Fatalf("Expected to read back 2 trees but got %d", len(trees))
	}
}

func TestWithLength(t *testing.T) {
	leaf := &Leaf{Name: "A", Length: 1}
	c := WithLength(leaf, 2)
	if leaf.Length != 1 || c.BranchLength() != 2 {
		t.Fatalf("WithLength must copy: original %g, copy %g",
			leaf.Length, c.BranchLength())
	}
	in := &Internal{Label: "X", Height: 3}
	ci := WithLength(in, 4).(*Internal)
	if in.Length != 0 || ci.Length != 4 || ci.Label != "X" || ci.Height != 3 {
		t.Fatalf("WithLength lost fields: %#v", ci)
	}
}
