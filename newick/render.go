package newick

import (
	"fmt"
	"strings"
)

// Render draws the tree rooted at `n` as indented text, one node per line in
// pre-order:
//
//	└── Inner
//	    ├── A (0.1000)
//	    └── B (0.2000)
//
// The root itself isn't drawn; its children are the top-level lines. A tree
// consisting of a single leaf is drawn as that leaf. Branch lengths are shown
// with four decimal places, and only when they are non-zero.
func Render(n Node) string {
	var b strings.Builder
	switch n := n.(type) {
	case *Leaf:
		renderNode(&b, n, "", true)
	case *Internal:
		for i, child := range n.Children {
			renderNode(&b, child, "", i == len(n.Children)-1)
		}
	}
	return b.String()
}

func renderNode(b *strings.Builder, n Node, prefix string, last bool) {
	connector, extend := "├── ", "│   "
	if last {
		connector, extend = "└── ", "    "
	}

	b.WriteString(prefix)
	b.WriteString(connector)
	b.WriteString(Name(n))
	if length := n.BranchLength(); length != 0 {
		fmt.Fprintf(b, " (%.4f)", length)
	}
	b.WriteByte('\n')

	if in, ok := n.(*Internal); ok {
		for i, child := range in.Children {
			renderNode(b, child, prefix+extend, i == len(in.Children)-1)
		}
	}
}
