package newick

// Placeholder is the label given to internal nodes that have no name of their
// own, both when parsing and when rendering.
const Placeholder = "Inner"

// Node corresponds to any value representable in a Newick format. It is
// either a *Leaf or an *Internal node.
type Node interface {
	// BranchLength is the distance between this node and its parent.
	BranchLength() float64

	node()
}

// Leaf is a terminal node, usually one of the input sequences.
type Leaf struct {
	Name   string
	Length float64
}

// Internal is a node with descendents. Children are kept in the order they
// were added (or read), which is significant.
type Internal struct {
	// All children of this node, which may be empty.
	Children []Node

	// The label of this node. If it's empty, then this node does
	// not have a name.
	Label string

	// The branch length of this node corresponding to the distance between
	// it and its parent node.
	Length float64

	// The clustering depth of this node. It isn't part of the Newick
	// format, so parsed trees always have a zero height.
	Height float64
}

func (n *Leaf) BranchLength() float64     { return n.Length }
func (n *Internal) BranchLength() float64 { return n.Length }

func (*Leaf) node()     {}
func (*Internal) node() {}

// WithLength returns a shallow copy of `n` whose branch length is `length`.
// The original node is not modified.
func WithLength(n Node, length float64) Node {
	switch n := n.(type) {
	case *Leaf:
		c := *n
		c.Length = length
		return &c
	case *Internal:
		c := *n
		c.Length = length
		return &c
	}
	return n
}

// Name returns the name of a leaf or the label of an internal node. If
// neither is set, Placeholder is returned.
func Name(n Node) string {
	var name string
	switch n := n.(type) {
	case *Leaf:
		name = n.Name
	case *Internal:
		name = n.Label
	}
	if len(name) == 0 {
		return Placeholder
	}
	return name
}

// Leaves returns the names of all leaves below `n` (including `n` itself),
// in pre-order.
func Leaves(n Node) []string {
	var names []string
	var walk func(n Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Leaf:
			names = append(names, n.Name)
		case *Internal:
			for _, child := range n.Children {
				walk(child)
			}
		}
	}
	walk(n)
	return names
}

// Internals returns the number of internal nodes in the tree rooted at `n`.
func Internals(n Node) int {
	in, ok := n.(*Internal)
	if !ok {
		return 0
	}
	count := 1
	for _, child := range in.Children {
		count += Internals(child)
	}
	return count
}
