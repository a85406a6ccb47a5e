package newick

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Marshal returns the Newick representation of the tree rooted at `n`,
// terminated by ';'. Branch lengths are written with the fewest digits that
// read back to the same value.
func Marshal(n Node) string {
	var b strings.Builder
	writeNode(&b, n, -1, true)
	b.WriteByte(terminal)
	return b.String()
}

// A Writer writes trees in Newick format, one tree per line.
type Writer struct {
	// The number of digits after the decimal point in branch lengths.
	// By default, this is -1, which uses the smallest number of digits
	// necessary to represent each length exactly.
	Precision int
	buf       *bufio.Writer
}

// NewWriter creates a new Newick writer that can write trees to an
// io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		Precision: -1,
		buf:       bufio.NewWriter(w),
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

// Write writes a single tree to the underlying io.Writer.
//
// You may need to call Flush in order for the changes to be written.
func (w *Writer) Write(n Node) error {
	var b strings.Builder
	writeNode(&b, n, w.Precision, true)
	b.WriteByte(terminal)
	b.WriteByte('\n')
	_, err := w.buf.WriteString(b.String())
	return err
}

// WriteAll writes a slice of trees to the underlying io.Writer, and calls
// Flush.
func (w *Writer) WriteAll(trees []Node) error {
	for _, tree := range trees {
		if err := w.Write(tree); err != nil {
			return err
		}
	}
	return w.Flush()
}

// writeNode emits `n` and its descendents in stored order. The branch length
// is left out only for a root whose length is exactly 0.
func writeNode(b *strings.Builder, n Node, prec int, root bool) {
	switch n := n.(type) {
	case *Leaf:
		b.WriteString(n.Name)
	case *Internal:
		b.WriteByte(descStart)
		for i, child := range n.Children {
			if i > 0 {
				b.WriteByte(descDelimiter)
			}
			writeNode(b, child, prec, false)
		}
		b.WriteByte(descEnd)
		b.WriteString(n.Label)
	default:
		return
	}
	if length := n.BranchLength(); !root || length != 0 {
		b.WriteByte(lengthStart)
		b.WriteString(strconv.FormatFloat(length, 'f', prec, 64))
	}
}
