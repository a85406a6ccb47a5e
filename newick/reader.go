package newick

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader corresponds to the state necessary to read trees from Newick
// formatted input. Trees are separated by ';'.
//
// Unlike Parse, a Reader is strict: a tree that cannot be read cleanly is
// reported as an error and no tree is returned for it.
type Reader struct {
	buf   *bufio.Reader
	trees int
}

// NewReader returns a reader ready for reading trees from `r`.
func NewReader(r io.Reader) *Reader {
	return &Reader{buf: bufio.NewReader(r)}
}

// ReadAll returns all of the Newick trees in the source input. The first
// error that occurs is returned with no trees. The error is never `io.EOF`.
func (r *Reader) ReadAll() ([]Node, error) {
	trees := make([]Node, 0)
	for {
		tree, err := r.ReadTree()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

// ReadTree reads a single tree from the source input. If the end of the
// input is reached, then a nil `Node` is returned with `io.EOF` as the error.
// The final tree of the input doesn't need a terminating ';'.
func (r *Reader) ReadTree() (Node, error) {
	text, err := r.buf.ReadString(terminal)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(strings.TrimSpace(text)) == 0 {
		return nil, io.EOF
	}

	r.trees++
	tree, perr := Parse(text)
	if perr != nil {
		return nil, fmt.Errorf("Error in tree %d: %w", r.trees, perr)
	}
	return tree, nil
}
