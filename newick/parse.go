package newick

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseError describes malformed Newick input. Offset is the byte position
// in the tree text (after surrounding whitespace is trimmed).
type ParseError struct {
	Offset int
	Reason string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("Error at offset %d: %s", err.Offset, err.Reason)
}

// Parse reads a single tree in Newick format. One trailing ';' is optional.
//
// Parse never panics. When the parentheses of the tree are unbalanced, an
// empty *Internal node is returned together with a *ParseError so that
// callers that can live with a degenerate tree may keep going. Empty input
// and stray structural characters are reported as a *ParseError as well; in
// that case the returned tree is still the best reading of the input, or
// nil if there is no input at all.
func Parse(s string) (Node, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, string(terminal)))
	if len(s) == 0 {
		return nil, &ParseError{0, "empty tree"}
	}

	p := &parser{src: s}
	tree := p.subtree(0, len(s))
	if p.err != nil {
		return tree, p.err
	}
	return tree, nil
}

const (
	terminal      = ';'
	descDelimiter = ','
	descStart     = '('
	descEnd       = ')'
	lengthStart   = ':'
)

// parser is a recursive-descent parser over a byte range [lo, hi) of the
// source. Only the first error is kept.
type parser struct {
	src string
	err *ParseError
}

func (p *parser) failf(offset int, format string, v ...interface{}) {
	if p.err == nil {
		p.err = &ParseError{offset, fmt.Sprintf(format, v...)}
	}
}

func (p *parser) subtree(lo, hi int) Node {
	lo, hi = p.trim(lo, hi)
	if lo < hi && p.src[lo] == descStart {
		return p.internal(lo, hi)
	}
	return p.leaf(lo, hi)
}

func (p *parser) internal(lo, hi int) Node {
	end := p.matching(lo, hi)
	if end < 0 {
		p.failf(lo, "unbalanced parentheses")
		return &Internal{}
	}

	n := &Internal{Children: p.children(lo+1, end)}
	label, length := p.suffix(end+1, hi)
	if len(label) == 0 {
		label = Placeholder
	}
	n.Label, n.Length = label, length
	return n
}

// matching returns the position of the ')' that closes the '(' at `lo`, or
// -1 if there isn't one before `hi`.
func (p *parser) matching(lo, hi int) int {
	depth := 0
	for i := lo; i < hi; i++ {
		switch p.src[i] {
		case descStart:
			depth++
		case descEnd:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// children splits [lo, hi) on commas that aren't nested inside parentheses
// and parses each piece. An empty range has no children.
func (p *parser) children(lo, hi int) []Node {
	if tlo, thi := p.trim(lo, hi); tlo == thi {
		return nil
	}

	var kids []Node
	depth, start := 0, lo
	for i := lo; i < hi; i++ {
		switch p.src[i] {
		case descStart:
			depth++
		case descEnd:
			depth--
		case descDelimiter:
			if depth == 0 {
				kids = append(kids, p.subtree(start, i))
				start = i + 1
			}
		}
	}
	return append(kids, p.subtree(start, hi))
}

// suffix reads the optional `name[:length]` that follows a closing ')'.
func (p *parser) suffix(lo, hi int) (string, float64) {
	lo, hi = p.trim(lo, hi)
	if i := strings.IndexAny(p.src[lo:hi], "(),;"); i >= 0 {
		p.failf(lo+i, "unexpected '%c' after a descendent list", p.src[lo+i])
		return "", 0
	}
	return p.labelLength(lo, hi)
}

func (p *parser) leaf(lo, hi int) Node {
	if i := strings.IndexAny(p.src[lo:hi], "(),"); i >= 0 {
		p.failf(lo+i, "unexpected '%c' in a leaf label", p.src[lo+i])
	}
	name, length := p.labelLength(lo, hi)
	return &Leaf{Name: name, Length: length}
}

// labelLength splits [lo, hi) on its first ':'. Missing or malformed
// lengths are read as 0.
func (p *parser) labelLength(lo, hi int) (string, float64) {
	text := p.src[lo:hi]
	i := strings.IndexByte(text, lengthStart)
	if i < 0 {
		return strings.TrimSpace(text), 0
	}
	return strings.TrimSpace(text[:i]), parseLength(text[i+1:])
}

func (p *parser) trim(lo, hi int) (int, int) {
	for lo < hi && isSpace(p.src[lo]) {
		lo++
	}
	for hi > lo && isSpace(p.src[hi-1]) {
		hi--
	}
	return lo, hi
}

func parseLength(s string) float64 {
	length, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(length) || math.IsInf(length, 0) {
		return 0
	}
	return length
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
