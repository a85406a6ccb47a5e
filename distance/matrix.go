package distance

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// Matrix is a square, symmetric distance matrix. Row and column i both
// correspond to IDs[i].
type Matrix struct {
	IDs []string
	D   [][]float64
}

// NewMatrix builds the full distance matrix over `ids` from identity scores.
// Every unordered pair of distinct ids must have exactly one score (in
// either orientation), with an identity in [0, 100]. Identifiers must be
// non-empty and free of whitespace and Newick punctuation.
func NewMatrix(ids []string, scores []Score) (*Matrix, error) {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		if err := checkID(id); err != nil {
			return nil, err
		}
		if _, ok := index[id]; ok {
			return nil, inputErrorf("duplicate sequence identifier '%s'", id)
		}
		index[id] = i
	}

	n := len(ids)
	m := &Matrix{IDs: append([]string(nil), ids...), D: make([][]float64, n)}
	seen := make([][]bool, n)
	for i := range m.D {
		m.D[i] = make([]float64, n)
		seen[i] = make([]bool, n)
	}
	for _, s := range scores {
		i, ok := index[s.A]
		if !ok {
			return nil, inputErrorf("score for unknown sequence '%s'", s.A)
		}
		j, ok := index[s.B]
		if !ok {
			return nil, inputErrorf("score for unknown sequence '%s'", s.B)
		}
		if i == j {
			return nil, inputErrorf("score pairs sequence '%s' with itself", s.A)
		}
		if math.IsNaN(s.Identity) || s.Identity < 0 || s.Identity > 100 {
			return nil, inputErrorf("identity %g between '%s' and '%s' is "+
				"outside [0, 100]", s.Identity, s.A, s.B)
		}
		if seen[i][j] {
			return nil, inputErrorf("more than one identity score between "+
				"'%s' and '%s'", s.A, s.B)
		}
		d := 1 - s.Identity/100
		m.D[i][j], m.D[j][i] = d, d
		seen[i][j], seen[j][i] = true, true
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !seen[i][j] {
				return nil, inputErrorf("missing identity score between "+
					"'%s' and '%s'", ids[i], ids[j])
			}
		}
	}
	return m, nil
}

// Len returns the number of rows (and columns) in the matrix.
func (m *Matrix) Len() int {
	return len(m.IDs)
}

// At returns the distance between the i'th and j'th sequences.
func (m *Matrix) At(i, j int) float64 {
	return m.D[i][j]
}

// Index returns the row of the sequence named `id`, or -1 if it isn't in the
// matrix.
func (m *Matrix) Index(id string) int {
	for i := range m.IDs {
		if m.IDs[i] == id {
			return i
		}
	}
	return -1
}

// Validate checks that every identifier can be used as a Newick label, that
// the matrix is square, symmetric and has a zero diagonal, and that every
// distance is a non-negative number.
func (m *Matrix) Validate() error {
	for _, id := range m.IDs {
		if err := checkID(id); err != nil {
			return err
		}
	}
	if len(m.D) != len(m.IDs) {
		return inputErrorf("matrix has %d rows but %d identifiers",
			len(m.D), len(m.IDs))
	}
	for i, row := range m.D {
		if len(row) != len(m.IDs) {
			return inputErrorf("row %d has %d columns, expected %d",
				i, len(row), len(m.IDs))
		}
	}
	for i, row := range m.D {
		if row[i] != 0 {
			return inputErrorf("distance of '%s' to itself is %g",
				m.IDs[i], row[i])
		}
		for j, d := range row {
			if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
				return inputErrorf("invalid distance %g between '%s' and '%s'",
					d, m.IDs[i], m.IDs[j])
			}
			if d != m.D[j][i] {
				return inputErrorf("distance between '%s' and '%s' is not "+
					"symmetric (%g != %g)", m.IDs[i], m.IDs[j], d, m.D[j][i])
			}
		}
	}
	return nil
}

// WritePhylip writes the matrix in the square PHYLIP distance format: the
// number of sequences on the first line, then one line per sequence with its
// identifier followed by its distances.
func WritePhylip(w io.Writer, m *Matrix) error {
	buf := bufio.NewWriter(w)
	var err error
	pf := func(format string, v ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(buf, format, v...)
	}

	width := 10
	for _, id := range m.IDs {
		if len(id) >= width {
			width = len(id) + 1
		}
	}
	pf("%d\n", m.Len())
	for i, id := range m.IDs {
		pf("%-*s", width, id)
		for j := range m.D[i] {
			pf(" %.6f", m.D[i][j])
		}
		pf("\n")
	}
	if err != nil {
		return err
	}
	return buf.Flush()
}

// labelChars can't appear in a sequence identifier, since the identifier is
// written unquoted as a Newick leaf label.
const labelChars = "(),:;[] \t\r\n"

func checkID(id string) error {
	if len(id) == 0 {
		return inputErrorf("empty sequence identifier")
	}
	if i := strings.IndexAny(id, labelChars); i >= 0 {
		return inputErrorf("sequence identifier '%s' contains %q", id, id[i])
	}
	return nil
}
