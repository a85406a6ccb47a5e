// Package analysis runs the whole tree building pipeline over one alignment:
// pairwise identities, the distance matrix, the UPGMA tree and its Newick
// text, plus summary statistics about the alignment itself.
//
// Every call to Run returns its own Result. Nothing is cached between calls,
// so independent analyses may run concurrently.
package analysis

import (
	"fmt"

	"github.com/TuftsBCB/phylo/distance"
	"github.com/TuftsBCB/phylo/fasta"
	"github.com/TuftsBCB/phylo/newick"
	"github.com/TuftsBCB/phylo/upgma"
	"github.com/TuftsBCB/seq"
)

// DefaultThreshold is the conservation percentage a column must exceed to be
// counted as highly conserved.
const DefaultThreshold = 90.0

// Options tune the statistics computed by Run. The tree does not depend on
// them.
type Options struct {
	// Columns with a conservation above this percentage are counted as
	// highly conserved.
	Threshold float64
}

// DefaultOptions are the options used by the command line tools unless
// configured otherwise.
var DefaultOptions = Options{Threshold: DefaultThreshold}

// Result holds everything computed for one alignment.
type Result struct {
	// The input alignment.
	Alignment seq.MSA

	// One character per column. Either given by the aligner or computed by
	// ConservationLine.
	Conservation string

	// Identities of every pair of sequences, in row-major order.
	Scores []distance.Score

	Matrix *distance.Matrix
	Tree   newick.Node
	Newick string
	Stats  Stats
}

// Run computes identities, distances and the UPGMA tree of `m`. If
// `conservation` is empty, a conservation line is derived from the
// alignment.
//
// Sequences are identified by the first word of their name, so full FASTA
// headers can be passed in as they were read. `m` is not modified; the
// renamed alignment is available as Result.Alignment.
func Run(m seq.MSA, conservation string, opts Options) (*Result, error) {
	m = shortNames(m)
	ids := make([]string, len(m.Entries))
	for i, s := range m.Entries {
		ids[i] = s.Name
	}

	scores, err := distance.Pairwise(m.Entries)
	if err != nil {
		return nil, fmt.Errorf("Could not compute identities: %w", err)
	}
	matrix, err := distance.NewMatrix(ids, scores)
	if err != nil {
		return nil, fmt.Errorf("Could not build distance matrix: %w", err)
	}
	tree, err := upgma.Cluster(matrix)
	if err != nil {
		return nil, fmt.Errorf("Could not build tree: %w", err)
	}

	if len(conservation) == 0 {
		conservation = ConservationLine(m)
	}
	return &Result{
		Alignment:    m,
		Conservation: conservation,
		Scores:       scores,
		Matrix:       matrix,
		Tree:         tree,
		Newick:       newick.Marshal(tree),
		Stats:        Summarize(m, opts.Threshold),
	}, nil
}

// IdentityMatrix returns the percent identities as a square matrix in the
// order of the alignment. The diagonal is 100.
func (r *Result) IdentityMatrix() [][]float64 {
	n := r.Matrix.Len()
	ident := make([][]float64, n)
	for i := range ident {
		ident[i] = make([]float64, n)
		ident[i][i] = 100
	}
	for _, s := range r.Scores {
		i, j := r.Matrix.Index(s.A), r.Matrix.Index(s.B)
		ident[i][j], ident[j][i] = s.Identity, s.Identity
	}
	return ident
}

// shortNames returns a copy of `m` whose entries are named by the ID of
// their header. Residues are shared.
func shortNames(m seq.MSA) seq.MSA {
	short := m
	short.Entries = make([]seq.Sequence, len(m.Entries))
	for i, s := range m.Entries {
		s.Name = fasta.ParseHeader(s.Name).ID
		short.Entries[i] = s
	}
	return short
}
