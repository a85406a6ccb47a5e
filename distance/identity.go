package distance

import (
	"fmt"

	"github.com/TuftsBCB/seq"
)

// InputError is returned when the input handed to this package (or to the
// clustering built on top of it) violates its contract.
type InputError struct {
	Reason string
}

func (err *InputError) Error() string {
	return "invalid input: " + err.Reason
}

func inputErrorf(format string, v ...interface{}) error {
	return &InputError{fmt.Sprintf(format, v...)}
}

// Score is the percent identity between two distinct sequences.
type Score struct {
	A, B     string
	Identity float64
}

// Identity returns the percentage of alignment columns where `a` and `b`
// have exactly the same residue. The denominator is always the full
// alignment length, gap columns included.
func Identity(a, b seq.Sequence) (float64, error) {
	if len(a.Residues) != len(b.Residues) {
		return 0, inputErrorf("sequence '%s' has length %d, but sequence "+
			"'%s' has length %d", a.Name, len(a.Residues),
			b.Name, len(b.Residues))
	}
	if len(a.Residues) == 0 {
		return 0, inputErrorf("sequences '%s' and '%s' are empty",
			a.Name, b.Name)
	}

	same := 0
	for i, r := range a.Residues {
		if r == b.Residues[i] {
			same++
		}
	}
	return 100 * float64(same) / float64(len(a.Residues)), nil
}

// Pairwise computes the identity of every unordered pair of sequences. Scores
// are returned in row-major order: (0,1), (0,2), ..., (1,2), ...
//
// Sequence names must be unique.
func Pairwise(seqs []seq.Sequence) ([]Score, error) {
	seen := make(map[string]bool, len(seqs))
	for _, s := range seqs {
		if seen[s.Name] {
			return nil, inputErrorf("duplicate sequence identifier '%s'", s.Name)
		}
		seen[s.Name] = true
	}

	scores := make([]Score, 0, len(seqs)*(len(seqs)-1)/2)
	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			ident, err := Identity(seqs[i], seqs[j])
			if err != nil {
				return nil, err
			}
			scores = append(scores, Score{seqs[i].Name, seqs[j].Name, ident})
		}
	}
	return scores, nil
}
