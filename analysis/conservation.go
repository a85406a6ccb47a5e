package analysis

import (
	"github.com/TuftsBCB/seq"
	"github.com/mingzhi/gomath/stat/desc"
)

// Stats summarizes the conservation of an alignment.
type Stats struct {
	NumSequences        int
	Length              int
	AverageConservation float64

	// Number of columns whose conservation is above Threshold.
	HighlyConserved int
	Threshold       float64
}

// Row is one labelled line of an alignment preview.
type Row struct {
	ID       string
	Sequence string
}

func isGap(r seq.Residue) bool {
	return r == '-' || r == '.'
}

func columns(m seq.MSA) int {
	if len(m.Entries) == 0 {
		return 0
	}
	return len(m.Entries[0].Residues)
}

// ColumnConservation returns, for every column, the percentage of non-gap
// residues that are equal to the most common one. Columns made only of gaps
// score 0.
func ColumnConservation(m seq.MSA) []float64 {
	scores := make([]float64, columns(m))
	counts := make(map[seq.Residue]int)
	for col := range scores {
		for r := range counts {
			delete(counts, r)
		}
		nonGaps, best := 0, 0
		for _, s := range m.Entries {
			r := s.Residues[col]
			if isGap(r) {
				continue
			}
			nonGaps++
			counts[r]++
			if counts[r] > best {
				best = counts[r]
			}
		}
		if nonGaps > 0 {
			scores[col] = 100 * float64(best) / float64(nonGaps)
		}
	}
	return scores
}

// Summarize computes alignment statistics. A column is highly conserved when
// its conservation is strictly greater than `threshold`.
func Summarize(m seq.MSA, threshold float64) Stats {
	stats := Stats{
		NumSequences: len(m.Entries),
		Length:       columns(m),
		Threshold:    threshold,
	}
	scores := ColumnConservation(m)
	if len(scores) == 0 {
		return stats
	}

	mean := desc.NewMean()
	for _, score := range scores {
		mean.Increment(score)
		if score > threshold {
			stats.HighlyConserved++
		}
	}
	stats.AverageConservation = mean.GetResult()
	return stats
}

// ConservationLine derives a Clustal-like annotation for alignments that
// don't come with one:
//
//	'*' all non-gap residues in the column are identical
//	':' at most two different residues, in at least two sequences
//	'.' the column has no gaps
//	' ' otherwise
func ConservationLine(m seq.MSA) string {
	line := make([]byte, columns(m))
	for col := range line {
		var distinct []seq.Residue
		nonGaps, gapped := 0, false
		for _, s := range m.Entries {
			r := s.Residues[col]
			if isGap(r) {
				gapped = true
				continue
			}
			nonGaps++
			if !containsResidue(distinct, r) {
				distinct = append(distinct, r)
			}
		}
		switch {
		case nonGaps > 0 && len(distinct) == 1:
			line[col] = '*'
		case nonGaps > 1 && len(distinct) <= 2:
			line[col] = ':'
		case !gapped:
			line[col] = '.'
		default:
			line[col] = ' '
		}
	}
	return string(line)
}

// Preview returns the first `width` columns of every sequence, followed by a
// "Conservation" row. If `conservation` is empty, ConservationLine is used.
// A width <= 0 shows the whole alignment.
func Preview(m seq.MSA, conservation string, width int) []Row {
	if len(conservation) == 0 {
		conservation = ConservationLine(m)
	}
	cut := func(s string) string {
		if width > 0 && len(s) > width {
			return s[:width]
		}
		return s
	}

	rows := make([]Row, 0, len(m.Entries)+1)
	for _, s := range m.Entries {
		rows = append(rows, Row{s.Name, cut(residueString(s.Residues))})
	}
	return append(rows, Row{"Conservation", cut(conservation)})
}

func containsResidue(rs []seq.Residue, r seq.Residue) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

func residueString(rs []seq.Residue) string {
	bs := make([]byte, len(rs))
	for i, r := range rs {
		bs[i] = byte(r)
	}
	return string(bs)
}
