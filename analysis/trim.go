package analysis

import (
	"strings"

	"github.com/TuftsBCB/seq"
)

// TrimAfter returns a copy of `s` that ends with the first occurrence of
// `motif`. If the motif doesn't occur, `s` is returned unchanged and the
// second return value is false.
func TrimAfter(s seq.Sequence, motif string) (seq.Sequence, bool) {
	pos := strings.Index(residueString(s.Residues), motif)
	if pos < 0 || len(motif) == 0 {
		return s, false
	}
	return slice(s, 0, pos+len(motif)), true
}

// TrimBefore returns a copy of `s` that starts with the first occurrence of
// `motif`. If the motif doesn't occur, `s` is returned unchanged and the
// second return value is false.
func TrimBefore(s seq.Sequence, motif string) (seq.Sequence, bool) {
	pos := strings.Index(residueString(s.Residues), motif)
	if pos < 0 || len(motif) == 0 {
		return s, false
	}
	return slice(s, pos, len(s.Residues)), true
}

func slice(s seq.Sequence, start, end int) seq.Sequence {
	return seq.Sequence{
		Name:     s.Name,
		Residues: append([]seq.Residue(nil), s.Residues[start:end]...),
	}
}
