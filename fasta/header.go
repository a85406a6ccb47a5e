package fasta

import (
	"strings"

	"github.com/TuftsBCB/seq"
)

// Header is a FASTA header line split into its conventional parts.
type Header struct {
	// The first word of the header. Tools that key sequences by name
	// (tree builders in particular) expect this to be unique.
	ID string

	// For UniProt style IDs (db|accession|entry name) these are the second
	// and third fields. Otherwise both are the ID.
	Accession string
	Name      string

	// Everything after the ID.
	Description string

	// Taken from an "OS=" field (UniProt) or a trailing "[...]" (NCBI).
	// Empty when neither is present.
	Organism string
}

// ParseHeader splits a header, with or without its leading '>'.
func ParseHeader(header string) Header {
	header = strings.TrimSpace(strings.TrimPrefix(header, ">"))

	var h Header
	if i := strings.IndexAny(header, " \t"); i >= 0 {
		h.ID, h.Description = header[:i], strings.TrimSpace(header[i+1:])
	} else {
		h.ID = header
	}
	h.Accession, h.Name = h.ID, h.ID
	if fields := strings.Split(h.ID, "|"); len(fields) >= 3 {
		h.Accession, h.Name = fields[1], fields[2]
	}

	switch {
	case strings.Contains(h.Description, "OS="):
		organism := h.Description[strings.Index(h.Description, "OS=")+3:]
		if end := strings.Index(organism, " OX="); end >= 0 {
			organism = organism[:end]
		}
		h.Organism = strings.TrimSpace(organism)
	case strings.HasSuffix(h.Description, "]"):
		if start := strings.LastIndex(h.Description, "["); start >= 0 {
			h.Organism = strings.TrimSpace(
				h.Description[start+1 : len(h.Description)-1])
		}
	}
	return h
}

// proteinResidues are the twenty standard amino acids.
const proteinResidues = "ACDEFGHIKLMNPQRSTVWY"

// TranslateProtein is a stricter TranslateNormal for protein sequences: only
// the twenty standard amino acids (in either case) and '-' are accepted. A
// '*' marking the end of a sequence is dropped.
func TranslateProtein(b byte) (seq.Residue, bool) {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	switch {
	case b == '*':
		return 0, true
	case b == '-', strings.IndexByte(proteinResidues, b) >= 0:
		return seq.Residue(b), true
	}
	return 0, false
}

// ReadProtein reads the next sequence like Read does, but rejects anything
// that isn't a standard amino acid or a gap.
func (r *Reader) ReadProtein() (seq.Sequence, error) {
	s, err := r.ReadSequence(TranslateProtein)
	if !isNull(s) {
		return s, nil
	}
	return seq.Sequence{}, err
}
