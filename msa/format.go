package msa

import (
	"fmt"
	"io"
	"strings"

	"github.com/TuftsBCB/seq"
)

// Formats lists the names accepted by ReadFormat.
var Formats = []string{"fasta", "a2m", "a3m", "stockholm", "clustal", "nexus"}

// ReadFormat reads an MSA in the named format. Only Clustal input carries a
// conservation line; for every other format the returned line is empty.
func ReadFormat(r io.Reader, format string) (seq.MSA, string, error) {
	return readFormat(r, format, false)
}

// ReadFormatTrusted is ReadFormat without residue validation for the FASTA,
// A2M, A3M and Stockholm formats. Residues are kept exactly as written.
func ReadFormatTrusted(r io.Reader, format string) (seq.MSA, string, error) {
	return readFormat(r, format, true)
}

func readFormat(r io.Reader, format string, trusted bool) (seq.MSA, string, error) {
	var (
		msa seq.MSA
		err error
	)
	switch strings.ToLower(format) {
	case "fasta", "fa", "afa":
		msa, err = readAligned(r, trusted)
	case "a2m", "a3m":
		if trusted {
			msa, err = ReadTrusted(r)
		} else {
			msa, err = Read(r)
		}
	case "stockholm", "sto":
		if trusted {
			msa, err = ReadStockholmTrusted(r)
		} else {
			msa, err = ReadStockholm(r)
		}
	case "clustal", "aln":
		return ReadClustal(r)
	case "nexus", "nex":
		msa, err = ReadNexus(r)
	default:
		return seq.MSA{}, "", fmt.Errorf("Unknown alignment format '%s' "+
			"(expected one of %s).", format, strings.Join(Formats, ", "))
	}
	return msa, "", err
}

// WriteFormat writes `msa` in the named format. The conservation line is only
// written by the Clustal writer. NEXUS output is not supported.
func WriteFormat(w io.Writer, msa seq.MSA, conservation, format string) error {
	switch strings.ToLower(format) {
	case "fasta", "fa", "afa":
		return WriteFasta(w, msa)
	case "a2m":
		return WriteA2M(w, msa)
	case "a3m":
		return WriteA3M(w, msa)
	case "stockholm", "sto":
		return WriteStockholm(w, msa)
	case "clustal", "aln":
		return WriteClustal(w, msa, conservation)
	}
	return fmt.Errorf("Cannot write alignments in format '%s'.", format)
}
