package msa

import (
	"fmt"
	"io"

	"github.com/TuftsBCB/phylo/fasta"
	"github.com/TuftsBCB/seq"
)

// translateA2M keeps case, since lower case letters and '.' mark insert
// columns in A2M and A3M. A trailing '*' is dropped.
func translateA2M(b byte) (seq.Residue, bool) {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return seq.Residue(b), true
	case b == '-', b == '.':
		return seq.Residue(b), true
	case b == '*':
		return 0, true
	}
	return 0, false
}

// Read reads one MSA in A2M or A3M format (plain aligned FASTA is a subset of
// both) until io.EOF. Lower case residues are insertions.
func Read(r io.Reader) (seq.MSA, error) {
	return readA2M(fasta.NewReader(r))
}

// ReadTrusted is Read without residue validation, for input produced by a
// tool that is known to write valid alignments.
func ReadTrusted(r io.Reader) (seq.MSA, error) {
	fr := fasta.NewReader(r)
	fr.TrustSequences = true
	return readA2M(fr)
}

func readA2M(r *fasta.Reader) (seq.MSA, error) {
	msa := seq.NewMSA()
	for {
		s, err := r.ReadSequence(translateA2M)
		if len(s.Name) == 0 && s.Residues == nil {
			if err == io.EOF {
				return msa, nil
			}
			if err != nil {
				return seq.MSA{}, err
			}
		}

		// The MSA converts A3M rows as they are added, so lengths can only
		// be compared afterwards.
		msa.Add(s)
		if err := checkLength(msa, s.Name); err != nil {
			return seq.MSA{}, err
		}
		if err == io.EOF {
			return msa, nil
		}
	}
}

// ReadAligned reads an MSA from aligned FASTA input. Unlike Read, lower case
// residues are folded to upper case instead of being treated as insertions,
// which is what most external aligners mean by them.
func ReadAligned(reader io.Reader) (seq.MSA, error) {
	return readAligned(reader, false)
}

func readAligned(reader io.Reader, trusted bool) (seq.MSA, error) {
	ar := fasta.NewAlignedReader(reader)
	ar.TrustSequences = trusted
	seqs, err := ar.ReadAll()
	if err != nil {
		return seq.MSA{}, err
	}
	msa := seq.NewMSA()
	msa.AddSlice(seqs)
	return msa, nil
}

// checkLength returns an error if the most recently added entry of `msa` does
// not have the same number of columns as the first entry.
func checkLength(msa seq.MSA, name string) error {
	if len(msa.Entries) < 2 {
		return nil
	}
	last := msa.Entries[len(msa.Entries)-1]
	if last.Len() != msa.Entries[0].Len() {
		return fmt.Errorf("Sequence '%s' has length %d, but other "+
			"sequences have length %d.", name, last.Len(), msa.Entries[0].Len())
	}
	return nil
}

// WriteFasta writes `msa` as aligned FASTA: every row has the full width of
// the alignment, with '-' wherever a row has no residue.
func WriteFasta(w io.Writer, msa seq.MSA) error {
	aw := fasta.NewAlignedWriter(w)
	for row := range msa.Entries {
		if err := aw.Write(msa.GetFasta(row)); err != nil {
			return err
		}
	}
	return aw.Flush()
}

// WriteA2M writes `msa` in A2M format, where insert columns are written in
// lower case (or as '.' in rows without a residue there).
func WriteA2M(w io.Writer, msa seq.MSA) error {
	return writeRows(w, len(msa.Entries), msa.GetA2M)
}

// WriteA3M writes `msa` in A3M format. It is A2M with the '.' characters
// left out, which makes rows differ in length but files smaller.
func WriteA3M(w io.Writer, msa seq.MSA) error {
	return writeRows(w, len(msa.Entries), msa.GetA3M)
}

// writeRows writes `n` rows, formatted by `row`, as FASTA entries.
func writeRows(w io.Writer, n int, row func(int) seq.Sequence) error {
	fw := fasta.NewWriter(w)
	for i := 0; i < n; i++ {
		if err := fw.Write(row(i)); err != nil {
			return err
		}
	}
	return fw.Flush()
}
