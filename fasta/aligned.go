package fasta

import (
	"fmt"
	"io"

	"github.com/TuftsBCB/seq"
)

// AlignedReader reads sequences from aligned FASTA input. Every sequence
// must have the same length as the first one read.
type AlignedReader struct {
	// See the exported fields of Reader for options.
	*Reader
	seqLen int // set after the first read
}

func NewAlignedReader(r io.Reader) *AlignedReader {
	return &AlignedReader{
		Reader: NewReader(r),
		seqLen: -1,
	}
}

// ReadAll will read all sequences in the aligned FASTA input and return them
// as a slice.
// All sequences have the same length, otherwise an error occurs.
func (r *AlignedReader) ReadAll() ([]seq.Sequence, error) {
	seqs := make([]seq.Sequence, 0, 100)
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
	return seqs, nil
}

// Read will read the next sequence in the aligned FASTA input.
//
// The aligned format follows immediately from the format of a regular FASTA
// file: all sequences must be the same length, '-' indicate gaps, and the
// n'th letter of any sequence is the n'th column in the alignment.
//
// See (*Reader).Read for more details.
func (r *AlignedReader) Read() (seq.Sequence, error) {
	s, err := r.Reader.Read()
	if err != nil {
		return seq.Sequence{}, err
	}
	if r.seqLen == -1 {
		r.seqLen = len(s.Residues)
	} else if r.seqLen != len(s.Residues) {
		return seq.Sequence{},
			fmt.Errorf("Sequence '%s' has length %d, but other "+
				"sequences have length %d.", s.Name, len(s.Residues), r.seqLen)
	}
	return s, nil
}

// An AlignedWriter writes sequences to an aligned FASTA encoded file.
//
// See the exported fields of Writer for options that can be set.
type AlignedWriter struct {
	*Writer
	seqLen int
}

// NewAlignedWriter creates a new aligned FASTA writer.
func NewAlignedWriter(w io.Writer) *AlignedWriter {
	return &AlignedWriter{
		Writer: NewWriter(w),
		seqLen: -1,
	}
}

// Write writes a single aligned sequence to the underlying io.Writer.
//
// An error is returned if the length of the sequence is not the same length
// as other sequences that have already been written.
func (w *AlignedWriter) Write(s seq.Sequence) error {
	if w.seqLen == -1 {
		w.seqLen = len(s.Residues)
	} else if w.seqLen != len(s.Residues) {
		return fmt.Errorf("Sequence '%s' has length %d, but other sequences "+
			"have length %d.", s.Name, len(s.Residues), w.seqLen)
	}
	return w.Writer.Write(s)
}

// WriteAll writes a slice of aligned sequences to the underyling io.Writer,
// and calls Flush.
func (w *AlignedWriter) WriteAll(seqs []seq.Sequence) error {
	for _, s := range seqs {
		if err := w.Write(s); err != nil {
			return err
		}
	}
	return w.Flush()
}
