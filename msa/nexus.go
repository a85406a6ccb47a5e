package msa

import (
	"fmt"
	"io"
	"strings"

	"github.com/TuftsBCB/seq"
	"github.com/evolbioinfo/goalign/io/nexus"
)

// ReadNexus reads an MSA from the DATA (or CHARACTERS) block of a NEXUS
// file. Residues are folded to upper case. Sequence order follows the
// matrix order of the file.
func ReadNexus(r io.Reader) (seq.MSA, error) {
	aln, err := nexus.NewParser(r).Parse()
	if err != nil {
		return seq.MSA{}, fmt.Errorf("Could not parse NEXUS alignment: %w", err)
	}

	msa := seq.NewMSA()
	aln.Iterate(func(name string, sequence string) bool {
		msa.Add(seq.Sequence{
			Name:     name,
			Residues: []seq.Residue(strings.ToUpper(sequence)),
		})
		err = checkLength(msa, name)
		return err != nil
	})
	if err != nil {
		return seq.MSA{}, err
	}
	return msa, nil
}
