package msa

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/TuftsBCB/seq"
)

// clustalColumns is the number of alignment columns written per block.
const clustalColumns = 60

// ReadClustal reads an MSA from a Clustal formatted file (the ".aln" output
// of Clustal Omega, ClustalW and MUSCLE). The conservation annotation line
// (made of '*', ':', '.' and ' ' characters) is returned alongside the MSA.
// It always has exactly one character per alignment column.
func ReadClustal(r io.Reader) (seq.MSA, string, error) {
	ef := fmt.Errorf

	var (
		names    []string
		residues = make(map[string][]seq.Residue)
		cons     []byte
		offset   = -1 // column where residues start in the current block
		width    = 0  // number of residues in the current block
		lineNum  = 0

		seenHeader bool
	)
	// Blocks whose conservation line is entirely blank are dropped by
	// TrimSpace below, so the line is padded whenever a block ends.
	pad := func() {
		if len(names) == 0 {
			return
		}
		for len(cons) < len(residues[names[0]]) {
			cons = append(cons, ' ')
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		if !seenHeader {
			if !bytes.HasPrefix(trimmed, []byte("CLUSTAL")) &&
				!bytes.HasPrefix(trimmed, []byte("MUSCLE")) {
				return seq.MSA{}, "",
					ef("First line does not contain a 'CLUSTAL' header.")
			}
			seenHeader = true
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if offset < 0 || offset >= len(line) {
				continue
			}
			block := line[offset:]
			if len(block) > width {
				block = block[:width]
			}
			pad()
			start := len(cons) - width
			if start < 0 {
				start = 0
			}
			copy(cons[start:], block)
			continue
		}

		pieces := bytes.Fields(line)
		if len(pieces) < 2 {
			return seq.MSA{}, "",
				ef("Error on line %d: Expected a name and residues.", lineNum)
		}
		name := string(pieces[0])
		rs, err := asClustalResidues(pieces[1])
		if err != nil {
			return seq.MSA{}, "", ef("Error on line %d: %s", lineNum, err)
		}
		if _, ok := residues[name]; !ok {
			names = append(names, name)
		} else if name == names[0] {
			pad()
		}
		residues[name] = append(residues[name], rs...)
		offset = len(pieces[0]) + bytes.Index(line[len(pieces[0]):], pieces[1])
		width = len(rs)
	}
	if err := scanner.Err(); err != nil {
		return seq.MSA{}, "", err
	}
	pad()

	msa := seq.NewMSA()
	for _, name := range names {
		msa.Add(seq.Sequence{Name: name, Residues: residues[name]})
		if err := checkLength(msa, name); err != nil {
			return seq.MSA{}, "", err
		}
	}
	return msa, string(cons), nil
}

// WriteClustal writes the given MSA to the writer in Clustal format, with
// blocks of 60 columns. The conservation line is written under each block;
// it is padded with spaces if it's shorter than the alignment.
func WriteClustal(w io.Writer, msa seq.MSA, conservation string) error {
	var err error
	pf := func(format string, v ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, v...)
	}

	rows := make([]seq.Sequence, len(msa.Entries))
	nameWidth := 0
	for row := range msa.Entries {
		rows[row] = msa.GetFasta(row)
		if len(rows[row].Name) > nameWidth {
			nameWidth = len(rows[row].Name)
		}
	}
	nameWidth += 6

	length := 0
	if len(rows) > 0 {
		length = len(rows[0].Residues)
	}
	if len(conservation) < length {
		conservation += strings.Repeat(" ", length-len(conservation))
	}

	pf("CLUSTAL multiple sequence alignment\n\n")
	for start := 0; start < length && err == nil; start += clustalColumns {
		end := start + clustalColumns
		if end > length {
			end = length
		}
		pf("\n")
		for _, s := range rows {
			pf("%-*s%s\n", nameWidth, s.Name, residueString(s.Residues[start:end]))
		}
		pf("%s%s\n", strings.Repeat(" ", nameWidth), conservation[start:end])
	}
	return err
}

func asClustalResidues(brs []byte) ([]seq.Residue, error) {
	rs := make([]seq.Residue, 0, len(brs))
	for _, b := range brs {
		switch {
		case b >= 'a' && b <= 'z':
			rs = append(rs, seq.Residue(b-('a'-'A')))
		case b >= 'A' && b <= 'Z', b == '-':
			rs = append(rs, seq.Residue(b))
		case b == '.':
			rs = append(rs, '-')
		default:
			return nil, fmt.Errorf("Invalid Clustal residue '%c'.", b)
		}
	}
	return rs, nil
}

func residueString(rs []seq.Residue) string {
	bs := make([]byte, len(rs))
	for i, r := range rs {
		bs[i] = byte(r)
	}
	return string(bs)
}
