package msa

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/TuftsBCB/seq"
)

// ReadStockholm reads an MSA from a Stockholm formatted file. Markup lines
// (#=GF, #=GS, #=GR and #=GC) are skipped. A sequence may be split over
// several blocks, as Pfam and HMMER do for wide alignments; its pieces are
// joined in the order they appear.
func ReadStockholm(r io.Reader) (seq.MSA, error) {
	return readStockholm(r, false)
}

// ReadStockholmTrusted is ReadStockholm without residue validation.
func ReadStockholmTrusted(r io.Reader) (seq.MSA, error) {
	return readStockholm(r, true)
}

// WriteStockholm writes `msa` as a single block Stockholm file with the
// names padded to a common width. No markup is written.
func WriteStockholm(w io.Writer, msa seq.MSA) error {
	var err error
	pf := func(format string, v ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, v...)
	}

	nameWidth := 0
	for _, s := range msa.Entries {
		if len(s.Name) > nameWidth {
			nameWidth = len(s.Name)
		}
	}
	pf("# STOCKHOLM 1.0\n\n")
	for row := range msa.Entries {
		s := msa.GetA2M(row)
		pf("%-*s %s\n", nameWidth, s.Name, residueString(s.Residues))
	}
	pf("//\n")
	return err
}

func readStockholm(r io.Reader, trusted bool) (seq.MSA, error) {
	var (
		names   []string
		rows    = make(map[string][]seq.Residue)
		lineNum = 0
	)
	ef := func(format string, v ...interface{}) error {
		return fmt.Errorf("Error on line %d: %s", lineNum,
			fmt.Sprintf(format, v...))
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if lineNum == 1 {
			header := bytes.ToUpper(bytes.Trim(line, " #"))
			if !bytes.HasPrefix(header, []byte("STOCKHOLM 1.")) {
				return seq.MSA{}, ef("expected a 'STOCKHOLM 1.0' header.")
			}
			continue
		}
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.HasPrefix(line, []byte("//")) {
			break
		}

		fields := bytes.Fields(line)
		if len(fields) < 2 {
			return seq.MSA{}, ef("expected a name and residues, got '%s'.",
				line)
		}
		name := string(fields[0])
		residues, err := asResidues(bytes.Join(fields[1:], nil), trusted)
		if err != nil {
			return seq.MSA{}, ef("%s", err)
		}
		if _, ok := rows[name]; !ok {
			names = append(names, name)
		}
		rows[name] = append(rows[name], residues...)
	}
	if err := scanner.Err(); err != nil {
		return seq.MSA{}, err
	}

	msa := seq.NewMSA()
	for _, name := range names {
		msa.Add(seq.Sequence{Name: name, Residues: rows[name]})
		if err := checkLength(msa, name); err != nil {
			return seq.MSA{}, err
		}
	}
	return msa, nil
}

func asResidues(brs []byte, trusted bool) ([]seq.Residue, error) {
	rs := make([]seq.Residue, 0, len(brs))
	for _, b := range brs {
		if trusted {
			rs = append(rs, seq.Residue(b))
			continue
		}
		r, ok := translateStockholm(b)
		if !ok {
			return nil, fmt.Errorf("invalid Stockholm residue '%c'", b)
		}
		rs = append(rs, r)
	}
	return rs, nil
}

// translateStockholm accepts letters in either case, '-' and '.'.
func translateStockholm(b byte) (seq.Residue, bool) {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return seq.Residue(b), true
	case b == '-', b == '.':
		return seq.Residue(b), true
	}
	return 0, false
}
