package distance

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/TuftsBCB/seq"
)

func makeSeq(name, residues string) seq.Sequence {
	return seq.Sequence{Name: name, Residues: []seq.Residue(residues)}
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "ACGT", "ACGT", 100},
		{"one mismatch", "ACGT", "ACGA", 75},
		{"two mismatches", "ACGT", "TCGA", 50},
		{"no matches", "AAAA", "CCCC", 0},
		{"gap matches gap", "A-GT", "A-GA", 75},
		{"gap against residue", "A-GT", "ACGT", 75},
		{"case sensitive", "acgt", "ACGT", 0},
		{"single column", "A", "A", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Identity(makeSeq("a", tt.a), makeSeq("b", tt.b))
			if err != nil {
				t.Fatalf("%s", err)
			}
			if got != tt.want {
				t.Fatalf("Identity(%s, %s) = %g, want %g", tt.a, tt.b, got, tt.want)
			}
			back, _ := Identity(makeSeq("b", tt.b), makeSeq("a", tt.a))
			if back != got {
				t.Fatalf("Identity is not symmetric: %g != %g", got, back)
			}
		})
	}
}

func TestIdentityErrors(t *testing.T) {
	var inputErr *InputError

	_, err := Identity(makeSeq("a", "ACGT"), makeSeq("b", "ACG"))
	if !errors.As(err, &inputErr) {
		t.Fatalf("Expected an InputError for unequal lengths, got %v", err)
	}
	_, err = Identity(makeSeq("a", ""), makeSeq("b", ""))
	if !errors.As(err, &inputErr) {
		t.Fatalf("Expected an InputError for empty sequences, got %v", err)
	}
}

func TestPairwise(t *testing.T) {
	seqs := []seq.Sequence{
		makeSeq("A", "ACGT"),
		makeSeq("B", "ACGA"),
		makeSeq("C", "TCGA"),
	}
	scores, err := Pairwise(seqs)
	if err != nil {
		t.Fatalf("%s", err)
	}
	want := []Score{
		{"A", "B", 75},
		{"A", "C", 50},
		{"B", "C", 75},
	}
	if len(scores) != len(want) {
		t.Fatalf("Expected %d scores but got %d", len(want), len(scores))
	}
	for i := range want {
		if scores[i] != want[i] {
			t.Fatalf("Score %d is %v, want %v", i, scores[i], want[i])
		}
	}

	_, err = Pairwise(append(seqs, makeSeq("A", "ACGT")))
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("Expected an InputError for duplicate names, got %v", err)
	}
}

func TestPairwiseCount(t *testing.T) {
	residues := []string{"ACGTAC", "ACGTTC", "A-GTAC", "TTGTAC", "ACGAAC"}
	seqs := make([]seq.Sequence, len(residues))
	for i, r := range residues {
		seqs[i] = makeSeq(string(rune('a'+i)), r)
	}
	scores, err := Pairwise(seqs)
	if err != nil {
		t.Fatalf("%s", err)
	}
	n := len(seqs)
	if len(scores) != n*(n-1)/2 {
		t.Fatalf("Expected %d scores but got %d", n*(n-1)/2, len(scores))
	}
	for _, s := range scores {
		if s.Identity < 0 || s.Identity > 100 {
			t.Fatalf("Identity %g out of range", s.Identity)
		}
	}
}

func TestNewMatrix(t *testing.T) {
	ids := []string{"A", "B", "C"}
	scores := []Score{
		{"A", "B", 75},
		{"C", "A", 50},
		{"B", "C", 75},
	}
	m, err := NewMatrix(ids, scores)
	if err != nil {
		t.Fatalf("%s", err)
	}
	want := [][]float64{
		{0, 0.25, 0.5},
		{0.25, 0, 0.25},
		{0.5, 0.25, 0},
	}
	for i := range want {
		for j := range want[i] {
			if math.Abs(m.At(i, j)-want[i][j]) > 1e-12 {
				t.Fatalf("D[%d][%d] = %g, want %g", i, j, m.At(i, j), want[i][j])
			}
		}
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("%s", err)
	}
	if m.Index("C") != 2 || m.Index("Z") != -1 {
		t.Fatalf("Index lookup failed")
	}
}

func TestNewMatrixErrors(t *testing.T) {
	ids := []string{"A", "B", "C"}
	tests := []struct {
		name   string
		ids    []string
		scores []Score
	}{
		{"missing pair", ids, []Score{{"A", "B", 75}, {"A", "C", 50}}},
		{"identity too large", ids,
			[]Score{{"A", "B", 101}, {"A", "C", 50}, {"B", "C", 75}}},
		{"identity negative", ids,
			[]Score{{"A", "B", -1}, {"A", "C", 50}, {"B", "C", 75}}},
		{"identity NaN", ids,
			[]Score{{"A", "B", math.NaN()}, {"A", "C", 50}, {"B", "C", 75}}},
		{"unknown id", ids,
			[]Score{{"A", "B", 75}, {"A", "C", 50}, {"B", "D", 75}}},
		{"self pair", ids,
			[]Score{{"A", "A", 100}, {"A", "B", 75}, {"A", "C", 50}, {"B", "C", 75}}},
		{"duplicate id", []string{"A", "A"}, []Score{{"A", "A", 100}}},
		{"conflicting scores", ids,
			[]Score{{"A", "B", 75}, {"B", "A", 50}, {"A", "C", 50}, {"B", "C", 75}}},
		{"repeated score", ids,
			[]Score{{"A", "B", 75}, {"A", "B", 75}, {"A", "C", 50}, {"B", "C", 75}}},
		{"empty id", []string{"A", ""}, []Score{{"A", "", 50}}},
		{"id with space", []string{"A", "B C"}, []Score{{"A", "B C", 50}}},
		{"id with parenthesis", []string{"A", "B(1)"}, []Score{{"A", "B(1)", 50}}},
		{"id with comma", []string{"A", "B,C"}, []Score{{"A", "B,C", 50}}},
		{"id with semicolon", []string{"A;", "B"}, []Score{{"A;", "B", 50}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMatrix(tt.ids, tt.scores)
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("Expected an InputError, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	bad := []*Matrix{
		{IDs: []string{"A", "B"}, D: [][]float64{{0, 1}}},
		{IDs: []string{"A", "B"}, D: [][]float64{{0, 1}, {1}}},
		{IDs: []string{"A", "B"}, D: [][]float64{{0, 1}, {0.5, 0}}},
		{IDs: []string{"A", "B"}, D: [][]float64{{0.1, 1}, {1, 0}}},
		{IDs: []string{"A", "B"}, D: [][]float64{{0, -1}, {-1, 0}}},
		{IDs: []string{"A", "B:2"}, D: [][]float64{{0, 1}, {1, 0}}},
		{IDs: []string{"A", ""}, D: [][]float64{{0, 1}, {1, 0}}},
	}
	for i, m := range bad {
		if err := m.Validate(); err == nil {
			t.Fatalf("Expected matrix %d to be invalid", i)
		}
	}
}

func TestWritePhylip(t *testing.T) {
	m := &Matrix{
		IDs: []string{"A", "B"},
		D:   [][]float64{{0, 0.25}, {0.25, 0}},
	}
	buf := new(bytes.Buffer)
	if err := WritePhylip(buf, m); err != nil {
		t.Fatalf("%s", err)
	}
	want := "2\n" +
		"A          0.000000 0.250000\n" +
		"B          0.250000 0.000000\n"
	if buf.String() != want {
		t.Fatalf("PHYLIP output is\n%s\nbut should be\n%s", buf.String(), want)
	}
}
