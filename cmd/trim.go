package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/TuftsBCB/phylo/analysis"
	"github.com/TuftsBCB/phylo/fasta"
	"github.com/TuftsBCB/seq"
	"github.com/spf13/cobra"
)

// trimCmd cuts unaligned sequences down to a region of interest
var trimCmd = &cobra.Command{
	Use:   "trim <fasta>",
	Short: "Trim unaligned FASTA sequences at a motif before aligning them",
	Long: `Cuts every sequence of a FASTA file so that it starts with the first
occurrence of the --before motif and ends with the first occurrence of the
--after motif. Sequences without the motif are written unchanged and a
warning is logged.

The trimmed sequences are written to stdout in FASTA format.`,
	Args: cobra.ExactArgs(1),
	RunE: trimExec,
}

func init() {
	rootCmd.AddCommand(trimCmd)

	trimCmd.Flags().StringP("before", "b", "", "Drop the residues before this motif")
	trimCmd.Flags().StringP("after", "a", "", "Drop the residues after this motif")
	trimCmd.Flags().Bool("protein", false, "Reject residues that aren't standard amino acids")
	trimCmd.Flags().Bool("short-names", false, "Rename each sequence to the first word of its header")
	trimCmd.Flags().Bool("asterisk", false, "End every written sequence with '*'")
}

func trimExec(cmd *cobra.Command, args []string) error {
	if _, err := settings(cmd); err != nil {
		return err
	}
	before, _ := cmd.Flags().GetString("before")
	after, _ := cmd.Flags().GetString("after")
	if before == "" && after == "" {
		return fmt.Errorf("Nothing to trim: use --before and/or --after.")
	}

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	protein, _ := cmd.Flags().GetBool("protein")
	seqs, err := readSequences(fasta.NewReader(r), protein)
	if err != nil {
		return err
	}

	shortNames, _ := cmd.Flags().GetBool("short-names")
	for i, s := range seqs {
		if shortNames {
			s.Name = fasta.ParseHeader(s.Name).ID
		}
		if before != "" {
			var found bool
			if s, found = analysis.TrimBefore(s, before); !found {
				log.Printf("WARNING: '%s' not found in %s.", before, s.Name)
			}
		}
		if after != "" {
			var found bool
			if s, found = analysis.TrimAfter(s, after); !found {
				log.Printf("WARNING: '%s' not found in %s.", after, s.Name)
			}
		}
		seqs[i] = s
	}
	debug.Printf("Trimmed %d sequences.", len(seqs))
	w := fasta.NewWriter(cmd.OutOrStdout())
	w.Asterisk, _ = cmd.Flags().GetBool("asterisk")
	return w.WriteAll(seqs)
}

func readSequences(r *fasta.Reader, protein bool) ([]seq.Sequence, error) {
	if !protein {
		return r.ReadAll()
	}
	var seqs []seq.Sequence
	for {
		s, err := r.ReadProtein()
		if err == io.EOF {
			return seqs, nil
		}
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
}
