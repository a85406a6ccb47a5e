package cmd

import (
	"bufio"
	"fmt"

	"github.com/TuftsBCB/phylo/distance"
	"github.com/spf13/cobra"
)

// identityCmd lists the pairwise identities of an alignment
var identityCmd = &cobra.Command{
	Use:   "identity <alignment>",
	Short: "Print the percent identity of every pair of aligned sequences",
	Long: `Prints one line per unordered pair of sequences with the percentage of
alignment columns at which both have the same residue. Gap columns count
towards the alignment length.

With --matrix, the distances (1 - identity/100) are printed as a PHYLIP
matrix instead.`,
	Args: cobra.ExactArgs(1),
	RunE: identityExec,
}

func init() {
	rootCmd.AddCommand(identityCmd)

	identityCmd.Flags().BoolP("matrix", "m", false, "Print the distance matrix in PHYLIP format")
}

func identityExec(cmd *cobra.Command, args []string) error {
	c, err := settings(cmd)
	if err != nil {
		return err
	}
	aln, _, err := readAlignment(cmd, args[0], c)
	if err != nil {
		return err
	}
	scores, err := distance.Pairwise(aln.Entries)
	if err != nil {
		return err
	}

	if asMatrix, _ := cmd.Flags().GetBool("matrix"); asMatrix {
		ids := make([]string, len(aln.Entries))
		for i, s := range aln.Entries {
			ids[i] = s.Name
		}
		m, err := distance.NewMatrix(ids, scores)
		if err != nil {
			return err
		}
		return distance.WritePhylip(cmd.OutOrStdout(), m)
	}

	buf := bufio.NewWriter(cmd.OutOrStdout())
	for _, s := range scores {
		if _, err := fmt.Fprintf(buf, "%s\t%s\t%.2f\n",
			s.A, s.B, s.Identity); err != nil {
			return err
		}
	}
	return buf.Flush()
}
