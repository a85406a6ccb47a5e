package cmd

import (
	"github.com/TuftsBCB/phylo/analysis"
	"github.com/TuftsBCB/phylo/distance"
	"github.com/TuftsBCB/phylo/msa"
	"github.com/TuftsBCB/phylo/newick"
	"github.com/spf13/cobra"
)

// treeCmd builds the UPGMA tree of an alignment
var treeCmd = &cobra.Command{
	Use:   "tree <alignment>",
	Short: "Build a UPGMA tree from an alignment and write it as Newick",
	Long: `Computes the percent identity of every pair of aligned sequences,
turns them into distances (1 - identity/100) and clusters them with UPGMA.

The tree is written to stdout in Newick format. Use "-" to read the
alignment from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: treeExec,
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringP("matrix", "m", "", "Also write the distance matrix in PHYLIP format to this file")
	treeCmd.Flags().StringP("save-alignment", "s", "", "Also write the alignment to this file")
	treeCmd.Flags().String("save-format", "clustal", "Format of the saved alignment: fasta, a2m, a3m, stockholm or clustal")
	treeCmd.Flags().BoolP("render", "r", false, "Draw the tree below the Newick line")
}

func treeExec(cmd *cobra.Command, args []string) error {
	c, err := settings(cmd)
	if err != nil {
		return err
	}
	aln, conservation, err := readAlignment(cmd, args[0], c)
	if err != nil {
		return err
	}
	res, err := analysis.Run(aln, conservation, c.Options())
	if err != nil {
		return err
	}
	debug.Printf("Built a tree with %d internal nodes.",
		newick.Internals(res.Tree))

	w := newick.NewWriter(cmd.OutOrStdout())
	w.Precision = c.Precision
	if err := w.Write(res.Tree); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if render, _ := cmd.Flags().GetBool("render"); render {
		if _, err := cmd.OutOrStdout().Write(
			[]byte(newick.Render(res.Tree))); err != nil {
			return err
		}
	}

	if path, _ := cmd.Flags().GetString("matrix"); path != "" {
		f, err := createFile(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := distance.WritePhylip(f, res.Matrix); err != nil {
			return err
		}
		debug.Printf("Wrote distance matrix to %s.", path)
	}
	if path, _ := cmd.Flags().GetString("save-alignment"); path != "" {
		f, err := createFile(path)
		if err != nil {
			return err
		}
		defer f.Close()
		format, _ := cmd.Flags().GetString("save-format")
		err = msa.WriteFormat(f, res.Alignment, res.Conservation, format)
		if err != nil {
			return err
		}
		debug.Printf("Wrote alignment to %s.", path)
	}
	return nil
}
