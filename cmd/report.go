package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/TuftsBCB/phylo/analysis"
	"github.com/TuftsBCB/phylo/newick"
	"github.com/spf13/cobra"
)

// reportCmd runs the whole analysis and summarizes it
var reportCmd = &cobra.Command{
	Use:   "report <alignment>",
	Short: "Preview an alignment, build its tree and print a summary report",
	Long: `Prints, in order: a preview of the first columns of the alignment with
its conservation line, the Newick tree, the tree drawn as text and a
summary of the pairwise identities and conservation of the alignment.`,
	Args: cobra.ExactArgs(1),
	RunE: reportExec,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func reportExec(cmd *cobra.Command, args []string) error {
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

	buf := bufio.NewWriter(cmd.OutOrStdout())
	if err := writePreview(buf, analysis.Preview(
		res.Alignment, res.Conservation, c.Preview)); err != nil {
		return err
	}

	w := newick.NewWriter(buf)
	w.Precision = c.Precision
	fmt.Fprintln(buf, "Newick tree:")
	if err := w.Write(res.Tree); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(buf, "\nTree:\n%s\n", newick.Render(res.Tree))

	if err := res.Report(buf); err != nil {
		return err
	}
	return buf.Flush()
}

// writePreview lines the rows up in two columns.
func writePreview(w io.Writer, rows []analysis.Row) error {
	width := 0
	for _, row := range rows {
		if len(row.ID) > width {
			width = len(row.ID)
		}
	}
	if _, err := fmt.Fprintln(w, "Alignment preview:"); err != nil {
		return err
	}
	for _, row := range rows {
		_, err := fmt.Fprintf(w, "%-*s  %s\n", width, row.ID, row.Sequence)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
