package cmd

import (
	"bufio"
	"io"
	"os"

	"github.com/TuftsBCB/phylo/newick"
	"github.com/spf13/cobra"
)

// renderCmd draws Newick trees as text
var renderCmd = &cobra.Command{
	Use:   "render <newick>",
	Short: "Draw the trees of a Newick file as indented text",
	Long: `Reads one or more ';' terminated trees and draws each one with box
drawing connectors, one node per line. Branch lengths other than zero are
shown next to the node name.

Use "-" to read the trees from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: renderExec,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func renderExec(cmd *cobra.Command, args []string) error {
	if _, err := settings(cmd); err != nil {
		return err
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
	trees, err := newick.NewReader(r).ReadAll()
	if err != nil {
		return err
	}
	debug.Printf("Read %d trees from %s.", len(trees), args[0])

	buf := bufio.NewWriter(cmd.OutOrStdout())
	for i, tree := range trees {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(newick.Render(tree))
	}
	return buf.Flush()
}
