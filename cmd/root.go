// Package cmd is for command line interactions with the phylo application
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/TuftsBCB/phylo/config"
	"github.com/TuftsBCB/phylo/msa"
	"github.com/TuftsBCB/seq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string

	// debug logs progress when --verbose is set.
	debug = log.New(io.Discard, "", 0)
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "phylo",
	Short: `Build phylogenetic trees from multiple sequence alignments.
Trees are built with UPGMA over percent identity distances and written as Newick`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load(viper.GetViper(), configFile)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default is ./phylo.yaml or $HOME/phylo.yaml)")
	flags.StringP("format", "f", "fasta", "Alignment format: fasta, a2m, a3m, stockholm, clustal or nexus")
	flags.Int("precision", -1, "Digits after the decimal point in Newick branch lengths (-1 for shortest)")
	flags.Float64("threshold", 90, "Conservation percentage above which a column is highly conserved")
	flags.Int("preview", 80, "Number of alignment columns to preview (0 for all)")
	flags.BoolP("verbose", "v", false, "Whether to log progress")
	flags.Bool("trusted", false, "Read alignment residues as written, without validating them")

	for _, name := range []string{"format", "precision", "threshold", "preview", "verbose", "trusted"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// settings returns the merged configuration and points the debug log at
// standard error when it is verbose.
func settings(cmd *cobra.Command) (config.Config, error) {
	c, err := config.New(viper.GetViper())
	if err != nil {
		return config.Config{}, err
	}
	if c.Verbose {
		debug.SetOutput(cmd.ErrOrStderr())
	} else {
		debug.SetOutput(io.Discard)
	}
	return c, nil
}

// readAlignment reads the alignment at `path`, or from standard input when
// the path is "-", in the format set by `c`.
func readAlignment(cmd *cobra.Command, path string, c config.Config) (seq.MSA, string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return seq.MSA{}, "", err
		}
		defer f.Close()
		r = f
	}

	read := msa.ReadFormat
	if c.Trusted {
		read = msa.ReadFormatTrusted
	}
	m, conservation, err := read(r, c.Format)
	if err != nil {
		return seq.MSA{}, "", fmt.Errorf("Could not read alignment '%s': %w",
			path, err)
	}
	debug.Printf("Read %d sequences of %d columns from %s (%s).",
		len(m.Entries), m.Len(), path, c.Format)
	return m, conservation, nil
}

// createFile is os.Create that reports which file it failed on.
func createFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("Could not create '%s': %w", path, err)
	}
	return f, nil
}
