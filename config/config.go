// Package config holds the settings shared by every command. They are
// unmarshalled from Viper, which merges the config file, PHYLO_* environment
// variables and the command line flags (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/TuftsBCB/phylo/analysis"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when it is looked up in the
// environment, e.g. PHYLO_THRESHOLD.
const EnvPrefix = "PHYLO"

// Config is the root-level settings struct
type Config struct {
	// format of alignment files: fasta, a2m, a3m, stockholm, clustal or nexus
	Format string `mapstructure:"format"`

	// digits after the decimal point for Newick branch lengths,
	// negative for the shortest exact representation
	Precision int `mapstructure:"precision"`

	// conservation percentage above which a column is highly conserved
	Threshold float64 `mapstructure:"threshold"`

	// number of alignment columns shown in previews, 0 for all of them
	Preview int `mapstructure:"preview"`

	// whether to log progress
	Verbose bool `mapstructure:"verbose"`

	// skip residue validation when reading alignments
	Trusted bool `mapstructure:"trusted"`
}

// SetDefaults registers the default value of every setting with `v`.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", "fasta")
	v.SetDefault("precision", -1)
	v.SetDefault("threshold", analysis.DefaultThreshold)
	v.SetDefault("preview", 80)
	v.SetDefault("verbose", false)
	v.SetDefault("trusted", false)
}

// Load reads the config file (if any) into `v` and enables environment
// overrides. When `file` is empty, phylo.yaml is searched for in the working
// directory and then in $HOME; not finding one is not an error.
func Load(v *viper.Viper, file string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("phylo")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && file == "" {
			return nil
		}
		return fmt.Errorf("Could not read config: %w", err)
	}
	return nil
}

// New returns a Config populated from `v` and checks it.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("threshold %g is not a percentage", c.Threshold)
	}
	if c.Preview < 0 {
		return fmt.Errorf("preview width %d is negative", c.Preview)
	}
	if c.Precision > 17 {
		return fmt.Errorf("precision %d is more than a float64 can hold",
			c.Precision)
	}
	return nil
}

// Options returns the analysis options described by `c`.
func (c Config) Options() analysis.Options {
	return analysis.Options{Threshold: c.Threshold}
}
