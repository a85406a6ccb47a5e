package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	c, err := New(v)
	if err != nil {
		t.Fatalf("%s", err)
	}
	want := Config{
		Format:    "fasta",
		Precision: -1,
		Threshold: 90,
		Preview:   80,
	}
	if c != want {
		t.Fatalf("New() = %+v, want %+v", c, want)
	}
	if c.Options().Threshold != 90 {
		t.Fatalf("Expected threshold 90 in options")
	}
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "phylo.yaml")
	settings := "format: clustal\nthreshold: 75.5\nprecision: 4\ntrusted: true\n"
	if err := os.WriteFile(file, []byte(settings), 0644); err != nil {
		t.Fatalf("%s", err)
	}

	v := viper.New()
	if err := Load(v, file); err != nil {
		t.Fatalf("%s", err)
	}
	c, err := New(v)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if c.Format != "clustal" || c.Threshold != 75.5 || c.Precision != 4 || !c.Trusted {
		t.Fatalf("Settings were not read from %s: %+v", file, c)
	}
	if c.Preview != 80 {
		t.Fatalf("Expected default preview 80 but got %d", c.Preview)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("PHYLO_THRESHOLD", "50")
	t.Setenv("PHYLO_VERBOSE", "true")

	v := viper.New()
	if err := Load(v, ""); err != nil {
		t.Fatalf("%s", err)
	}
	c, err := New(v)
	if err != nil {
		t.Fatalf("%s", err)
	}
	if c.Threshold != 50 || !c.Verbose || c.Trusted {
		t.Fatalf("Environment was not applied: %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	v := viper.New()
	file := filepath.Join(t.TempDir(), "nope.yaml")
	if err := Load(v, file); err == nil {
		t.Fatalf("Expected an error for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Config
		ok   bool
	}{
		{"defaults", Config{Threshold: 90, Precision: -1, Preview: 80}, true},
		{"threshold above 100", Config{Threshold: 101}, false},
		{"negative threshold", Config{Threshold: -1}, false},
		{"negative preview", Config{Preview: -5}, false},
		{"precision too large", Config{Precision: 30}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.c.Validate(); (err == nil) != tt.ok {
				t.Errorf("Config.Validate() = %v, want ok = %v", err, tt.ok)
			}
		})
	}
}
