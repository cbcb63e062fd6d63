// Command icongen builds the icon registry tables from an SVG icon set.
//
// The source directory holds one folder per pixel grid (16px and 20px) with
// one kebab-case SVG file per icon. Every icon must exist in both grids.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/louisbranch/bpicons/internal/platform/config"
)

// genConfig holds generator settings; flags override the environment.
type genConfig struct {
	Source  string `env:"ICONGEN_SOURCE" envDefault:"svg"`
	Out     string `env:"ICONGEN_OUT" envDefault:"icons_gen.go"`
	Package string `env:"ICONGEN_PACKAGE" envDefault:"icons"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Fatal("icongen", err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var cfg genConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return err
	}
	flags := flag.NewFlagSet("icongen", flag.ContinueOnError)
	flags.StringVar(&cfg.Source, "source", cfg.Source, "directory containing 16px/ and 20px/ SVG folders")
	flags.StringVar(&cfg.Out, "out", cfg.Out, "output path for the generated Go file")
	flags.StringVar(&cfg.Package, "package", cfg.Package, "package name of the generated file")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	set, err := loadIconSet(cfg.Source)
	if err != nil {
		return err
	}
	src, err := emit(cfg.Package, filepath.Base(cfg.Out), set)
	if err != nil {
		return err
	}
	if err := writeOutput(cfg.Out, src); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "icongen: wrote %d icons to %s\n", len(set), cfg.Out)
	return nil
}

func writeOutput(output string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(output, content, 0o644); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	return nil
}
