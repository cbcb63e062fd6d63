// Command icondocgen writes the icon catalog page from the registry.
//
// The page is a markdown table of every icon with its path counts. With
// -previews it also embeds each icon as inline SVG on both grids.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/bpicons/internal/platform/config"
	"github.com/louisbranch/bpicons/internal/platform/icons"
	"github.com/louisbranch/bpicons/internal/ui/icon"
)

var errStaleCatalog = errors.New("icon catalog is stale")

// docConfig holds generator settings; flags override the environment.
type docConfig struct {
	Out      string `env:"ICONDOCGEN_OUT" envDefault:"docs/icon-catalog.md"`
	Root     string `env:"ICONDOCGEN_ROOT"`
	Previews bool   `env:"ICONDOCGEN_PREVIEWS"`
	Check    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Fatal("icondocgen", err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var cfg docConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return err
	}
	flags := flag.NewFlagSet("icondocgen", flag.ContinueOnError)
	flags.StringVar(&cfg.Out, "out", cfg.Out, "output path for the icon catalog")
	flags.StringVar(&cfg.Root, "root", cfg.Root, "repo root (defaults to locating go.mod)")
	flags.BoolVar(&cfg.Previews, "previews", cfg.Previews, "embed inline SVG previews")
	flags.BoolVar(&cfg.Check, "check", false, "fail instead of writing when the catalog is out of date")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	output, err := outputPath(cfg)
	if err != nil {
		return err
	}
	content, err := catalogPage(cfg.Previews)
	if err != nil {
		return err
	}

	if cfg.Check {
		current, err := os.ReadFile(output)
		if err != nil {
			return fmt.Errorf("read catalog: %w", err)
		}
		if !bytes.Equal(current, content) {
			return fmt.Errorf("%s: %w", output, errStaleCatalog)
		}
		fmt.Fprintf(stdout, "icondocgen: %s is current\n", output)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(output, content, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	fmt.Fprintf(stdout, "icondocgen: wrote %s\n", output)
	return nil
}

// frontMatter is the docs-site header of the catalog page.
type frontMatter struct {
	Title    string `yaml:"title"`
	NavOrder int    `yaml:"nav_order"`
}

func catalogPage(previews bool) ([]byte, error) {
	header, err := yaml.Marshal(frontMatter{Title: "Icon Catalog", NavOrder: 10})
	if err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}
	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(icons.CatalogMarkdown())
	if previews {
		if err := writePreviews(&b); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

// writePreviews appends one HTML table row per icon. Markdown renderers
// pass inline HTML through, so the SVG shows up on the docs site.
func writePreviews(b *bytes.Buffer) error {
	ctx := context.Background()
	b.WriteString("\n## Previews\n\n<table>\n")
	for _, def := range icons.Catalog() {
		fmt.Fprintf(b, "<tr><td><code>%s</code></td>", def.Name)
		for _, size := range []int{icons.SizeStandard, icons.SizeLarge} {
			b.WriteString("<td>")
			if err := icon.Component(icon.Props{Icon: def.Name, IconSize: size}).Render(ctx, b); err != nil {
				return fmt.Errorf("render %s: %w", def.Name, err)
			}
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
	return nil
}

// outputPath resolves cfg.Out against the repository root.
func outputPath(cfg docConfig) (string, error) {
	if filepath.IsAbs(cfg.Out) {
		return cfg.Out, nil
	}
	root := strings.TrimSpace(cfg.Root)
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working dir: %w", err)
		}
		if root, err = moduleRoot(wd); err != nil {
			return "", err
		}
	}
	return filepath.Join(filepath.Clean(root), cfg.Out), nil
}

func moduleRoot(dir string) (string, error) {
	for start := dir; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", start)
		}
		dir = parent
	}
}
