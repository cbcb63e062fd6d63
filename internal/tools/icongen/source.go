package main

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Grid folder names under the source directory.
const (
	grid16Dir = "16px"
	grid20Dir = "20px"
)

// blankVariant is emitted by the generator itself and cannot come from a file.
const blankVariant = "Blank"

var errNoPaths = errors.New("no path elements")

// iconSource is one icon with its art on both grids.
type iconSource struct {
	File    string
	Variant string
	Paths16 []string
	Paths20 []string
}

// loadIconSet reads both grids and pairs them by file name, sorted by name.
func loadIconSet(root string) ([]iconSource, error) {
	grid16, err := loadGrid(filepath.Join(root, grid16Dir))
	if err != nil {
		return nil, err
	}
	grid20, err := loadGrid(filepath.Join(root, grid20Dir))
	if err != nil {
		return nil, err
	}

	for name := range grid20 {
		if _, ok := grid16[name]; !ok {
			return nil, fmt.Errorf("icon %q missing from %s grid", name, grid16Dir)
		}
	}
	names := make([]string, 0, len(grid16))
	for name := range grid16 {
		if _, ok := grid20[name]; !ok {
			return nil, fmt.Errorf("icon %q missing from %s grid", name, grid20Dir)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	caser := cases.Title(language.Und)
	seen := make(map[string]string, len(names))
	set := make([]iconSource, 0, len(names))
	for _, name := range names {
		variant, err := variantName(caser, name)
		if err != nil {
			return nil, err
		}
		if other, ok := seen[variant]; ok {
			return nil, fmt.Errorf("icons %q and %q both map to %s", other, name, variant)
		}
		seen[variant] = name
		set = append(set, iconSource{
			File:    name,
			Variant: variant,
			Paths16: grid16[name],
			Paths20: grid20[name],
		})
	}
	return set, nil
}

// loadGrid returns the path data of every SVG in dir keyed by file stem.
func loadGrid(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	grid := make(map[string][]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".svg" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".svg")
		paths, err := readPaths(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		grid[name] = paths
	}
	return grid, nil
}

func readPaths(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open svg: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	paths := collectPaths(doc, nil)
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errNoPaths)
	}
	return paths, nil
}

// collectPaths appends the d attribute of every path element in document
// order. Drawing order matters for overlapping fills.
func collectPaths(n *html.Node, paths []string) []string {
	if n.Type == html.ElementNode && n.Data == "path" {
		for _, a := range n.Attr {
			if a.Key == "d" && strings.TrimSpace(a.Val) != "" {
				paths = append(paths, strings.TrimSpace(a.Val))
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		paths = collectPaths(c, paths)
	}
	return paths
}

// variantName turns a kebab-case file stem into an exported identifier,
// for example "chevron-down" into "ChevronDown".
func variantName(caser cases.Caser, stem string) (string, error) {
	var b strings.Builder
	for _, part := range strings.Split(stem, "-") {
		b.WriteString(caser.String(part))
	}
	variant := b.String()
	if !token.IsIdentifier(variant) || !token.IsExported(variant) {
		return "", fmt.Errorf("icon %q does not map to an exported identifier", stem)
	}
	if variant == blankVariant {
		return "", fmt.Errorf("icon %q is reserved", stem)
	}
	return variant, nil
}
