package icons

import (
	"fmt"
	"strings"
)

// Definition describes a registry entry for documentation.
type Definition struct {
	Name    Name
	Paths16 int
	Paths20 int
}

// Catalog returns a definition for every icon except Blank.
func Catalog() []Definition {
	names := Names()
	result := make([]Definition, 0, len(names))
	for _, name := range names {
		if name == Blank {
			continue
		}
		result = append(result, Definition{
			Name:    name,
			Paths16: len(paths16(name)),
			Paths20: len(paths20(name)),
		})
	}
	return result
}

// CatalogMarkdown renders Catalog as a markdown table.
func CatalogMarkdown() string {
	var b strings.Builder
	b.WriteString("# Icon Catalog\n\n")
	b.WriteString("Generated by `go generate ./internal/platform/icons`.\n\n")
	b.WriteString("| Icon | Paths (16px) | Paths (20px) |\n| --- | --- | --- |\n")
	for _, def := range Catalog() {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", def.Name, def.Paths16, def.Paths20)
	}
	return b.String()
}
