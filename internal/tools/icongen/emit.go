package main

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

var registryTemplate = template.Must(template.New("registry").Parse(`// Code generated by icongen. DO NOT EDIT.

package {{.Package}}

const (
	Blank Name = iota
{{- range .Icons}}
	{{.Variant}}
{{- end}}
)

var nameStrings = [...]string{
	"Blank",
{{- range .Icons}}
	{{printf "%q" .Variant}},
{{- end}}
}
{{range .Grids}}
func paths{{.Size}}(name Name) []string {
	switch name {
{{- range .Entries}}
	case {{.Variant}}:
		return []string{
{{- range .Paths}}
			{{printf "%q" .}},
{{- end}}
		}
{{- end}}
	}
	return nil
}
{{end}}`))

type gridEntry struct {
	Variant string
	Paths   []string
}

type gridTable struct {
	Size    int
	Entries []gridEntry
}

type registryData struct {
	Package string
	Icons   []iconSource
	Grids   []gridTable
}

// emit renders the registry source and formats it.
func emit(pkg, filename string, set []iconSource) ([]byte, error) {
	data := registryData{
		Package: pkg,
		Icons:   set,
		Grids: []gridTable{
			{Size: 16, Entries: make([]gridEntry, 0, len(set))},
			{Size: 20, Entries: make([]gridEntry, 0, len(set))},
		},
	}
	for _, icon := range set {
		data.Grids[0].Entries = append(data.Grids[0].Entries, gridEntry{Variant: icon.Variant, Paths: icon.Paths16})
		data.Grids[1].Entries = append(data.Grids[1].Entries, gridEntry{Variant: icon.Variant, Paths: icon.Paths20})
	}

	var buf bytes.Buffer
	if err := registryTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render registry: %w", err)
	}
	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format registry: %w", err)
	}
	return formatted, nil
}
