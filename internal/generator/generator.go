// Package generator renders marker unit source files from a manifest
// of named literal values.
package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// litImport is the package that supplies the codec and marker types.
const litImport = "github.com/lit-labs/litcodec/pkg/lit"

const fileTemplate = `// Code generated by litgen. DO NOT EDIT.

package {{.Package}}

import "{{.LitImport}}"
{{range .Units}}
type {{.Provider}} struct{}

func ({{.Provider}}) Lit() lit.Codec { return {{.Expr}} }

// {{.Name}} is a zero-size marker bound to {{.Doc}}.
type {{.Name}} = lit.Unit[{{.Provider}}]
{{end}}`

// Generator renders marker units for a manifest.
type Generator struct {
	manifest Manifest
}

// New creates a generator for a validated manifest.
func New(m Manifest) *Generator {
	return &Generator{manifest: m}
}

// Source renders the generated file as gofmt-formatted source.
func (g *Generator) Source() ([]byte, error) {
	type unit struct {
		Name     string
		Provider string
		Expr     string
		Doc      string
	}

	data := struct {
		Package   string
		LitImport string
		Units     []unit
	}{
		Package:   g.manifest.Package,
		LitImport: litImport,
		Units:     make([]unit, 0, len(g.manifest.Literals)),
	}

	for _, l := range g.manifest.Literals {
		expr, doc, err := l.render()
		if err != nil {
			return nil, fmt.Errorf("invalid manifest: %w", err)
		}
		data.Units = append(data.Units, unit{
			Name:     l.Name,
			Provider: providerName(l.Name),
			Expr:     expr,
			Doc:      doc,
		})
	}

	tmpl, err := template.New("markers").Parse(fileTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return formatted, nil
}

// Write renders the file and writes it to path.
func (g *Generator) Write(path string) error {
	src, err := g.Source()
	if err != nil {
		return err
	}
	if err := writeFile(path, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// providerName derives the unexported provider type name for a marker.
func providerName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:] + "Lit"
}

// writeFile writes content to a file, creating directories if necessary.
func writeFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return os.WriteFile(path, content, 0644)
}
