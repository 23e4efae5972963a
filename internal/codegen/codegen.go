// Package codegen renders a resolved dimension catalog as Go source: one
// zero-size marker type per dimension, its Unit method, a Measure alias and
// the lookup table used by package dim's registry.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/funvibe/unitguard/internal/catalog"
	"github.com/funvibe/unitguard/internal/config"
	"github.com/funvibe/unitguard/pkg/dimension"
)

// Generate produces the formatted Go source for cfg's resolved entries.
func Generate(cfg *catalog.Config, entries []catalog.Entry) ([]byte, error) {
	ctx, err := newFileContext(cfg, entries)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.String())
	}
	return src, nil
}

type fileContext struct {
	Header          string
	Package         string
	DimensionImport string
	QuantityImport  string
	Suffix          string
	Types           []typeDecl
	Table           []tableRow
}

type typeDecl struct {
	Name     string
	Doc      []string
	AliasOf  string
	UnitExpr string
}

type tableRow struct {
	Name string
	Var  string
}

func newFileContext(cfg *catalog.Config, entries []catalog.Entry) (*fileContext, error) {
	ctx := &fileContext{
		Header:          config.GeneratedHeader,
		Package:         cfg.Package,
		DimensionImport: importSpec("dimension", cfg.DimensionImport),
		QuantityImport:  importSpec("quantity", cfg.QuantityImport),
		Suffix:          config.MeasureAliasSuffix,
	}

	aliases := make(map[string]string)
	for _, e := range entries {
		if e.AliasOf != "" {
			aliases[e.Name] = e.AliasOf
		}
	}

	for _, e := range entries {
		decl := typeDecl{
			Name:    e.Name,
			Doc:     strings.Split(strings.TrimSpace(e.Doc), "\n"),
			AliasOf: e.AliasOf,
		}
		if e.AliasOf == "" {
			decl.UnitExpr = unitExpr(e.Unit)
		}
		ctx.Types = append(ctx.Types, decl)

		target, err := resolveAlias(e.Name, aliases)
		if err != nil {
			return nil, err
		}
		ctx.Table = append(ctx.Table, tableRow{Name: e.Name, Var: "unit" + target})
	}

	sort.Slice(ctx.Table, func(i, j int) bool {
		return ctx.Table[i].Name < ctx.Table[j].Name
	})
	return ctx, nil
}

// resolveAlias follows alias_of links to the declaring type.
func resolveAlias(name string, aliases map[string]string) (string, error) {
	seen := make(map[string]bool)
	for {
		target, ok := aliases[name]
		if !ok {
			return name, nil
		}
		if seen[name] {
			return "", fmt.Errorf("alias cycle through %s", name)
		}
		seen[name] = true
		name = target
	}
}

// unitExpr spells u as a Go expression over package dimension.
func unitExpr(u dimension.Unit) string {
	if u.IsDimensionless() {
		return "dimension.Dimensionless"
	}
	ps := dimension.Canonicalize(u).Powers()
	args := make([]string, len(ps))
	for i, p := range ps {
		args[i] = fmt.Sprintf("dimension.P(dimension.%s, %d)", p.Base, p.Exp)
	}
	return "dimension.Must(" + strings.Join(args, ", ") + ")"
}

// importSpec renders an import line, naming the package explicitly when the
// path's last element differs from the name the template uses.
func importSpec(name, importPath string) string {
	if path.Base(importPath) == name {
		return fmt.Sprintf("%q", importPath)
	}
	return fmt.Sprintf("%s %q", name, importPath)
}

var fileTemplate = template.Must(template.New("dimensions").Parse(`{{.Header}}

package {{.Package}}

import (
	{{.DimensionImport}}
	{{.QuantityImport}}
)

var (
{{- range .Types}}{{if not .AliasOf}}
	unit{{.Name}} = {{.UnitExpr}}
{{- end}}{{end}}
)
{{range .Types}}
{{- $name := .Name}}
{{range .Doc}}// {{.}}
{{end -}}
{{if .AliasOf -}}
type {{.Name}} = {{.AliasOf}}
{{- else -}}
type {{.Name}} struct{}

func ({{.Name}}) Unit() dimension.Unit { return unit{{.Name}} }
{{- end}}

// {{$name}}{{$.Suffix}} is a measure of {{$name}}.
type {{$name}}{{$.Suffix}}[T quantity.Number] = quantity.Measure[T, {{$name}}]
{{end}}
var table = map[string]dimension.Unit{
{{- range .Table}}
	"{{.Name}}": {{.Var}},
{{- end}}
}
`))
