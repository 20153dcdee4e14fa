package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"optionalstruct-generator/internal/derive"
	"optionalstruct-generator/internal/schema"
)

// ToolName appears in the generated-code header.
const ToolName = "optionalstruct-gen"

// File is one generated Go source file.
type File struct {
	// Filename is the file name within the target package directory.
	Filename string
	// Content is the formatted Go source.
	Content []byte
}

// fileData feeds the file template.
type fileData struct {
	Tool        string
	Sources     string
	Tags        []string
	PackageName string
	Imports     []string
	Types       []typeData
}

// typeData is one derived partial type with its operations.
type typeData struct {
	Name       string
	BaseName   string
	ParamDecl  string // e.g. "[T any]"
	Recv       string // e.g. "OptionalBox[T]"
	Base       string // e.g. "Box[T]"
	Fields     []fieldData
	CanBuild   []string
	Checks     []string
	Temps      []string
	Entries    []string
	ApplyTo    []string
	HasClone   bool
	HasEqual   bool
	HasDefault bool
	HasDebug   bool
}

type fieldData struct {
	Name string
	Type string
}

// RenderFile renders all derivation artifacts of one package into a
// single generated source file. Output is deterministic: types in
// manifest order, fields in declaration order, imports sorted.
func RenderFile(filename, pkgName string, artifacts []*derive.Artifacts) (*File, error) {
	data := fileData{
		Tool:        ToolName,
		PackageName: pkgName,
	}

	imports := make(map[string]struct{})

	var sources []string

	for _, a := range artifacts {
		td, err := buildTypeData(a, imports)
		if err != nil {
			return nil, err
		}

		data.Types = append(data.Types, *td)
		sources = append(sources, a.Base.Name)

		if len(a.Tags) > 0 {
			data.Tags = a.Tags
		}
	}

	data.Sources = strings.Join(sources, ", ")

	for path := range imports {
		data.Imports = append(data.Imports, path)
	}

	sort.Strings(data.Imports)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, &data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// A formatting failure is a generator bug, not a user error.
		return nil, fmt.Errorf("generated code does not parse: %w\n%s", err, buf.String())
	}

	return &File{Filename: filename, Content: formatted}, nil
}

// buildTypeData flattens one artifact set for the template and collects
// its imports.
func buildTypeData(a *derive.Artifacts, imports map[string]struct{}) (*typeData, error) {
	args := typeArgList(a.Partial.TypeParams)

	td := &typeData{
		Name:      a.Partial.Name,
		BaseName:  a.Base.Name,
		ParamDecl: paramDecl(a.Partial.TypeParams),
		Recv:      a.Partial.Name + args,
		Base:      a.Base.Name + args,
		CanBuild:  a.CanBuild.Stmts,
		Checks:    a.Build.Checks,
		Temps:     a.Build.Temps,
		Entries:   a.Build.Entries,
		ApplyTo:   a.ApplyTo.Stmts,
	}

	for _, f := range a.Partial.Fields {
		if !f.Ref.Named() {
			return nil, fmt.Errorf("type %s: field %s: the Go renderer requires named fields",
				a.Partial.Name, f.Ref)
		}

		td.Fields = append(td.Fields, fieldData{Name: f.Ref.Name, Type: f.Type.Source})

		// The optional import is implied by the rewritten field types.
		if strings.Contains(f.Type.Source, "optional.Optional[") {
			imports[derive.OptionalPkgPath] = struct{}{}
		}
	}

	for path := range a.CanBuild.Imports {
		imports[path] = struct{}{}
	}

	for path := range a.Build.Imports {
		imports[path] = struct{}{}
	}

	for path := range a.ApplyTo.Imports {
		imports[path] = struct{}{}
	}

	for _, cap := range a.Capabilities {
		switch cap {
		case derive.CapClone:
			td.HasClone = true
		case derive.CapEqual:
			td.HasEqual = true
			imports["reflect"] = struct{}{}
		case derive.CapDefault:
			td.HasDefault = true
		case derive.CapDebug:
			td.HasDebug = true
			imports["fmt"] = struct{}{}
		}
	}

	return td, nil
}

// paramDecl renders the generic parameter declaration, e.g.
// "[T any, U comparable]".
func paramDecl(params []schema.TypeParam) string {
	if len(params) == 0 {
		return ""
	}

	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + " " + p.Constraint
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// typeArgList renders the generic argument list, e.g. "[T, U]".
func typeArgList(params []schema.TypeParam) string {
	if len(params) == 0 {
		return ""
	}

	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}

	return "[" + strings.Join(names, ", ") + "]"
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by {{.Tool}}. DO NOT EDIT.
//
// Partial schemas derived from: {{.Sources}}.
{{- if .Tags}}
// Guards evaluated with tags: {{range $i, $t := .Tags}}{{if $i}} {{end}}{{$t}}{{end}}.
{{- end}}

package {{.PackageName}}
{{- if .Imports}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{- end}}
{{- range .Types}}

// {{.Name}} is the partial counterpart of {{.BaseName}}: selected fields
// are made optional, and the generated operations relate the two types.
type {{.Name}}{{.ParamDecl}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}

// CanBuild reports whether every field holds enough information to
// rebuild a {{.BaseName}}.
func (p {{.Recv}}) CanBuild() bool {
{{- range .CanBuild}}
	{{.}}
{{- end}}
}

// Build rebuilds a {{.BaseName}} from the partial value. On failure the
// error is an *optional.IncompleteError carrying the receiver unchanged.
func (p {{.Recv}}) Build() ({{.Base}}, error) {
{{- range .Checks}}
	{{.}}
{{- end}}
{{- range .Temps}}
	{{.}}
{{- end}}
	return {{.Base}}{
{{- range .Entries}}
		{{.}}
{{- end}}
	}, nil
}

// ApplyTo overlays the partial value onto t, field by field. Merging is
// best effort and never fails.
func (p {{.Recv}}) ApplyTo(t *{{.Base}}) {
{{- range .ApplyTo}}
	{{.}}
{{- end}}
}
{{- if .HasClone}}

// Clone returns a copy of the value. Field shapes that would make a
// value copy shallow are rejected at derivation time.
func (p {{.Recv}}) Clone() {{.Recv}} {
	return p
}
{{- end}}
{{- if .HasEqual}}

// Equal reports whether two partial values are deeply equal.
func (p {{.Recv}}) Equal(other {{.Recv}}) bool {
	return reflect.DeepEqual(p, other)
}
{{- end}}
{{- if .HasDefault}}

// New{{.Name}} returns an empty {{.Name}}: every optional field absent,
// every other field at its zero value.
func New{{.Name}}{{.ParamDecl}}() {{.Recv}} {
	return {{.Recv}}{}
}
{{- end}}
{{- if .HasDebug}}

// Debug returns a formatted dump of the value.
func (p {{.Recv}}) Debug() string {
	return fmt.Sprintf("{{.Name}}%+v", p)
}
{{- end}}
{{- end}}
`))
