package analyze

import (
	"fmt"
	"go/ast"
	"path/filepath"
	"reflect"
	"strconv"

	"golang.org/x/tools/go/packages"

	"optionalstruct-generator/internal/common"
	"optionalstruct-generator/internal/schema"
)

// LoadMode specifies what information to load from packages. Schema
// extraction is syntactic, so names, file lists and syntax trees are
// enough; resolved type information is never consulted.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// Package is one loaded Go package, ready for schema extraction.
type Package struct {
	pkg *packages.Package
}

// LoadPackage loads exactly one package matching the given pattern.
func LoadPackage(pattern string) (*Package, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", pattern, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages, want exactly 1", pattern, len(pkgs))
	}

	pkg := pkgs[0]

	var errs []error
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, errs)
	}

	return &Package{pkg: pkg}, nil
}

// Path returns the package import path.
func (p *Package) Path() string {
	return p.pkg.PkgPath
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.pkg.Name
}

// Dir returns the directory holding the package's source files.
func (p *Package) Dir() string {
	first, ok := common.First(p.pkg.GoFiles)
	if !ok {
		return ""
	}

	return filepath.Dir(first)
}

// Schema extracts the RecordSchema for the named struct type. A type that
// is not a struct is a fatal input error: the engine derives record
// schemas only.
func (p *Package) Schema(typeName string) (*schema.RecordSchema, error) {
	spec := p.findTypeSpec(typeName)
	if spec == nil {
		return nil, fmt.Errorf("type %s not found in package %s", typeName, p.pkg.PkgPath)
	}

	structType, ok := spec.Type.(*ast.StructType)
	if !ok {
		return nil, fmt.Errorf("type %s is not a struct", typeName)
	}

	out := &schema.RecordSchema{
		Name:         typeName,
		PkgPath:      p.pkg.PkgPath,
		PkgName:      p.pkg.Name,
		TypeParams:   p.typeParams(spec),
		Capabilities: p.methodNames(typeName),
	}

	index := 0

	for _, field := range structType.Fields.List {
		attrs, err := fieldAttrs(field)
		if err != nil {
			return nil, fmt.Errorf("field %s of %s: %w", fieldLabel(field, index), typeName, err)
		}

		typeExpr := TypeExprOf(p.pkg.Fset, field.Type)

		if len(field.Names) == 0 {
			// Embedded field, addressed by its type name.
			out.Fields = append(out.Fields, schema.FieldDescriptor{
				Ref:      schema.FieldRef{Name: embeddedName(field.Type), Index: index},
				Type:     typeExpr,
				Attrs:    attrs,
				Embedded: true,
			})
			index++

			continue
		}

		// A declaration like "A, B int" expands to one descriptor each.
		for _, name := range field.Names {
			out.Fields = append(out.Fields, schema.FieldDescriptor{
				Ref:   schema.FieldRef{Name: name.Name, Index: index},
				Type:  typeExpr,
				Attrs: append([]schema.Attr(nil), attrs...),
			})
			index++
		}
	}

	return out, nil
}

// findTypeSpec locates the declaration of the named type.
func (p *Package) findTypeSpec(typeName string) *ast.TypeSpec {
	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, s := range genDecl.Specs {
				ts, ok := s.(*ast.TypeSpec)
				if ok && ts.Name.Name == typeName {
					return ts
				}
			}
		}
	}

	return nil
}

// typeParams extracts the generic type parameter list of a declaration.
func (p *Package) typeParams(spec *ast.TypeSpec) []schema.TypeParam {
	if spec.TypeParams == nil {
		return nil
	}

	var params []schema.TypeParam

	for _, field := range spec.TypeParams.List {
		constraint := exprString(p.pkg.Fset, field.Type)

		for _, name := range field.Names {
			params = append(params, schema.TypeParam{
				Name:       name.Name,
				Constraint: constraint,
			})
		}
	}

	return params
}

// methodNames collects the names of methods declared on the type within
// its own package. They form the base schema's capability list.
func (p *Package) methodNames(typeName string) []string {
	var names []string

	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) == 0 {
				continue
			}

			if receiverTypeName(fn.Recv.List[0].Type) == typeName {
				names = append(names, fn.Name.Name)
			}
		}
	}

	return names
}

// receiverTypeName returns the base type name of a method receiver.
func receiverTypeName(e ast.Expr) string {
	switch t := e.(type) {
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.IndexExpr:
		return receiverTypeName(t.X)
	case *ast.IndexListExpr:
		return receiverTypeName(t.X)
	case *ast.Ident:
		return t.Name
	default:
		return ""
	}
}

// embeddedName returns the name an embedded field is addressed by.
func embeddedName(e ast.Expr) string {
	switch t := e.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	default:
		return ""
	}
}

// fieldAttrs parses the optional tag of one AST field.
func fieldAttrs(field *ast.Field) ([]schema.Attr, error) {
	if field.Tag == nil {
		return nil, nil
	}

	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return nil, fmt.Errorf("malformed struct tag: %w", err)
	}

	return schema.ParseAttrs(reflect.StructTag(raw).Get(schema.TagKey))
}

// fieldLabel names a field for error messages.
func fieldLabel(field *ast.Field, index int) string {
	if len(field.Names) > 0 {
		return field.Names[0].Name
	}

	return strconv.Itoa(index)
}
