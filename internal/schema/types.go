package schema

import (
	"strconv"

	"optionalstruct-generator/internal/common"
)

// RecordSchema describes one record (struct) type. Two instances exist per
// derivation: the base schema as declared, and the partial schema derived
// from it. Both are produced as independent copies of one read-only
// source; neither is ever mutated while the other still reads it.
type RecordSchema struct {
	// Name is the type name, e.g. "Order".
	Name string
	// PkgPath is the import path of the declaring package.
	PkgPath string
	// PkgName is the package name of the declaring package.
	PkgName string
	// TypeParams are the generic type parameters, shared verbatim between
	// the base and the partial schema.
	TypeParams []TypeParam
	// Fields in declaration order. Order is significant: it is preserved
	// in the partial schema and drives positional references.
	Fields []FieldDescriptor
	// Capabilities are the method names already declared on the type.
	Capabilities []string
}

// TypeParam is one generic type parameter.
type TypeParam struct {
	Name       string
	Constraint string
}

// FieldDescriptor describes one field of a RecordSchema.
type FieldDescriptor struct {
	Ref        FieldRef
	Type       TypeExpr
	Visibility Visibility
	// Attrs are the field's annotations in declaration order.
	Attrs []Attr
	// Embedded marks an anonymous field; Ref carries the type name.
	Embedded bool
}

// FieldRef addresses a field either by name or by positional index.
type FieldRef struct {
	Name  string
	Index int
}

// Named reports whether the field is addressed by name.
func (r FieldRef) Named() bool {
	return r.Name != ""
}

// String returns the identifier used to address the field in generated
// code: the name for named fields, the decimal index otherwise.
func (r FieldRef) String() string {
	if r.Name != "" {
		return r.Name
	}

	return strconv.Itoa(r.Index)
}

// TypeExpr is a field's declared type: its source text plus the syntactic
// shape classification computed from it. The shape is decided from syntax
// alone, never from type resolution.
type TypeExpr struct {
	// Source is the type as written, e.g. "optional.Optional[string]".
	Source string
	// Shape is the outer syntactic shape.
	Shape ShapeKind
	// ShapeDetail names the offending construct for ShapeUnsupported.
	ShapeDetail string
}

// ShapeKind classifies the outer syntactic shape of a declared type.
type ShapeKind int

const (
	ShapeUnknown ShapeKind = iota
	// ShapePlain is any classifiable type that is not optional-shaped.
	ShapePlain
	// ShapeOptional means the last path segment of the outer type is
	// "Optional". A name match only: aliases are not resolved.
	ShapeOptional
	// ShapeUnsupported covers pointers, slices, functions, channels,
	// interfaces and other shapes the classifier rejects.
	ShapeUnsupported
)

// String returns a human-readable shape name.
func (k ShapeKind) String() string {
	switch k {
	case ShapePlain:
		return "plain"
	case ShapeOptional:
		return "optional"
	case ShapeUnsupported:
		return "unsupported"
	default:
		return common.UnknownStr
	}
}

// Visibility is the visibility applied to a derived field.
type Visibility int

const (
	// VisibilityInherited keeps the base field's visibility.
	VisibilityInherited Visibility = iota
	// VisibilityPublic marks the derived field public. Advisory for Go
	// output, where visibility lives in the identifier case.
	VisibilityPublic
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	switch v {
	case VisibilityInherited:
		return "inherited"
	case VisibilityPublic:
		return "public"
	default:
		return common.UnknownStr
	}
}

// Clone returns a deep copy of the schema. The assembler derives both of
// its output schemas from clones of one shared source.
func (s *RecordSchema) Clone() *RecordSchema {
	out := &RecordSchema{
		Name:    s.Name,
		PkgPath: s.PkgPath,
		PkgName: s.PkgName,
	}

	out.TypeParams = append(out.TypeParams, s.TypeParams...)
	out.Capabilities = append(out.Capabilities, s.Capabilities...)

	out.Fields = make([]FieldDescriptor, len(s.Fields))
	for i, f := range s.Fields {
		cp := f
		cp.Attrs = append([]Attr(nil), f.Attrs...)
		out.Fields[i] = cp
	}

	return out
}

// HasCapability reports whether the schema already carries the named
// capability.
func (s *RecordSchema) HasCapability(name string) bool {
	for _, c := range s.Capabilities {
		if c == name {
			return true
		}
	}

	return false
}
