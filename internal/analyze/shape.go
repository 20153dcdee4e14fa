package analyze

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"

	"optionalstruct-generator/internal/schema"
)

// OptionalTypeName is the type name matched when deciding whether a field
// is already optional. The match is purely syntactic: the last path
// segment of the outer type must be this name. Aliases and re-exports are
// not resolved; that is a deliberate, documented approximation.
const OptionalTypeName = "Optional"

// TypeExprOf renders a field's declared type and classifies its outer
// syntactic shape.
func TypeExprOf(fset *token.FileSet, e ast.Expr) schema.TypeExpr {
	shape, detail := classifyShape(e)

	return schema.TypeExpr{
		Source:      exprString(fset, e),
		Shape:       shape,
		ShapeDetail: detail,
	}
}

// classifyShape inspects the outer shape of a type expression. It never
// consults type information: a shape the syntax cannot settle is reported
// as unsupported rather than guessed at.
func classifyShape(e ast.Expr) (schema.ShapeKind, string) {
	switch t := e.(type) {
	case *ast.ParenExpr:
		return classifyShape(t.X)

	case *ast.Ident:
		if t.Name == "any" {
			return schema.ShapeUnsupported, "interface"
		}

		if t.Name == OptionalTypeName {
			return schema.ShapeOptional, ""
		}

		return schema.ShapePlain, ""

	case *ast.SelectorExpr:
		if t.Sel.Name == OptionalTypeName {
			return schema.ShapeOptional, ""
		}

		return schema.ShapePlain, ""

	case *ast.IndexExpr:
		return classifyGenericHead(t.X)

	case *ast.IndexListExpr:
		return classifyGenericHead(t.X)

	case *ast.ArrayType:
		if t.Len == nil {
			return schema.ShapeUnsupported, "slice"
		}

		return schema.ShapePlain, ""

	case *ast.MapType:
		return schema.ShapePlain, ""

	case *ast.StarExpr:
		return schema.ShapeUnsupported, "pointer"

	case *ast.FuncType:
		return schema.ShapeUnsupported, "function"

	case *ast.ChanType:
		return schema.ShapeUnsupported, "channel"

	case *ast.InterfaceType:
		return schema.ShapeUnsupported, "interface"

	case *ast.StructType:
		return schema.ShapeUnsupported, "anonymous struct"

	case *ast.Ellipsis:
		return schema.ShapeUnsupported, "ellipsis"

	default:
		return schema.ShapeUnsupported, "unrecognized"
	}
}

// classifyGenericHead classifies an instantiated generic type by the name
// of its head, e.g. optional.Optional[T] or List[T].
func classifyGenericHead(head ast.Expr) (schema.ShapeKind, string) {
	switch h := head.(type) {
	case *ast.Ident:
		if h.Name == OptionalTypeName {
			return schema.ShapeOptional, ""
		}

		return schema.ShapePlain, ""

	case *ast.SelectorExpr:
		if h.Sel.Name == OptionalTypeName {
			return schema.ShapeOptional, ""
		}

		return schema.ShapePlain, ""

	default:
		return schema.ShapeUnsupported, "unrecognized"
	}
}

// exprString renders an expression back to source text.
func exprString(fset *token.FileSet, e ast.Expr) string {
	var buf bytes.Buffer

	if err := printer.Fprint(&buf, fset, e); err != nil {
		return ""
	}

	return buf.String()
}
