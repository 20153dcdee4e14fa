package derive

import "optionalstruct-generator/internal/schema"

// RewriteType computes the partial field's declared type. The base is the
// substitute type if one is set, else the original declared type; if the
// field wraps, the result is optional-of(base). Substitution and wrapping
// compose: a renamed field may still be wrapped.
func RewriteType(declared schema.TypeExpr, opts *FieldOptions) schema.TypeExpr {
	source := declared.Source
	shape := declared.Shape

	if opts.Nested() {
		source = opts.NestedType
		shape = schema.ShapePlain
	}

	if opts.Wrap {
		return schema.TypeExpr{
			Source: "optional.Optional[" + source + "]",
			Shape:  schema.ShapeOptional,
		}
	}

	return schema.TypeExpr{Source: source, Shape: shape}
}

// typeRewriter applies RewriteType to each derived field.
type typeRewriter struct{}

func (typeRewriter) Visit(_ *GlobalOptions, base, partial *schema.FieldDescriptor, opts *FieldOptions) {
	partial.Type = RewriteType(base.Type, opts)
}

// visibilityRewriter applies the visibility policy to each derived field.
// For Go output the marker is advisory: identifier case carries
// visibility, and the generated file lives in the base type's package.
type visibilityRewriter struct{}

func (visibilityRewriter) Visit(global *GlobalOptions, _, partial *schema.FieldDescriptor, _ *FieldOptions) {
	partial.Visibility = global.Visibility
}
