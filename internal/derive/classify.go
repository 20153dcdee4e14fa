package derive

import (
	"errors"
	"fmt"

	"optionalstruct-generator/internal/schema"
)

// ErrUnsupportedShape marks a field whose declared type the classifier
// refuses to handle. The whole derivation aborts; there is no degraded
// output.
var ErrUnsupportedShape = errors.New("unsupported field shape")

// FieldOptions is the per-field classification every generator consumes.
// Computed once per field per derivation, immutable afterwards.
type FieldOptions struct {
	// BaseOptional is true iff the declared type's outer shape is the
	// optional shape.
	BaseOptional bool
	// Wrap is true if the partial field becomes optional.
	Wrap bool
	// NestedType is the partial counterpart type to recurse into, empty
	// if the field is not nested.
	NestedType string
	// Guard gates every generated fragment touching this field. Captured,
	// not consumed: the annotation stays on the original field.
	Guard *Guard
	// Ref addresses the field in generated code.
	Ref schema.FieldRef
}

// Nested reports whether a substitute partial type is set.
func (o *FieldOptions) Nested() bool {
	return o.NestedType != ""
}

// Classify computes FieldOptions from a field's declared shape, its
// annotations and the default-wrap policy. Annotations apply in
// declaration order, each overriding prior decisions (last one wins).
func Classify(f *schema.FieldDescriptor, global *GlobalOptions) (*FieldOptions, error) {
	switch f.Type.Shape {
	case schema.ShapeUnsupported:
		return nil, fmt.Errorf("field %s (%s): %w: %s",
			f.Ref, f.Type.Source, ErrUnsupportedShape, f.Type.ShapeDetail)
	case schema.ShapePlain, schema.ShapeOptional:
	default:
		return nil, fmt.Errorf("field %s (%s): %w: shape not classified",
			f.Ref, f.Type.Source, ErrUnsupportedShape)
	}

	baseOptional := f.Type.Shape == schema.ShapeOptional

	opts := &FieldOptions{
		BaseOptional: baseOptional,
		Wrap:         !baseOptional && global.DefaultWrap,
		Ref:          f.Ref,
	}

	for _, attr := range f.Attrs {
		switch attr.Kind {
		case schema.AttrRename:
			// An explicit substitute type supersedes auto-wrapping.
			opts.NestedType = attr.Arg
			opts.Wrap = false

		case schema.AttrSkipWrap:
			opts.Wrap = false

		case schema.AttrWrap:
			opts.Wrap = true

		case schema.AttrGuard:
			guard, err := ParseGuard(attr.Arg)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Ref, err)
			}

			opts.Guard = guard
		}
	}

	return opts, nil
}
