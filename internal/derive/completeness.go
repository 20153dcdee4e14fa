package derive

import (
	"fmt"

	"optionalstruct-generator/internal/schema"
)

// completenessGen accumulates the completeness predicate: true iff every
// field holds enough information to rebuild a base instance. Fields fold
// in declaration order and the predicate short-circuits on the first
// failing field.
type completenessGen struct {
	stmts []string
}

func newCompletenessGen() *completenessGen {
	return &completenessGen{}
}

// Visit selects the field's contribution by (wrapped, nested). Base
// optionality does not affect this predicate.
func (g *completenessGen) Visit(_ *GlobalOptions, _, _ *schema.FieldDescriptor, opts *FieldOptions) {
	ref := opts.Ref

	switch {
	case opts.Wrap && !opts.Nested():
		// The field must hold a present value.
		g.stmts = append(g.stmts,
			fmt.Sprintf("if p.%s.IsNone() {", ref),
			"\treturn false",
			"}",
		)

	case opts.Wrap && opts.Nested():
		// Presence and inner completeness are both required, the same
		// condition the conversion pre-checks. The conversion cannot
		// produce a base value from an absent field, so the predicate
		// must not accept one.
		g.stmts = append(g.stmts,
			fmt.Sprintf("if v, ok := p.%s.Get(); !ok || !v.CanBuild() {", ref),
			"\treturn false",
			"}",
		)

	case !opts.Wrap && opts.Nested():
		// Delegate to the nested partial type.
		g.stmts = append(g.stmts,
			fmt.Sprintf("if !p.%s.CanBuild() {", ref),
			"\treturn false",
			"}",
		)

	default:
		// Mandatory and unwrapped: always satisfied, no fragment.
	}
}

func (g *completenessGen) finalize() Op {
	stmts := append([]string(nil), g.stmts...)
	stmts = append(stmts, "return true")

	return Op{Stmts: stmts, Imports: newImports()}
}
