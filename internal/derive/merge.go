package derive

import (
	"fmt"

	"optionalstruct-generator/internal/schema"
)

// mergeGen accumulates the merge operation: the partial instance is
// applied field by field onto a mutable base instance and consumed.
// Merging is advisory: it has no failure channel, and the one case that
// attempts a nested conversion deliberately ignores its failure.
type mergeGen struct {
	stmts []string
}

func newMergeGen() *mergeGen {
	return &mergeGen{}
}

// Visit selects the field's behavior by (baseOptional, wrapped, nested).
func (g *mergeGen) Visit(_ *GlobalOptions, _, _ *schema.FieldDescriptor, opts *FieldOptions) {
	ref := opts.Ref

	switch {
	case opts.Wrap && opts.Nested():
		// Present: recursively merge the inner value. Absent: no-op.
		g.stmts = append(g.stmts,
			fmt.Sprintf("if inner, ok := p.%s.Get(); ok {", ref),
			fmt.Sprintf("\tinner.ApplyTo(&t.%s)", ref),
			"}",
		)

	case opts.Wrap && !opts.Nested():
		// Present: overwrite with the inner value. Absent: no-op.
		g.stmts = append(g.stmts,
			fmt.Sprintf("if inner, ok := p.%s.Get(); ok {", ref),
			fmt.Sprintf("\tt.%s = inner", ref),
			"}",
		)

	case opts.BaseOptional && opts.Nested():
		// Both present: merge into the existing value. Only the partial
		// present: best-effort conversion, failure ignored. Partial
		// absent: no-op.
		g.stmts = append(g.stmts,
			fmt.Sprintf("if inner, ok := p.%s.Get(); ok {", ref),
			fmt.Sprintf("\tif existing := t.%s.Ptr(); existing != nil {", ref),
			"\t\tinner.ApplyTo(existing)",
			"\t} else if v, err := inner.Build(); err == nil {",
			fmt.Sprintf("\t\tt.%s.Set(v)", ref),
			"\t}",
			"}",
		)

	case opts.BaseOptional && !opts.Nested():
		g.stmts = append(g.stmts,
			fmt.Sprintf("if p.%s.IsSome() {", ref),
			fmt.Sprintf("\tt.%s = p.%s", ref, ref),
			"}",
		)

	case opts.Nested():
		// Mandatory on both sides: always merge recursively.
		g.stmts = append(g.stmts, fmt.Sprintf("p.%s.ApplyTo(&t.%s)", ref, ref))

	default:
		g.stmts = append(g.stmts, fmt.Sprintf("t.%s = p.%s", ref, ref))
	}
}

func (g *mergeGen) finalize() Op {
	return Op{Stmts: append([]string(nil), g.stmts...), Imports: newImports()}
}
