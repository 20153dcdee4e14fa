package derive

import (
	"fmt"

	"optionalstruct-generator/internal/schema"
)

// conversionGen accumulates the fallible base-from-partial conversion in
// check-then-assign form: every pre-check runs before any value is
// extracted, so a failed conversion never partially consumes its input.
// The first failing check wins, in declaration order, and returns the
// original receiver as the error payload.
type conversionGen struct {
	baseRef    string
	partialRef string
	checks     []string
	temps      []string
	entries    []string
	imports    map[string]struct{}
	stem       *nameStem
}

func newConversionGen(baseRef, partialRef string) *conversionGen {
	// p, t, v and ok are taken by the fixed parts of the generated
	// operations.
	taken := map[string]struct{}{
		"p": {}, "t": {}, "v": {}, "ok": {},
	}

	return &conversionGen{
		baseRef:    baseRef,
		partialRef: partialRef,
		imports:    newImports(),
		stem:       newNameStem("v", taken),
	}
}

// failReturn is the shared abort fragment: the zero base value plus an
// IncompleteError carrying the untouched receiver.
func (g *conversionGen) failReturn() []string {
	g.imports[OptionalPkgPath] = struct{}{}

	return []string{
		fmt.Sprintf("\treturn %s{}, &optional.IncompleteError[%s]{Partial: p}", g.baseRef, g.partialRef),
		"}",
	}
}

// Visit selects pre-check and extraction by (wrapped, nested).
func (g *conversionGen) Visit(_ *GlobalOptions, _, _ *schema.FieldDescriptor, opts *FieldOptions) {
	ref := opts.Ref

	switch {
	case opts.Wrap && !opts.Nested():
		g.checks = append(g.checks, fmt.Sprintf("if p.%s.IsNone() {", ref))
		g.checks = append(g.checks, g.failReturn()...)

		g.entries = append(g.entries, fmt.Sprintf("%s: p.%s.MustGet(),", ref, ref))

	case opts.Wrap && opts.Nested():
		g.checks = append(g.checks,
			fmt.Sprintf("if v, ok := p.%s.Get(); !ok || !v.CanBuild() {", ref))
		g.checks = append(g.checks, g.failReturn()...)

		tmp := g.stem.next()
		g.temps = append(g.temps, fmt.Sprintf("%s, _ := p.%s.MustGet().Build()", tmp, ref))
		g.entries = append(g.entries, fmt.Sprintf("%s: %s,", ref, tmp))

	case !opts.Wrap && opts.Nested():
		g.checks = append(g.checks, fmt.Sprintf("if !p.%s.CanBuild() {", ref))
		g.checks = append(g.checks, g.failReturn()...)

		tmp := g.stem.next()
		g.temps = append(g.temps, fmt.Sprintf("%s, _ := p.%s.Build()", tmp, ref))
		g.entries = append(g.entries, fmt.Sprintf("%s: %s,", ref, tmp))

	default:
		// Mandatory and unwrapped: no pre-check, value used as-is.
		g.entries = append(g.entries, fmt.Sprintf("%s: p.%s,", ref, ref))
	}
}

func (g *conversionGen) finalize() ConversionOp {
	return ConversionOp{
		Checks:  append([]string(nil), g.checks...),
		Temps:   append([]string(nil), g.temps...),
		Entries: append([]string(nil), g.entries...),
		Imports: g.imports,
	}
}
