package derive

import (
	"fmt"
	"go/build/constraint"
)

// Guard is a parsed conditional-compilation guard. Guard expressions use
// the build-constraint grammar ("linux && !windows") and are evaluated
// against the tag set supplied at derivation time. Go cannot gate a
// single struct field per build tag, so guards resolve during generation:
// a field whose guard is inactive is absent from the partial schema and
// from every generated fragment.
type Guard struct {
	// Raw is the expression as written on the field.
	Raw  string
	expr constraint.Expr
}

// ParseGuard parses a build-constraint expression. A malformed expression
// is a configuration error and aborts the derivation.
func ParseGuard(raw string) (*Guard, error) {
	expr, err := constraint.Parse("//go:build " + raw)
	if err != nil {
		return nil, fmt.Errorf("malformed guard %q: %w", raw, err)
	}

	return &Guard{Raw: raw, expr: expr}, nil
}

// Active evaluates the guard against the active tag set.
func (g *Guard) Active(tags map[string]struct{}) bool {
	return g.expr.Eval(func(tag string) bool {
		_, ok := tags[tag]
		return ok
	})
}
