package derive

import "strconv"

// Op is one generated operation: its body statements plus the import
// paths those statements rely on. The renderer supplies the signature.
type Op struct {
	Stmts   []string
	Imports map[string]struct{}
}

// ConversionOp is the fallible conversion in check-then-assign form: all
// pre-checks run first in field order, only then are the extracted values
// assembled. Kept as separate fragment streams so a renderer cannot
// interleave them.
type ConversionOp struct {
	// Checks abort the conversion, returning the untouched receiver.
	Checks []string
	// Temps extract values that need a statement, e.g. nested builds.
	Temps []string
	// Entries are the composite literal entries, in declaration order.
	Entries []string
	Imports map[string]struct{}
}

// OptionalPkgPath is the import path of the runtime package generated
// code depends on.
const OptionalPkgPath = "optionalstruct-generator/optional"

func newImports() map[string]struct{} {
	return make(map[string]struct{})
}

// nameStem hands out unique names with a common prefix for generated
// temporaries.
type nameStem struct {
	taken map[string]struct{}
	stem  string
	last  int
}

func newNameStem(stem string, taken map[string]struct{}) *nameStem {
	return &nameStem{taken: taken, stem: stem}
}

func (s *nameStem) next() string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	for {
		s.last++
		name := s.stem + strconv.Itoa(s.last)

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}
