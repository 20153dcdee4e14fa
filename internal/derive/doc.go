// Package derive is the core of the generator: it classifies every field
// of a base record schema, rewrites types and visibilities for the
// derived partial schema, and folds per-field fragments into the three
// generated operations (completeness predicate, fallible conversion,
// in-place merge).
//
// Classification is a pure function of the field's declared shape, its
// annotations and the default-wrap policy. The per-field matrix over
// (baseOptional, wrapped, nested) is dispatched exhaustively in each
// generator; a derivation either completes fully or fails before
// producing any output.
package derive
