// Package analyze loads Go packages and extracts record schemas from
// struct declarations. Field types are read from the syntax tree, not
// from resolved type information: the derivation engine classifies
// declared shapes, and an alias that hides an optional type is
// intentionally not seen through.
package analyze
