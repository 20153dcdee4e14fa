// Package diagnostic provides the error and warning reporting used by
// the check and gen commands. Derivation itself is all-or-nothing;
// diagnostics let a batch run over many record types report every
// failure instead of stopping at the first.
package diagnostic
