// Package main provides the CLI entrypoint for optionalstruct-gen.
//
// optionalstruct-gen is a Go codegen tool that:
//   - Parses a Go package to its syntax trees and reads the configured
//     struct declarations from them; optionality is detected from the
//     declared type syntax, never from resolved type information
//   - Derives a partial companion struct per base struct, with selectively
//     optional fields driven by struct tags and manifest options
//   - Emits the companion types together with a completeness predicate,
//     a fallible conversion back to the base type and an in-place merge
package main

import (
	"fmt"
	"os"

	"optionalstruct-generator/internal/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
