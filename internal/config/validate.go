package config

import (
	"fmt"
	"go/token"
	"strings"

	"optionalstruct-generator/internal/common"
	"optionalstruct-generator/internal/diagnostic"
)

// Validate checks a parsed manifest. All problems are reported, not just
// the first; a manifest with errors must not reach derivation.
func Validate(m *Manifest) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if m.Version != "1" {
		diags.AddError(diagnostic.CodeConfig, "", "",
			fmt.Sprintf("unsupported manifest version %q", m.Version))
	}

	if strings.TrimSpace(m.Package) == "" {
		diags.AddError(diagnostic.CodeConfig, "", "", "package pattern is required")
	}

	if !strings.HasSuffix(m.Output, ".go") {
		diags.AddError(diagnostic.CodeConfig, "", "",
			fmt.Sprintf("output %q must be a .go file name", m.Output))
	}

	if common.IsEmpty(m.Derive) {
		diags.AddError(diagnostic.CodeConfig, "", "", "derive list is empty")
	}

	seenTypes := make(map[string]struct{})
	seenNames := make(map[string]struct{})

	for _, d := range m.Derive {
		if d.Type == "" {
			diags.AddError(diagnostic.CodeConfig, "", "", "derive entry without a type name")
			continue
		}

		if !token.IsIdentifier(d.Type) {
			diags.AddError(diagnostic.CodeConfig, d.Type, "",
				fmt.Sprintf("type %q is not a valid identifier", d.Type))
		}

		if _, dup := seenTypes[d.Type]; dup {
			diags.AddError(diagnostic.CodeConfig, d.Type, "",
				fmt.Sprintf("type %q derived more than once", d.Type))
		}

		seenTypes[d.Type] = struct{}{}

		if d.Name != "" {
			if !token.IsIdentifier(d.Name) {
				diags.AddError(diagnostic.CodeConfig, d.Type, "",
					fmt.Sprintf("name %q is not a valid identifier", d.Name))
			}

			if _, dup := seenNames[d.Name]; dup {
				diags.AddError(diagnostic.CodeConfig, d.Type, "",
					fmt.Sprintf("partial name %q used more than once", d.Name))
			}

			seenNames[d.Name] = struct{}{}
		}
	}

	for _, tag := range m.Tags {
		if tag == "" || strings.ContainsAny(tag, " \t") {
			diags.AddError(diagnostic.CodeConfig, "", "",
				fmt.Sprintf("malformed build tag %q", tag))
		}
	}

	return diags
}
