package commands

import (
	"errors"
	"fmt"

	"optionalstruct-generator/internal/analyze"
	"optionalstruct-generator/internal/config"
	"optionalstruct-generator/internal/derive"
	"optionalstruct-generator/internal/diagnostic"
)

// loadManifest reads and validates the manifest behind the -c flag.
func loadManifest(path string) (*config.Manifest, error) {
	m, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	diags := config.Validate(m)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, diags.Err())
	}

	return m, nil
}

// deriveAll runs every derivation of the manifest, collecting per-type
// failures as diagnostics so a batch run reports all of them.
func deriveAll(m *config.Manifest) (*analyze.Package, []*derive.Artifacts, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	pkg, err := analyze.LoadPackage(m.Package)
	if err != nil {
		diags.AddError(diagnostic.CodeLoad, "", "", err.Error())
		return nil, nil, diags
	}

	var artifacts []*derive.Artifacts

	for _, d := range m.Derive {
		source, err := pkg.Schema(d.Type)
		if err != nil {
			diags.AddError(diagnostic.CodeNotRecord, d.Type, "", err.Error())
			continue
		}

		params := derive.Params{Name: d.Name, Wrap: d.Wrap, Tags: m.Tags}

		a, err := derive.Derive(source, params)
		if err != nil {
			code := diagnostic.CodeConfig
			if errors.Is(err, derive.ErrUnsupportedShape) {
				code = diagnostic.CodeUnsupportedShape
			}

			diags.AddError(code, d.Type, "", err.Error())

			continue
		}

		artifacts = append(artifacts, a)
	}

	return pkg, artifacts, diags
}
