package derive

import (
	"fmt"
	"go/token"

	"optionalstruct-generator/internal/schema"
)

// Params are the invocation parameters of one derivation, as supplied by
// the manifest front-end.
type Params struct {
	// Name overrides the partial schema's name. Empty means the default
	// "Optional" + base name.
	Name string
	// Wrap overrides the default-wrap policy. Nil means true.
	Wrap *bool
	// Tags is the build tag set guards are evaluated against.
	Tags []string
}

// GlobalOptions is the resolved per-derivation configuration.
type GlobalOptions struct {
	// Name of the partial schema.
	Name string
	// DefaultWrap applies to fields that are not already optional and not
	// explicitly annotated.
	DefaultWrap bool
	// Capabilities to ensure on the partial schema.
	Capabilities []string
	// Visibility policy for derived fields.
	Visibility schema.Visibility
	// Tags is the active build tag set.
	Tags map[string]struct{}
}

// DefaultCapabilities are attached to the partial schema unless the base
// schema already carries them.
func DefaultCapabilities() []string {
	return []string{CapClone, CapEqual, CapDefault, CapDebug}
}

// Capability names.
const (
	CapClone   = "Clone"
	CapEqual   = "Equal"
	CapDefault = "Default"
	CapDebug   = "Debug"
)

// ResolveGlobalOptions validates the invocation parameters against the
// base schema and fills in defaults. Malformed parameters are fatal.
func ResolveGlobalOptions(p Params, base *schema.RecordSchema) (*GlobalOptions, error) {
	name := p.Name
	if name == "" {
		name = "Optional" + base.Name
	}

	if !token.IsIdentifier(name) {
		return nil, fmt.Errorf("partial schema name %q is not a valid identifier", name)
	}

	if name == base.Name {
		return nil, fmt.Errorf("partial schema name %q collides with the base schema", name)
	}

	wrap := true
	if p.Wrap != nil {
		wrap = *p.Wrap
	}

	tags := make(map[string]struct{}, len(p.Tags))
	for _, tag := range p.Tags {
		tags[tag] = struct{}{}
	}

	return &GlobalOptions{
		Name:         name,
		DefaultWrap:  wrap,
		Capabilities: DefaultCapabilities(),
		Visibility:   schema.VisibilityPublic,
		Tags:         tags,
	}, nil
}
