package derive

import (
	"fmt"
	"sort"
	"strings"

	"optionalstruct-generator/internal/schema"
)

// Artifacts is everything one derivation produces, handed to the
// renderer: the base schema with helper annotations stripped, the partial
// schema, the capability list to attach to it, and the three generated
// operations.
type Artifacts struct {
	Base    *schema.RecordSchema
	Partial *schema.RecordSchema
	// Capabilities to generate on the partial schema; defaults minus
	// whatever the base schema already carries.
	Capabilities []string
	// CanBuild is the completeness predicate.
	CanBuild Op
	// Build is the fallible base-from-partial conversion.
	Build ConversionOp
	// ApplyTo is the in-place merge.
	ApplyTo Op
	// Tags is the sorted active tag set guards were evaluated against.
	Tags []string
}

// Derive runs the whole pipeline for one base schema: classification of
// every field, the ordered visitor pass, renaming, capability
// subtraction and helper-annotation stripping. Any classification or
// configuration error aborts with no output.
//
// The derivation is a pure function of (source, params): it never mutates
// the source schema and holds no cross-invocation state.
func Derive(source *schema.RecordSchema, params Params) (*Artifacts, error) {
	global, err := ResolveGlobalOptions(params, source)
	if err != nil {
		return nil, fmt.Errorf("deriving %s: %w", source.Name, err)
	}

	// Two independent copies from one read-only source. The base copy
	// keeps every field; the partial copy is rebuilt below.
	base := source.Clone()
	partial := source.Clone()

	// Classify all fields before generating anything: a bad field at the
	// end must not leave half-finished fragments behind.
	fieldOpts := make([]*FieldOptions, len(base.Fields))
	for i := range base.Fields {
		opts, err := Classify(&base.Fields[i], global)
		if err != nil {
			return nil, fmt.Errorf("deriving %s: %w", source.Name, err)
		}

		fieldOpts[i] = opts
	}

	typeArgs := typeArgList(source.TypeParams)

	canGen := newCompletenessGen()
	convGen := newConversionGen(source.Name+typeArgs, global.Name+typeArgs)
	mergeGen := newMergeGen()

	visitors := []fieldVisitor{
		visibilityRewriter{},
		typeRewriter{},
		canGen,
		convGen,
		mergeGen,
	}

	partial.Fields = partial.Fields[:0]

	for i := range base.Fields {
		opts := fieldOpts[i]

		// An inactive guard removes the field from the partial schema and
		// from every generated fragment. The base field stays as
		// declared, guard included.
		if opts.Guard != nil && !opts.Guard.Active(global.Tags) {
			continue
		}

		clone := base.Fields[i]
		clone.Attrs = append([]schema.Attr(nil), base.Fields[i].Attrs...)
		partial.Fields = append(partial.Fields, clone)

		pf := &partial.Fields[len(partial.Fields)-1]

		for _, v := range visitors {
			v.Visit(global, &base.Fields[i], pf, opts)
		}
	}

	// Strip helper annotations only after the attribute read pass covered
	// every field. Renderers cannot remove markers in the same pass that
	// reads them, and neither may we.
	for i := range base.Fields {
		schema.StripHelperAttrs(&base.Fields[i])
	}

	for i := range partial.Fields {
		schema.StripHelperAttrs(&partial.Fields[i])
	}

	partial.Name = global.Name
	partial.Capabilities = nil

	return &Artifacts{
		Base:         base,
		Partial:      partial,
		Capabilities: missingCapabilities(global.Capabilities, source),
		CanBuild:     canGen.finalize(),
		Build:        convGen.finalize(),
		ApplyTo:      mergeGen.finalize(),
		Tags:         sortedTags(global.Tags),
	}, nil
}

// missingCapabilities subtracts the base schema's own capability list to
// avoid duplicate derivation.
func missingCapabilities(want []string, base *schema.RecordSchema) []string {
	var out []string

	for _, cap := range want {
		if !base.HasCapability(cap) {
			out = append(out, cap)
		}
	}

	return out
}

// typeArgList renders the generic argument list shared by the base and
// partial schema, e.g. "[T, U]".
func typeArgList(params []schema.TypeParam) string {
	if len(params) == 0 {
		return ""
	}

	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}

	return "[" + strings.Join(names, ", ") + "]"
}

func sortedTags(tags map[string]struct{}) []string {
	out := make([]string, 0, len(tags))
	for tag := range tags {
		out = append(out, tag)
	}

	sort.Strings(out)

	return out
}
