package schema

import (
	"fmt"
	"strings"

	"optionalstruct-generator/internal/common"
)

// TagKey is the struct tag key read for field annotations.
const TagKey = "optional"

// AttrKind enumerates the supported field annotations.
type AttrKind int

const (
	// AttrRename substitutes the given type for the field in the partial
	// schema and disables auto-wrapping.
	AttrRename AttrKind = iota
	// AttrSkipWrap disables wrapping for the field.
	AttrSkipWrap
	// AttrWrap forces wrapping for the field.
	AttrWrap
	// AttrGuard records a build-constraint guard for the field.
	AttrGuard
)

// String returns the annotation's tag spelling.
func (k AttrKind) String() string {
	switch k {
	case AttrRename:
		return "rename"
	case AttrSkipWrap:
		return "skip"
	case AttrWrap:
		return "wrap"
	case AttrGuard:
		return "cfg"
	default:
		return common.UnknownStr
	}
}

// Attr is one parsed field annotation.
type Attr struct {
	Kind AttrKind
	// Arg is the annotation argument: the substitute type for rename, the
	// constraint expression for cfg, empty otherwise.
	Arg string
}

// ParseAttrs parses the value of an `optional:"..."` struct tag into the
// annotation list, preserving declaration order. Order matters: the
// classifier applies annotations left to right and the last one wins.
//
// Grammar: comma-separated entries of
//
//	rename=<type>  skip  wrap  cfg=<build constraint>
func ParseAttrs(tag string) ([]Attr, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" || tag == "-" {
		return nil, nil
	}

	var attrs []Attr

	for _, entry := range strings.Split(tag, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		key, arg, hasArg := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		arg = strings.TrimSpace(arg)

		switch key {
		case "rename":
			if !hasArg || arg == "" {
				return nil, fmt.Errorf("annotation %q expects one argument (the substitute type)", key)
			}

			attrs = append(attrs, Attr{Kind: AttrRename, Arg: arg})

		case "skip", "skipwrap":
			if hasArg {
				return nil, fmt.Errorf("annotation %q takes no argument", key)
			}

			attrs = append(attrs, Attr{Kind: AttrSkipWrap})

		case "wrap":
			if hasArg {
				return nil, fmt.Errorf("annotation %q takes no argument", key)
			}

			attrs = append(attrs, Attr{Kind: AttrWrap})

		case "cfg":
			if !hasArg || arg == "" {
				return nil, fmt.Errorf("annotation %q expects one argument (a build constraint)", key)
			}

			attrs = append(attrs, Attr{Kind: AttrGuard, Arg: arg})

		default:
			return nil, fmt.Errorf("unknown annotation %q", key)
		}
	}

	return attrs, nil
}

// StripHelperAttrs removes rename/skip/wrap markers from a field,
// keeping guards, which must stay on the original field verbatim.
func StripHelperAttrs(f *FieldDescriptor) {
	kept := f.Attrs[:0]

	for _, a := range f.Attrs {
		if a.Kind == AttrGuard {
			kept = append(kept, a)
		}
	}

	f.Attrs = kept
}
