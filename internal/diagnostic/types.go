package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"optionalstruct-generator/internal/common"
)

// Diagnostics collects everything a derivation run wants to tell the
// user, split by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic is a single message.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of diagnostic, e.g. "unsupported-shape".
	Code string
	// Message is the human-readable description.
	Message string
	// Schema names the record type this relates to, if any.
	Schema string
	// Field names the field this relates to, if any.
	Field string
}

// Severity is the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic codes.
const (
	CodeConfig           = "config"
	CodeUnsupportedShape = "unsupported-shape"
	CodeLoad             = "load"
	CodeNotRecord        = "not-a-record"
	CodeRender           = "render"
)

// AddError records an error diagnostic.
func (d *Diagnostics) AddError(code, schemaName, field, message string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Schema:   schemaName,
		Field:    field,
	})
}

// AddWarning records a warning diagnostic.
func (d *Diagnostics) AddWarning(code, schemaName, field, message string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Schema:   schemaName,
		Field:    field,
	})
}

// HasErrors returns true if any error diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Err returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic line.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Schema != "" {
		prefix = append(prefix, "["+d.Schema+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
