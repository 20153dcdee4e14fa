// Package schema holds the record intermediate representation shared by
// the analyzer, the derivation core and the renderer: record and field
// descriptors, syntactic type shapes, and the parsed field annotations.
package schema
