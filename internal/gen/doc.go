// Package gen renders derivation artifacts into formatted Go source
// files. The derivation core hands over schema descriptions and
// operation fragments; this package owns signatures, imports, layout and
// gofmt.
package gen
