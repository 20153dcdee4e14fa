// Package config loads and validates the YAML derivation manifest that
// drives a generation run.
package config
