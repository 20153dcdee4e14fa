package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
package: ./examples/store
output: store_optional_gen.go
tags:
  - debugmode
derive:
  - type: Order
    name: OrderDraft
    wrap: false
  - type: Contact
`

	m, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", m.Version)
	assert.Equal(t, "./examples/store", m.Package)
	assert.Equal(t, "store_optional_gen.go", m.Output)
	assert.Equal(t, []string{"debugmode"}, m.Tags)

	require.Len(t, m.Derive, 2)
	assert.Equal(t, "OrderDraft", m.Derive[0].Name)
	require.NotNil(t, m.Derive[0].Wrap)
	assert.False(t, *m.Derive[0].Wrap)

	// Defaults: derived name, nil wrap meaning true.
	assert.Equal(t, "OptionalContact", m.Derive[1].Name)
	assert.Nil(t, m.Derive[1].Wrap)
}

func TestParseDefaults(t *testing.T) {
	m, err := Parse([]byte("package: ./x\nderive:\n  - type: T\n"))
	require.NoError(t, err)

	assert.Equal(t, "1", m.Version)
	assert.Equal(t, "optional_gen.go", m.Output)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("derive: {not a list"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := &Manifest{
		Version: "1",
		Package: "./store",
		Output:  "optional_gen.go",
		Derive:  []Derivation{{Type: "Order", Name: "OptionalOrder"}},
	}

	diags := Validate(valid)
	assert.False(t, diags.HasErrors())
	assert.NoError(t, diags.Err())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		want     string
	}{
		{"bad version", Manifest{Version: "2", Package: "./x", Output: "a.go", Derive: []Derivation{{Type: "T"}}}, "version"},
		{"missing package", Manifest{Version: "1", Output: "a.go", Derive: []Derivation{{Type: "T"}}}, "package"},
		{"bad output", Manifest{Version: "1", Package: "./x", Output: "a.txt", Derive: []Derivation{{Type: "T"}}}, ".go"},
		{"empty derive", Manifest{Version: "1", Package: "./x", Output: "a.go"}, "empty"},
		{
			"duplicate type",
			Manifest{Version: "1", Package: "./x", Output: "a.go", Derive: []Derivation{{Type: "T"}, {Type: "T"}}},
			"more than once",
		},
		{
			"duplicate name",
			Manifest{Version: "1", Package: "./x", Output: "a.go", Derive: []Derivation{
				{Type: "A", Name: "P"}, {Type: "B", Name: "P"},
			}},
			"used more than once",
		},
		{
			"bad identifier",
			Manifest{Version: "1", Package: "./x", Output: "a.go", Derive: []Derivation{{Type: "not ident"}}},
			"identifier",
		},
		{
			"bad tag",
			Manifest{Version: "1", Package: "./x", Output: "a.go", Tags: []string{"a b"}, Derive: []Derivation{{Type: "T"}}},
			"tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(&tt.manifest)
			require.True(t, diags.HasErrors())
			assert.Contains(t, diags.Err().Error(), tt.want)
		})
	}
}
