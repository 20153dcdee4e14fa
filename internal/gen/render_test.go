package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optionalstruct-generator/internal/derive"
	"optionalstruct-generator/internal/schema"
)

func orderSchema() *schema.RecordSchema {
	return &schema.RecordSchema{
		Name:    "Order",
		PkgPath: "example.test/store",
		PkgName: "store",
		Fields: []schema.FieldDescriptor{
			{
				Ref:  schema.FieldRef{Name: "ID", Index: 0},
				Type: schema.TypeExpr{Source: "int", Shape: schema.ShapePlain},
			},
			{
				Ref:  schema.FieldRef{Name: "Note", Index: 1},
				Type: schema.TypeExpr{Source: "optional.Optional[string]", Shape: schema.ShapeOptional},
			},
			{
				Ref:   schema.FieldRef{Name: "Priority", Index: 2},
				Type:  schema.TypeExpr{Source: "int", Shape: schema.ShapePlain},
				Attrs: []schema.Attr{{Kind: schema.AttrSkipWrap}},
			},
		},
	}
}

func renderOrder(t *testing.T, params derive.Params) string {
	t.Helper()

	a, err := derive.Derive(orderSchema(), params)
	require.NoError(t, err)

	file, err := RenderFile("optional_gen.go", "store", []*derive.Artifacts{a})
	require.NoError(t, err)

	return string(file.Content)
}

func TestRenderFile(t *testing.T) {
	src := renderOrder(t, derive.Params{})

	assert.Contains(t, src, "// Code generated by optionalstruct-gen. DO NOT EDIT.")
	assert.Contains(t, src, "package store")
	assert.Contains(t, src, `"optionalstruct-generator/optional"`)

	// The partial struct definition. Field columns are gofmt-aligned.
	assert.Contains(t, src, "type OptionalOrder struct {")
	assert.Regexp(t, `ID\s+optional\.Optional\[int\]`, src)
	assert.Regexp(t, `Note\s+optional\.Optional\[string\]`, src)
	assert.Regexp(t, `Priority\s+int`, src)

	// The three operations.
	assert.Contains(t, src, "func (p OptionalOrder) CanBuild() bool {")
	assert.Contains(t, src, "func (p OptionalOrder) Build() (Order, error) {")
	assert.Contains(t, src, "func (p OptionalOrder) ApplyTo(t *Order) {")
	assert.Contains(t, src, "return Order{}, &optional.IncompleteError[OptionalOrder]{Partial: p}")

	// Capability methods with their imports.
	assert.Contains(t, src, "func (p OptionalOrder) Clone() OptionalOrder {")
	assert.Contains(t, src, "func (p OptionalOrder) Equal(other OptionalOrder) bool {")
	assert.Contains(t, src, "func NewOptionalOrder() OptionalOrder {")
	assert.Contains(t, src, "func (p OptionalOrder) Debug() string {")
	assert.Contains(t, src, `"reflect"`)
	assert.Contains(t, src, `"fmt"`)
}

func TestRenderCapabilitySubtraction(t *testing.T) {
	src := orderSchema()
	src.Capabilities = []string{"Clone", "Debug"}

	a, err := derive.Derive(src, derive.Params{})
	require.NoError(t, err)

	file, err := RenderFile("optional_gen.go", "store", []*derive.Artifacts{a})
	require.NoError(t, err)

	out := string(file.Content)
	assert.NotContains(t, out, "func (p OptionalOrder) Clone()")
	assert.NotContains(t, out, "func (p OptionalOrder) Debug()")
	assert.Contains(t, out, "func (p OptionalOrder) Equal(")
	assert.NotContains(t, out, `"fmt"`)
}

func TestRenderDeterminism(t *testing.T) {
	first := renderOrder(t, derive.Params{Tags: []string{"linux", "debugmode"}})
	second := renderOrder(t, derive.Params{Tags: []string{"linux", "debugmode"}})

	assert.Equal(t, first, second)
	assert.Contains(t, first, "// Guards evaluated with tags: debugmode linux.")
}

func TestRenderGenericType(t *testing.T) {
	src := &schema.RecordSchema{
		Name:       "Box",
		PkgName:    "box",
		TypeParams: []schema.TypeParam{{Name: "T", Constraint: "any"}},
		Fields: []schema.FieldDescriptor{
			{
				Ref:  schema.FieldRef{Name: "Value"},
				Type: schema.TypeExpr{Source: "T", Shape: schema.ShapePlain},
			},
		},
	}

	a, err := derive.Derive(src, derive.Params{})
	require.NoError(t, err)

	file, err := RenderFile("optional_gen.go", "box", []*derive.Artifacts{a})
	require.NoError(t, err)

	out := string(file.Content)
	assert.Contains(t, out, "type OptionalBox[T any] struct {")
	assert.Contains(t, out, "func (p OptionalBox[T]) Build() (Box[T], error) {")
	assert.Contains(t, out, "func NewOptionalBox[T any]() OptionalBox[T] {")
}

func TestRenderRejectsPositionalFields(t *testing.T) {
	src := &schema.RecordSchema{
		Name:    "Pair",
		PkgName: "pair",
		Fields: []schema.FieldDescriptor{
			{Ref: schema.FieldRef{Index: 0}, Type: schema.TypeExpr{Source: "int", Shape: schema.ShapePlain}},
		},
	}

	a, err := derive.Derive(src, derive.Params{})
	require.NoError(t, err)

	_, err = RenderFile("optional_gen.go", "pair", []*derive.Artifacts{a})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "named fields")
}

func TestRenderMultipleTypes(t *testing.T) {
	contact := &schema.RecordSchema{
		Name:    "Contact",
		PkgName: "store",
		Fields: []schema.FieldDescriptor{
			{Ref: schema.FieldRef{Name: "Email"}, Type: schema.TypeExpr{Source: "string", Shape: schema.ShapePlain}},
		},
	}

	a1, err := derive.Derive(contact, derive.Params{})
	require.NoError(t, err)

	a2, err := derive.Derive(orderSchema(), derive.Params{})
	require.NoError(t, err)

	file, err := RenderFile("optional_gen.go", "store", []*derive.Artifacts{a1, a2})
	require.NoError(t, err)

	out := string(file.Content)
	assert.Contains(t, out, "// Partial schemas derived from: Contact, Order.")

	// Manifest order preserved.
	contactIdx := strings.Index(out, "type OptionalContact struct")
	orderIdx := strings.Index(out, "type OptionalOrder struct")
	require.GreaterOrEqual(t, contactIdx, 0)
	assert.Greater(t, orderIdx, contactIdx)
}
