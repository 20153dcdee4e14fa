package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optionalstruct-generator/internal/schema"
)

const storePkg = "optionalstruct-generator/examples/store"

func loadStore(t *testing.T) *Package {
	t.Helper()

	pkg, err := LoadPackage(storePkg)
	require.NoError(t, err)

	return pkg
}

func TestLoadPackage(t *testing.T) {
	pkg := loadStore(t)

	assert.Equal(t, "store", pkg.Name())
	assert.Equal(t, storePkg, pkg.Path())
	assert.True(t, strings.HasSuffix(pkg.Dir(), "examples/store"))
}

func TestLoadPackageBadPattern(t *testing.T) {
	_, err := LoadPackage("optionalstruct-generator/does-not-exist")
	assert.Error(t, err)
}

func TestSchemaFields(t *testing.T) {
	pkg := loadStore(t)

	s, err := pkg.Schema("Order")
	require.NoError(t, err)

	assert.Equal(t, "Order", s.Name)
	assert.Equal(t, storePkg, s.PkgPath)
	assert.Equal(t, "store", s.PkgName)
	assert.Empty(t, s.TypeParams)

	var names []string
	for _, f := range s.Fields {
		names = append(names, f.Ref.Name)
	}

	assert.Equal(t, []string{"ID", "Quantity", "Note", "Contact", "Backup", "Priority", "Trace"}, names)

	byName := make(map[string]schema.FieldDescriptor)
	for _, f := range s.Fields {
		byName[f.Ref.Name] = f
	}

	assert.Equal(t, schema.ShapePlain, byName["ID"].Type.Shape)
	assert.Equal(t, schema.ShapeOptional, byName["Note"].Type.Shape)

	require.Len(t, byName["Contact"].Attrs, 1)
	assert.Equal(t, schema.Attr{Kind: schema.AttrRename, Arg: "OptionalContact"}, byName["Contact"].Attrs[0])

	require.Len(t, byName["Backup"].Attrs, 2)
	assert.Equal(t, schema.Attr{Kind: schema.AttrRename, Arg: "OptionalContact"}, byName["Backup"].Attrs[0])
	assert.Equal(t, schema.AttrWrap, byName["Backup"].Attrs[1].Kind)

	require.Len(t, byName["Priority"].Attrs, 1)
	assert.Equal(t, schema.AttrSkipWrap, byName["Priority"].Attrs[0].Kind)

	require.Len(t, byName["Trace"].Attrs, 1)
	assert.Equal(t, schema.Attr{Kind: schema.AttrGuard, Arg: "debugmode"}, byName["Trace"].Attrs[0])
}

func TestSchemaCapabilities(t *testing.T) {
	pkg := loadStore(t)

	order, err := pkg.Schema("Order")
	require.NoError(t, err)
	assert.Equal(t, []string{"Debug"}, order.Capabilities)

	contact, err := pkg.Schema("Contact")
	require.NoError(t, err)
	assert.Empty(t, contact.Capabilities)
}

func TestSchemaNotFound(t *testing.T) {
	pkg := loadStore(t)

	_, err := pkg.Schema("Missing")
	assert.ErrorContains(t, err, "not found")
}
