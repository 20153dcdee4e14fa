package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttrs(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want []Attr
	}{
		{"empty", "", nil},
		{"dash", "-", nil},
		{"skip", "skip", []Attr{{Kind: AttrSkipWrap}}},
		{"skipwrap alias", "skipwrap", []Attr{{Kind: AttrSkipWrap}}},
		{"wrap", "wrap", []Attr{{Kind: AttrWrap}}},
		{"rename", "rename=OptionalInner", []Attr{{Kind: AttrRename, Arg: "OptionalInner"}}},
		{"guard", "cfg=linux && !windows", []Attr{{Kind: AttrGuard, Arg: "linux && !windows"}}},
		{
			"order preserved",
			"skip, wrap",
			[]Attr{{Kind: AttrSkipWrap}, {Kind: AttrWrap}},
		},
		{
			"rename with guard",
			"rename=OptionalContact,cfg=debugmode",
			[]Attr{
				{Kind: AttrRename, Arg: "OptionalContact"},
				{Kind: AttrGuard, Arg: "debugmode"},
			},
		},
		{"spaces tolerated", " wrap , cfg=linux ", []Attr{{Kind: AttrWrap}, {Kind: AttrGuard, Arg: "linux"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAttrs(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAttrsErrors(t *testing.T) {
	for _, tag := range []string{
		"rename",
		"rename=",
		"cfg",
		"cfg=",
		"skip=yes",
		"wrap=true",
		"frobnicate",
	} {
		t.Run(tag, func(t *testing.T) {
			_, err := ParseAttrs(tag)
			assert.Error(t, err)
		})
	}
}

func TestStripHelperAttrs(t *testing.T) {
	f := FieldDescriptor{
		Attrs: []Attr{
			{Kind: AttrRename, Arg: "X"},
			{Kind: AttrGuard, Arg: "linux"},
			{Kind: AttrSkipWrap},
			{Kind: AttrWrap},
		},
	}

	StripHelperAttrs(&f)

	assert.Equal(t, []Attr{{Kind: AttrGuard, Arg: "linux"}}, f.Attrs)
}

func TestFieldRefString(t *testing.T) {
	assert.Equal(t, "Name", FieldRef{Name: "Name", Index: 3}.String())
	assert.Equal(t, "3", FieldRef{Index: 3}.String())
	assert.True(t, FieldRef{Name: "Name"}.Named())
	assert.False(t, FieldRef{Index: 1}.Named())
}

func TestCloneIsIndependent(t *testing.T) {
	src := &RecordSchema{
		Name:         "Order",
		TypeParams:   []TypeParam{{Name: "T", Constraint: "any"}},
		Capabilities: []string{"Clone"},
		Fields: []FieldDescriptor{
			{Ref: FieldRef{Name: "ID"}, Attrs: []Attr{{Kind: AttrWrap}}},
		},
	}

	cp := src.Clone()
	cp.Fields[0].Attrs[0].Kind = AttrSkipWrap
	cp.Fields[0].Ref.Name = "Changed"
	cp.Name = "Other"

	assert.Equal(t, "Order", src.Name)
	assert.Equal(t, "ID", src.Fields[0].Ref.Name)
	assert.Equal(t, AttrWrap, src.Fields[0].Attrs[0].Kind)
}

func TestHasCapability(t *testing.T) {
	s := &RecordSchema{Capabilities: []string{"Clone", "Equal"}}
	assert.True(t, s.HasCapability("Clone"))
	assert.False(t, s.HasCapability("Debug"))
}
