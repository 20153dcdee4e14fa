package analyze

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optionalstruct-generator/internal/schema"
)

func shapeOf(t *testing.T, src string) schema.TypeExpr {
	t.Helper()

	expr, err := parser.ParseExpr(src)
	require.NoError(t, err)

	return TypeExprOf(token.NewFileSet(), expr)
}

func TestClassifyShape(t *testing.T) {
	tests := []struct {
		src    string
		shape  schema.ShapeKind
		detail string
	}{
		// plain shapes
		{"int", schema.ShapePlain, ""},
		{"string", schema.ShapePlain, ""},
		{"time.Time", schema.ShapePlain, ""},
		{"[4]byte", schema.ShapePlain, ""},
		{"map[string]int", schema.ShapePlain, ""},
		{"List[int]", schema.ShapePlain, ""},
		{"container.Set[string, int]", schema.ShapePlain, ""},
		{"(int)", schema.ShapePlain, ""},

		// optional shapes, matched by the last path segment name
		{"optional.Optional[string]", schema.ShapeOptional, ""},
		{"Optional[int]", schema.ShapeOptional, ""},
		{"mypkg.Optional[List[int]]", schema.ShapeOptional, ""},
		{"(optional.Optional[int])", schema.ShapeOptional, ""},

		// unsupported shapes
		{"*int", schema.ShapeUnsupported, "pointer"},
		{"[]string", schema.ShapeUnsupported, "slice"},
		{"func()", schema.ShapeUnsupported, "function"},
		{"chan int", schema.ShapeUnsupported, "channel"},
		{"interface{}", schema.ShapeUnsupported, "interface"},
		{"any", schema.ShapeUnsupported, "interface"},
		{"struct{ X int }", schema.ShapeUnsupported, "anonymous struct"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := shapeOf(t, tt.src)
			assert.Equal(t, tt.shape, got.Shape)
			assert.Equal(t, tt.detail, got.ShapeDetail)
		})
	}
}

func TestAliasIsNotResolved(t *testing.T) {
	// A named alias hiding an Optional is classified plain. Known
	// limitation of the name-based heuristic.
	got := shapeOf(t, "MaybeInt")
	assert.Equal(t, schema.ShapePlain, got.Shape)
}

func TestTypeExprSourceText(t *testing.T) {
	got := shapeOf(t, "optional.Optional[map[string]int]")
	assert.Equal(t, "optional.Optional[map[string]int]", got.Source)
}
