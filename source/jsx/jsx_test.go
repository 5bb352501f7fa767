package jsx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/astmarkov/source/jsx"
)

func TestJavaScriptParser(t *testing.T) {
	root, err := jsx.NewJavaScriptParser().Parse(context.Background(), []byte("let x = 1;"))
	require.NoError(t, err)
	assert.Equal(t, []string{"program", "lexical_declaration", "variable_declarator", "identifier", "number"}, root.Types())

	declarator := root.Children[0].Children[0]
	assert.Equal(t, "identifier", declarator.Child("name").Type)
	assert.Equal(t, "number", declarator.Child("value").Type)
}

func TestTypeScriptNormalizer(t *testing.T) {
	src := "function f(a: number): number { return a }"
	root, err := jsx.NewTypeScriptParser().Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	assert.Contains(t, root.Types(), "type_annotation")

	normalized := jsx.TypeScriptNormalizer{}.Normalize(root)
	types := normalized.Types()
	assert.NotContains(t, types, "type_annotation")
	assert.NotContains(t, types, "predefined_type")
	assert.Contains(t, types, "function_declaration")
	assert.Contains(t, types, "return_statement")
	assert.Equal(t, normalized, jsx.TypeScriptNormalizer{}.Normalize(normalized))
}

func TestSyntaxError(t *testing.T) {
	_, err := jsx.NewJavaScriptParser().Parse(context.Background(), []byte("let = ;"))
	assert.Error(t, err)
}
