package lineage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/astmarkov/lineage"
	"github.com/viant/astmarkov/source/syntax"
)

func TestAnnotate(t *testing.T) {
	var testCases = []struct {
		description string
		tree        *syntax.Node
		exclude     []string
		expectTypes []string
		expectRoot  bool
	}{
		{
			description: "pre-order ids",
			tree: syntax.NewNode("module",
				syntax.NewNode("assignment", syntax.NewNode("name"), syntax.NewNode("constant")),
			),
			expectTypes: []string{"module", "assignment", "name", "constant"},
			expectRoot:  true,
		},
		{
			description: "excluded subtree",
			tree: syntax.NewNode("module",
				syntax.NewNode("assignment",
					syntax.NewNode("name", syntax.NewNode("Store")),
					syntax.NewNode("constant"),
				),
			),
			exclude:     []string{"Store", "name"},
			expectTypes: []string{"module", "assignment", "constant"},
			expectRoot:  true,
		},
		{
			description: "excluded root",
			tree:        syntax.NewNode("comment", syntax.NewNode("text")),
			exclude:     []string{"comment"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := lineage.Annotate(testCase.tree, testCase.exclude...)
			require.NoError(t, err)
			var types []string
			for i, record := range actual.Records {
				assert.Equal(t, lineage.ID(i), record.ID)
				types = append(types, record.Type)
			}
			assert.Equal(t, testCase.expectTypes, types)
			root, ok := actual.Root()
			assert.Equal(t, testCase.expectRoot, ok)
			if ok {
				assert.Empty(t, actual.Record(root).Attachments)
			}
		})
	}
}

func TestAnnotate_Parents(t *testing.T) {
	constant := syntax.NewNode("constant")
	name := syntax.NewNode("name")
	assignment := syntax.NewNode("assignment", name, constant)
	root := syntax.NewNode("module", assignment)

	actual, err := lineage.Annotate(root)
	require.NoError(t, err)

	assignmentID, ok := actual.Lookup(assignment)
	require.True(t, ok)
	constantID, ok := actual.Lookup(constant)
	require.True(t, ok)
	assert.Equal(t, []lineage.ID{assignmentID}, actual.Record(constantID).Parents())
	assert.Equal(t, 4, actual.Len())
	assert.Nil(t, actual.Record(42))
}

func TestAnnotate_SharedNode(t *testing.T) {
	shared := syntax.NewNode("constant")
	left := syntax.NewNode("left", shared)
	right := syntax.NewNode("right", shared, shared)
	root := syntax.NewNode("module", left, right)

	actual, err := lineage.Annotate(root)
	require.NoError(t, err)
	assert.Equal(t, 4, actual.Len(), "a revisited node keeps its id")

	sharedID, _ := actual.Lookup(shared)
	leftID, _ := actual.Lookup(left)
	rightID, _ := actual.Lookup(right)
	record := actual.Record(sharedID)
	require.Len(t, record.Attachments, 3)
	assert.Equal(t, []lineage.ID{leftID, rightID}, record.Parents())

	for i := 1; i < len(record.Attachments); i++ {
		assert.Less(t, record.Attachments[i-1].Order, record.Attachments[i].Order)
	}
}

func TestAnnotate_Cycle(t *testing.T) {
	loop := syntax.NewNode("block")
	loop.Children = []*syntax.Node{syntax.NewNode("statement", loop)}
	_, err := lineage.Annotate(syntax.NewNode("module", loop))
	assert.ErrorIs(t, err, lineage.ErrCycle)
}

func TestAnnotate_InputUntouched(t *testing.T) {
	root := syntax.NewNode("module", syntax.NewNode("comment"), syntax.NewNode("expression"))
	before := root.Types()
	_, err := lineage.Annotate(root, "comment")
	require.NoError(t, err)
	assert.Equal(t, before, root.Types())
}
