package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/astmarkov/source"
	"github.com/viant/astmarkov/source/syntax"
)

func TestFactory_Lookup(t *testing.T) {
	var testCases = []struct {
		description string
		name        string
		expect      string
		expectErr   bool
	}{
		{description: "python", name: "python", expect: "python"},
		{description: "python alias", name: "py", expect: "python"},
		{description: "go alias", name: "Golang", expect: "go"},
		{description: "javascript alias", name: "js", expect: "javascript"},
		{description: "typescript alias", name: " ts ", expect: "typescript"},
		{description: "unsupported", name: "cobol", expectErr: true},
	}

	factory := source.NewFactory()
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			language, err := factory.Lookup(testCase.name)
			if testCase.expectErr {
				assert.ErrorIs(t, err, syntax.ErrUnsupportedLanguage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expect, language.Name)
			assert.NotNil(t, language.Parser)
			assert.NotNil(t, language.Normalizer)
		})
	}
}

func TestFactory_ForFile(t *testing.T) {
	factory := source.NewFactory()
	language, err := factory.ForFile("/tmp/task/solution.PY")
	assert.NoError(t, err)
	assert.Equal(t, "python", language.Name)

	language, err = factory.ForFile("component.jsx")
	assert.NoError(t, err)
	assert.Equal(t, "javascript", language.Name)

	_, err = factory.ForFile("notes.txt")
	assert.ErrorIs(t, err, syntax.ErrUnsupportedLanguage)
}

func TestFactory_Register(t *testing.T) {
	factory := source.NewFactory()
	factory.Register(&source.Language{Name: "python", Normalizer: syntax.Identity})
	assert.Equal(t, []string{"python", "go", "javascript", "typescript"}, factory.Names())

	language, err := factory.Lookup("python")
	assert.NoError(t, err)
	assert.Nil(t, language.Parser)
}
