package python

import (
	"github.com/smacker/go-tree-sitter/python"
	"github.com/viant/astmarkov/source/syntax"
)

// Name is the canonical language name
const Name = "python"

// Extensions lists recognised file extensions
var Extensions = []string{".py"}

// Exclusions lists bookkeeping node types dropped by default: comments and import bindings
var Exclusions = []string{
	"comment",
	"import_statement",
	"import_from_statement",
	"future_import_statement",
	"aliased_import",
}

// NewParser creates a tree-sitter backed Python parser
func NewParser() *syntax.SitterParser {
	return syntax.NewSitterParser(Name, python.GetLanguage())
}
