package jsx

import (
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/viant/astmarkov/source/syntax"
)

const (
	// JavaScript is the canonical JavaScript language name
	JavaScript = "javascript"
	// TypeScript is the canonical TypeScript language name
	TypeScript = "typescript"
)

var (
	// JavaScriptExtensions lists recognised JavaScript file extensions
	JavaScriptExtensions = []string{".js", ".jsx", ".mjs"}
	// TypeScriptExtensions lists recognised TypeScript file extensions
	TypeScriptExtensions = []string{".ts"}
)

// Exclusions lists bookkeeping node types dropped by default: comments and import bindings
var Exclusions = []string{
	"comment",
	"import_statement",
	"import_clause",
	"import_specifier",
	"namespace_import",
}

// NewJavaScriptParser creates a tree-sitter JavaScript (JSX included) parser
func NewJavaScriptParser() *syntax.SitterParser {
	return syntax.NewSitterParser(JavaScript, javascript.GetLanguage())
}

// NewTypeScriptParser creates a tree-sitter TypeScript parser
func NewTypeScriptParser() *syntax.SitterParser {
	return syntax.NewSitterParser(TypeScript, typescript.GetLanguage())
}
