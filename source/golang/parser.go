package golang

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"strings"

	"github.com/viant/astmarkov/source/syntax"
	"golang.org/x/tools/go/ast/astutil"
)

// Name is the canonical language name
const Name = "go"

// Extensions lists recognised file extensions
var Extensions = []string{".go"}

// Exclusions lists bookkeeping node types dropped by default: comments and import specs
var Exclusions = []string{"Comment", "CommentGroup", "ImportSpec"}

const defaultFilename = "snippet.go"

// snippetPackage is prepended on the first line of snippets without a package clause,
// so line numbers stay intact
const snippetPackage = "package snippet;"

// Parser parses Go source with go/parser
type Parser struct{}

// NewParser creates a Go parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a Go file; sources missing a package clause are parsed as a snippet package
func (p *Parser) Parse(ctx context.Context, src []byte) (*syntax.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	shift := 0
	if !hasPackageClause(src) {
		src = append([]byte(snippetPackage), src...)
		shift = len(snippetPackage)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, defaultFilename, src, parser.ParseComments)
	if err != nil {
		return nil, syntaxError(err, shift)
	}
	return convert(fset, file, shift), nil
}

func hasPackageClause(src []byte) bool {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, defaultFilename, src, parser.PackageClauseOnly)
	return err == nil && file.Name != nil
}

func syntaxError(err error, shift int) error {
	ret := &syntax.SyntaxError{Language: Name, Err: err, Position: syntax.Point{Line: 1, Column: 1}}
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		ret.Message = list[0].Msg
		ret.Position = point(list[0].Pos, shift)
	}
	return ret
}

// convert mirrors the go/ast tree as syntax nodes; the field name comes from the cursor
func convert(fset *token.FileSet, file *ast.File, shift int) *syntax.Node {
	var root *syntax.Node
	var stack []*syntax.Node
	pre := func(c *astutil.Cursor) bool {
		n := c.Node()
		if n == nil {
			return false
		}
		node := &syntax.Node{Type: typeName(n), Span: span(fset, n, shift)}
		if len(stack) == 0 {
			root = node
		} else {
			node.Field = c.Name()
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
		return true
	}
	post := func(c *astutil.Cursor) bool {
		stack = stack[:len(stack)-1]
		return true
	}
	astutil.Apply(file, pre, post)
	return root
}

func typeName(n ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

func span(fset *token.FileSet, n ast.Node, shift int) syntax.Span {
	start := fset.Position(n.Pos())
	end := fset.Position(n.End())
	return syntax.Span{
		StartByte: offset(start, shift),
		EndByte:   offset(end, shift),
		Start:     point(start, shift),
		End:       point(end, shift),
	}
}

func offset(pos token.Position, shift int) int {
	if pos.Offset < shift {
		return 0
	}
	return pos.Offset - shift
}

func point(pos token.Position, shift int) syntax.Point {
	ret := syntax.Point{Line: pos.Line, Column: pos.Column}
	if pos.Line == 1 && shift > 0 {
		ret.Column -= shift
		if ret.Column < 1 {
			ret.Column = 1
		}
	}
	return ret
}
