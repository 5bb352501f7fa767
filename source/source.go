package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/astmarkov/source/golang"
	"github.com/viant/astmarkov/source/jsx"
	"github.com/viant/astmarkov/source/python"
	"github.com/viant/astmarkov/source/syntax"
)

// Language describes how snippets of one language are parsed and normalized
type Language struct {
	Name       string
	Extensions []string
	Parser     syntax.Parser
	Normalizer syntax.Normalizer
	// Exclusions lists node types dropped from the lineage by default
	Exclusions []string
}

// Factory resolves languages by name or file extension
type Factory struct {
	languages []*Language
}

// NewFactory creates a factory with the built-in languages
func NewFactory() *Factory {
	return &Factory{
		languages: []*Language{
			{
				Name:       python.Name,
				Extensions: python.Extensions,
				Parser:     python.NewParser(),
				Normalizer: python.Normalizer{},
				Exclusions: python.Exclusions,
			},
			{
				Name:       golang.Name,
				Extensions: golang.Extensions,
				Parser:     golang.NewParser(),
				Normalizer: golang.Normalizer{},
				Exclusions: golang.Exclusions,
			},
			{
				Name:       jsx.JavaScript,
				Extensions: jsx.JavaScriptExtensions,
				Parser:     jsx.NewJavaScriptParser(),
				Normalizer: syntax.Identity,
				Exclusions: jsx.Exclusions,
			},
			{
				Name:       jsx.TypeScript,
				Extensions: jsx.TypeScriptExtensions,
				Parser:     jsx.NewTypeScriptParser(),
				Normalizer: jsx.TypeScriptNormalizer{},
				Exclusions: jsx.Exclusions,
			},
		},
	}
}

// Register adds or replaces a language
func (f *Factory) Register(language *Language) {
	for i, candidate := range f.languages {
		if candidate.Name == language.Name {
			f.languages[i] = language
			return
		}
	}
	f.languages = append(f.languages, language)
}

// Names returns registered language names
func (f *Factory) Names() []string {
	var names []string
	for _, language := range f.languages {
		names = append(names, language.Name)
	}
	return names
}

// Lookup returns the language registered under name ("py" and "golang" aliases accepted)
func (f *Factory) Lookup(name string) (*Language, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "py":
		name = python.Name
	case "golang":
		name = golang.Name
	case "js":
		name = jsx.JavaScript
	case "ts":
		name = jsx.TypeScript
	}
	for _, language := range f.languages {
		if language.Name == name {
			return language, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", syntax.ErrUnsupportedLanguage, name)
}

// ForFile returns the language matching the filename extension
func (f *Factory) ForFile(filename string) (*Language, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, language := range f.languages {
		for _, candidate := range language.Extensions {
			if candidate == ext {
				return language, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: file type %s", syntax.ErrUnsupportedLanguage, ext)
}
