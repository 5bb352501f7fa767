package syntax

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLanguage is returned when no parser is registered for a language or extension
var ErrUnsupportedLanguage = errors.New("unsupported language")

// SyntaxError reports a snippet that failed to parse
type SyntaxError struct {
	Language string
	Position Point
	Message  string
	Err      error
}

func (e *SyntaxError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s: syntax error at %d:%d: %s", e.Language, e.Position.Line, e.Position.Column, msg)
}

// Unwrap returns the underlying parser error
func (e *SyntaxError) Unwrap() error {
	return e.Err
}
