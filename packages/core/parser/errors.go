package parser

import (
	"fmt"
	"strings"
)

// ParseError describes why a quest file could not be loaded.
type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string
	// Details holds one line per schema violation.
	Details []string
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	switch {
	case e.File != "" && e.Line > 0:
		fmt.Fprintf(&b, "%s:%d:%d: ", e.File, e.Line, e.Column)
	case e.File != "":
		fmt.Fprintf(&b, "%s: ", e.File)
	case e.Line > 0:
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Message)
	for _, d := range e.Details {
		b.WriteString("\n  - ")
		b.WriteString(d)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
