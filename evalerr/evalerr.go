/*
File    : shark/evalerr/evalerr.go

Package evalerr implements Shark's runtime error taxonomy (spec.md §7).
This is a standard-library-only component by design: no third-party
error-wrapping library (pkg/errors, cockroachdb/errors, etc.) appears
anywhere in the retrieved example pack for this kind of small, closed
error taxonomy — where they do show up, it's as transitive dependencies
of unrelated SDKs several repos away from an interpreter's error model,
not as something any lexer/parser/evaluator repo in the pack reaches
for. See DESIGN.md.
*/
package evalerr

import "fmt"

// Kind identifies one of spec.md §7's error categories.
type Kind string

const (
	LexError       Kind = "LexError"
	ParseError     Kind = "ParseError"
	NameError      Kind = "NameError"
	TypeError      Kind = "TypeError"
	ArityError     Kind = "ArityError"
	ShapeMismatch  Kind = "ShapeMismatch"
	DivisionByZero Kind = "DivisionByZero"
	EmptyReduction Kind = "EmptyReduction"
	IndexError     Kind = "IndexError"
)

// Error is a single runtime error: a kind, a human-readable message,
// and the source line it occurred on.
type Error struct {
	Kind    Kind
	Message string
	Line    int
}

// Error renders spec.md §7's exact user-visible format:
// "<ErrorKind>: <message> (line <N>)".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Message, e.Line)
}

// New constructs an *Error with a formatted message.
func New(kind Kind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line}
}
