// errors.go — user-facing error wrapping and caret-snippet rendering,
// adapted from the teacher's errors.go. WrapErrorWithSource recognizes
// *LexError, *ParseError and *RuntimeError and renders each as a
// Python-style snippet with a caret under the offending column:
//
//	RUNTIME ERROR at 3:6: `foo` is not defined
//
//	   2 | x := 1;
//	   3 | y := foo + 1;
//	     |      ^
//	   4 | print(x);
//
// Internally, runtime errors are raised by panicking with an *rtErr
// (see fail below) and recovered by execProgram in runtime.go, which
// converts the panic into a *RuntimeError; RunProgram then passes it
// through WrapErrorWithSource.
package seed

import (
	"fmt"
	"strings"
)

// LexError is produced by the lexer; Col is already 1-based, matching
// the token column convention used throughout the lexer and parser.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// ParseError is produced by the parser; Col is 1-based like LexError.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// RuntimeErrorKind names the taxonomy of errors the evaluator can raise.
type RuntimeErrorKind int

const (
	ErrNotDefined RuntimeErrorKind = iota
	ErrTypeMismatch
	ErrOutOfRange
	ErrKeyMissing
	ErrArityMismatch
	ErrBadControlFlow
	ErrDivideByZero
	ErrBadReceiver
	ErrNoSuchTypeFunc
)

// RuntimeError is a fully-located, 1-based runtime error.
type RuntimeError struct {
	Line int
	Col  int
	Kind RuntimeErrorKind
	Msg  string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// rtErr is the internal panic payload raised by fail and
// recovered at the Run/Eval boundary (see runtime.go). It carries the
// same fields as RuntimeError but stays unexported so it can never
// leak out of this module as a Go error value.
type rtErr struct {
	line int
	col  int
	kind RuntimeErrorKind
	msg  string
}

func (e *rtErr) Error() string { return e.msg }

// fail raises a runtime error at loc with the given kind and formatted
// message, unwinding the Go call stack via panic until it is recovered
// at the interpreter boundary. Runtime errors are not represented as
// ordinary Go error returns because they must unwind through arbitrarily
// deep expression evaluation (including across native function calls)
// without every intermediate frame threading an error return.
func fail(loc Location, kind RuntimeErrorKind, format string, args ...any) {
	panic(&rtErr{line: loc.Line, col: loc.Col, kind: kind, msg: fmt.Sprintf(format, args...)})
}

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of src. It recognizes *LexError, *ParseError and *RuntimeError;
// any other error is returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", prettyErrorString(src, "LEXICAL ERROR", e.Line, e.Col, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettyErrorString(src, "PARSE ERROR", e.Line, e.Col, e.Msg))
	case *RuntimeError:
		return fmt.Errorf("%s", prettyErrorString(src, "RUNTIME ERROR", e.Line, e.Col, e.Msg))
	default:
		return err
	}
}

func prettyErrorString(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
