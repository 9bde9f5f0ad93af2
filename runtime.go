// runtime.go — the runtime driver (R): owns the global frame, registers
// builtins, parses and executes a program, and turns parse/lex/runtime
// failures into located diagnostics. The panic/recover boundary here is
// the same shape as the teacher's LoadPrelude in runtime.go: a deferred
// recover distinguishes an internal *rtErr from an unexpected panic and
// converts the former into an ordinary Go error.
package seed

import (
	"bytes"
	"fmt"
)

// registerBuiltins installs the only builtin the spec's core scope
// names: print(value) — writes its canonical form followed by a
// newline, and returns Null.
func (i *Interp) registerBuiltins() {
	i.Global.Declare("print", NewNativeFunc("print", builtinPrint))
}

func builtinPrint(i *Interp, this Value, thisOK bool, args []Value, loc Location) Value {
	if len(args) != 1 {
		fail(loc, ErrArityMismatch, "print() takes 1 argument, got %d", len(args))
	}
	fmt.Fprintln(i.Stdout, CanonicalString(args[0]))
	return Null
}

// Run parses and executes src against a fresh interpreter, returning
// everything written to stdout and the first error encountered (a
// *LexError/*ParseError/*RuntimeError wrapped with a caret snippet via
// WrapErrorWithSource), if any.
func Run(src string) (string, error) {
	var buf bytes.Buffer
	i := NewInterp(&buf)
	err := i.RunProgram(src)
	return buf.String(), err
}

// RunProgram parses and executes src against i's own Stdout, leaving
// i's global frame populated with whatever top-level declarations the
// program made — used by the REPL to persist state across inputs.
func (i *Interp) RunProgram(src string) error {
	prog, err := ParseProgram(src)
	if err != nil {
		return WrapErrorWithSource(err, src)
	}
	if rerr := i.execProgram(prog); rerr != nil {
		return WrapErrorWithSource(rerr, src)
	}
	return nil
}

// execProgram runs prog's top-level statements directly in the global
// frame (no extra block frame — the global frame IS the top-level
// frame, per spec §3.2) and recovers any runtime-error panic into a
// *RuntimeError.
func (i *Interp) execProgram(prog Block) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *rtErr:
				err = &RuntimeError{Line: e.line, Col: e.col, Kind: e.kind, Msg: e.msg}
			default:
				panic(r)
			}
		}
	}()
	esc := execStmts(i, i.Global, prog)
	switch esc.Kind {
	case EscBreak, EscContinue:
		return &RuntimeError{Kind: ErrBadControlFlow, Msg: "break/continue outside of a loop"}
	case EscReturn:
		return &RuntimeError{Kind: ErrBadControlFlow, Msg: "return outside of a function"}
	}
	return nil
}
