// interp.go — the interpreter handle threaded through evaluation, and
// function application (closures and native builtins), grounded on the
// teacher's Interpreter{Global,...} shape and its Apply/Call0 call path
// in interpreter.go, adapted from a bytecode VM dispatch to direct
// execution of FuncExpr/FuncDeclStmt bodies via execStmts.
package seed

import "io"

// Interp owns the state shared across one program run: the global
// frame and the writer `print` writes to.
type Interp struct {
	Global *Env
	Stdout io.Writer
}

func NewInterp(stdout io.Writer) *Interp {
	i := &Interp{Global: NewGlobalEnv(), Stdout: stdout}
	i.registerBuiltins()
	return i
}

// apply invokes fn with the given bound receiver and evaluated
// arguments. thisOK distinguishes "no receiver attached" from "receiver
// attached and happens to be Null" only for documentation purposes —
// both leave `this` bound to Null inside the body, per spec rule
// 4.3.1(4).
func (i *Interp) apply(fn *funcData, this Value, thisOK bool, args []Value, loc Location) Value {
	if fn.Native != nil {
		return fn.Native(i, this, thisOK, args, loc)
	}

	frame := fn.Env.PushChild()
	frame.Declare("this", this)

	if fn.Collect != "" {
		if len(args) < len(fn.Params) {
			fail(loc, ErrArityMismatch, "function expects at least %d arguments, got %d", len(fn.Params), len(args))
		}
		for idx, p := range fn.Params {
			frame.Declare(p, args[idx])
		}
		rest := make([]Value, len(args)-len(fn.Params))
		copy(rest, args[len(fn.Params):])
		frame.Declare(fn.Collect, NewList(rest))
	} else {
		if len(args) != len(fn.Params) {
			fail(loc, ErrArityMismatch, "function expects %d arguments, got %d", len(fn.Params), len(args))
		}
		for idx, p := range fn.Params {
			frame.Declare(p, args[idx])
		}
	}

	esc := execStmts(i, frame, fn.Body)
	switch esc.Kind {
	case EscReturn:
		return esc.Value
	case EscBreak, EscContinue:
		fail(loc, ErrBadControlFlow, "break/continue outside of a loop")
	}
	return Null
}

// Call0 invokes a Func value with no bound receiver; used by native
// builtins that accept callback functions.
func (i *Interp) Call0(fn Value, args []Value, loc Location) Value {
	if fn.Tag != TagFunc {
		fail(loc, ErrTypeMismatch, "cannot call a %s", typeName(fn))
	}
	return i.apply(fn.AsFunc(), Null, false, args, loc)
}
