// eval_expr.go — the expression evaluator (E), grounded in the
// original_source eval_expr/apply_binary_operation logic but
// restructured as a typed-AST tree-walker instead of the Rust source's
// RawExpr match. Runtime errors are raised with fail (see
// errors.go) and recovered at the Run/Eval boundary in runtime.go —
// the same panic/recover idiom the teacher uses in interpreter_ops.go,
// kept so every evaluation function can return just a Value instead of
// threading (Value, error) through every recursive call.
package seed

// evalExpr evaluates e for its value, discarding any receiver it
// produces. Used everywhere except the few call sites that specifically
// need the receiver side-channel (CallExpr's Func operand).
func evalExpr(i *Interp, env *Env, e Expr) Value {
	v, _, _ := evalExprRecv(i, env, e)
	return v
}

// evalExprRecv evaluates e and additionally reports the receiver
// attached by the evaluation, per spec rule 4.3.1. Only PropExpr (dot
// form) ever returns hasRecv=true; every other node computes a new
// value and clears the receiver.
func evalExprRecv(i *Interp, env *Env, e Expr) (v Value, recv Value, hasRecv bool) {
	switch n := e.(type) {
	case *NullExpr:
		return Null, Value{}, false
	case *BoolExpr:
		return BoolVal(n.B), Value{}, false
	case *IntExpr:
		return IntVal(n.N), Value{}, false
	case *StrExpr:
		return StrVal(n.S), Value{}, false

	case *VarExpr:
		val, ok := env.Lookup(n.Name)
		if !ok {
			fail(n.Loc, ErrNotDefined, "`%s` is not defined", n.Name)
		}
		return val, Value{}, false

	case *ListExpr:
		return evalListExpr(i, env, n), Value{}, false

	case *ObjectExpr:
		return evalObjectExpr(i, env, n), Value{}, false

	case *FuncExpr:
		return NewClosure(n.Params, n.Collect, n.Body, env), Value{}, false

	case *RangeExpr:
		return evalRange(i, env, n), Value{}, false

	case *BinaryOpExpr:
		return evalBinaryOp(i, env, n), Value{}, false

	case *PropExpr:
		if n.TypeProp {
			// `v->name` only has meaning as the callee of a CallExpr,
			// which intercepts this node before evaluating it (see
			// evalCall); reaching here means it was used standalone.
			fail(n.Loc, ErrTypeMismatch, "type function `%s` must be called", n.Name)
		}
		target := evalExpr(i, env, n.Target)
		if target.Tag == TagNull {
			fail(n.Loc, ErrBadReceiver, "cannot access property `%s` of null", n.Name)
		}
		if target.Tag != TagObject {
			fail(n.Loc, ErrTypeMismatch, "cannot access property `%s` of a %s", n.Name, typeName(target))
		}
		val, ok := target.AsObject().Get(n.Name)
		if !ok {
			fail(n.Loc, ErrKeyMissing, "object has no property `%s`", n.Name)
		}
		return val, target, true

	case *IndexExpr:
		return evalIndex(i, env, n), Value{}, false

	case *RangeIndexExpr:
		return evalRangeIndex(i, env, n), Value{}, false

	case *CallExpr:
		return evalCall(i, env, n), Value{}, false
	}
	fail(e.loc(), ErrTypeMismatch, "unhandled expression node")
	panic("unreachable")
}

func evalListExpr(i *Interp, env *Env, n *ListExpr) Value {
	items := evalListItems(i, env, n.Items)
	return NewList(items)
}

// evalListItems evaluates a list/call argument list, inlining spreads.
func evalListItems(i *Interp, env *Env, items []ListItem) []Value {
	var out []Value
	for _, it := range items {
		v := evalExpr(i, env, it.Value)
		if it.Spread {
			if v.Tag != TagList {
				fail(it.Value.loc(), ErrTypeMismatch, "spread target must be a list, got %s", typeName(v))
			}
			out = append(out, v.AsList().Items...)
			continue
		}
		out = append(out, v)
	}
	return out
}

func evalObjectExpr(i *Interp, env *Env, n *ObjectExpr) Value {
	obj := NewObject()
	for _, item := range n.Items {
		if item.Spread {
			sv := evalExpr(i, env, item.Spreader)
			if sv.Tag != TagObject {
				fail(item.Spreader.loc(), ErrTypeMismatch, "spread target must be an object, got %s", typeName(sv))
			}
			src := sv.AsObject()
			for _, k := range src.Keys {
				obj.Set(k, src.Entries[k])
			}
			continue
		}
		var key string
		if item.NameIsKey {
			key = item.Name
		} else {
			kv := evalExpr(i, env, item.KeyExpr)
			if kv.Tag != TagStr {
				fail(item.KeyExpr.loc(), ErrTypeMismatch, "object key must be a str, got %s", typeName(kv))
			}
			key = kv.AsStr()
		}
		val := evalExpr(i, env, item.Value)
		obj.Set(key, val)
	}
	return Value{Tag: TagObject, Data: obj}
}

func evalRange(i *Interp, env *Env, n *RangeExpr) Value {
	s := evalExpr(i, env, n.Start)
	e := evalExpr(i, env, n.End)
	if s.Tag != TagInt || e.Tag != TagInt {
		fail(n.Loc, ErrTypeMismatch, "range bounds must be ints")
	}
	start, end := s.AsInt(), e.AsInt()
	if start >= end {
		return NewList(nil)
	}
	items := make([]Value, 0, end-start)
	for v := start; v < end; v++ {
		items = append(items, IntVal(v))
	}
	return NewList(items)
}

func evalCall(i *Interp, env *Env, n *CallExpr) Value {
	if prop, ok := n.Func.(*PropExpr); ok && prop.TypeProp {
		target := evalExpr(i, env, prop.Target)
		args := evalListItems(i, env, n.Args)
		return callTypeFunc(target, prop.Name, args, n.Loc)
	}

	fnVal, recv, hasRecv := evalExprRecv(i, env, n.Func)
	if fnVal.Tag != TagFunc {
		fail(n.Loc, ErrTypeMismatch, "cannot call a %s", typeName(fnVal))
	}
	args := evalListItems(i, env, n.Args)
	var this Value
	if hasRecv {
		this = recv
	} else {
		this = Null
	}
	return i.apply(fnVal.AsFunc(), this, hasRecv, args, n.Loc)
}

func evalIndex(i *Interp, env *Env, n *IndexExpr) Value {
	target := evalExpr(i, env, n.Target)
	idx := evalExpr(i, env, n.Index)
	return indexRead(target, idx, n.Loc)
}

func indexRead(target, idx Value, loc Location) Value {
	switch target.Tag {
	case TagList:
		if idx.Tag != TagInt {
			fail(loc, ErrTypeMismatch, "list index must be an int")
		}
		items := target.AsList().Items
		k := idx.AsInt()
		if k < 0 || k >= int64(len(items)) {
			fail(loc, ErrOutOfRange, "list index %d out of range (len %d)", k, len(items))
		}
		return items[k]
	case TagStr:
		if idx.Tag != TagInt {
			fail(loc, ErrTypeMismatch, "str index must be an int")
		}
		s := target.AsStr()
		k := idx.AsInt()
		if k < 0 || k >= int64(len(s)) {
			fail(loc, ErrOutOfRange, "str index %d out of range (len %d)", k, len(s))
		}
		return StrVal(string(s[k]))
	case TagObject:
		if idx.Tag != TagStr {
			fail(loc, ErrTypeMismatch, "object key must be a str")
		}
		v, ok := target.AsObject().Get(idx.AsStr())
		if !ok {
			fail(loc, ErrKeyMissing, "object has no key %q", idx.AsStr())
		}
		return v
	}
	fail(loc, ErrTypeMismatch, "cannot index a %s", typeName(target))
	panic("unreachable")
}

func evalRangeIndex(i *Interp, env *Env, n *RangeIndexExpr) Value {
	target := evalExpr(i, env, n.Target)
	return rangeIndexRead(i, env, target, n.Start, n.End, n.Loc)
}

func rangeIndexRead(i *Interp, env *Env, target Value, startE, endE Expr, loc Location) Value {
	length := sliceableLen(target, loc)
	start, end := int64(0), length
	if startE != nil {
		sv := evalExpr(i, env, startE)
		if sv.Tag != TagInt {
			fail(loc, ErrTypeMismatch, "slice bound must be an int")
		}
		start = sv.AsInt()
	}
	if endE != nil {
		ev := evalExpr(i, env, endE)
		if ev.Tag != TagInt {
			fail(loc, ErrTypeMismatch, "slice bound must be an int")
		}
		end = ev.AsInt()
	}
	if start < 0 || end < start || end > length {
		fail(loc, ErrOutOfRange, "slice [%d:%d] out of range (len %d)", start, end, length)
	}
	switch target.Tag {
	case TagList:
		src := target.AsList().Items
		out := make([]Value, end-start)
		copy(out, src[start:end])
		return NewList(out)
	case TagStr:
		return StrVal(target.AsStr()[start:end])
	}
	panic("unreachable")
}

func sliceableLen(v Value, loc Location) int64 {
	switch v.Tag {
	case TagList:
		return int64(len(v.AsList().Items))
	case TagStr:
		return int64(len(v.AsStr()))
	}
	fail(loc, ErrTypeMismatch, "cannot slice a %s", typeName(v))
	panic("unreachable")
}

func evalBinaryOp(i *Interp, env *Env, n *BinaryOpExpr) Value {
	switch n.Op {
	case OpAnd:
		l := evalExpr(i, env, n.Lhs)
		if l.Tag != TagBool {
			fail(n.OpLoc, ErrTypeMismatch, "`&&` requires bool operands")
		}
		if !l.AsBool() {
			return BoolVal(false)
		}
		r := evalExpr(i, env, n.Rhs)
		if r.Tag != TagBool {
			fail(n.OpLoc, ErrTypeMismatch, "`&&` requires bool operands")
		}
		return r
	case OpOr:
		l := evalExpr(i, env, n.Lhs)
		if l.Tag != TagBool {
			fail(n.OpLoc, ErrTypeMismatch, "`||` requires bool operands")
		}
		if l.AsBool() {
			return BoolVal(true)
		}
		r := evalExpr(i, env, n.Rhs)
		if r.Tag != TagBool {
			fail(n.OpLoc, ErrTypeMismatch, "`||` requires bool operands")
		}
		return r
	}

	l := evalExpr(i, env, n.Lhs)
	r := evalExpr(i, env, n.Rhs)
	return applyBinaryOp(n.Op, l, r, n.OpLoc)
}

// applyBinaryOp implements the non-short-circuit operators; shared by
// BinaryOpExpr and OpAssignStmt so `+=` etc. go through identical rules.
func applyBinaryOp(op BinaryOp, l, r Value, loc Location) Value {
	switch op {
	case OpEq:
		return BoolVal(structEq(l, r))
	case OpNe:
		return BoolVal(!structEq(l, r))
	case OpRefEq:
		return BoolVal(refEq(l, r))
	case OpAdd:
		switch {
		case l.Tag == TagInt && r.Tag == TagInt:
			a, b := l.AsInt(), r.AsInt()
			sum := a + b
			if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
				fail(loc, ErrOutOfRange, "`+` overflowed a 64-bit int")
			}
			return IntVal(sum)
		case l.Tag == TagStr && r.Tag == TagStr:
			return StrVal(l.AsStr() + r.AsStr())
		case l.Tag == TagList && r.Tag == TagList:
			out := make([]Value, 0, len(l.AsList().Items)+len(r.AsList().Items))
			out = append(out, l.AsList().Items...)
			out = append(out, r.AsList().Items...)
			return NewList(out)
		}
		fail(loc, ErrTypeMismatch, "`+` not defined for %s and %s", typeName(l), typeName(r))
	case OpSub, OpMul, OpDiv, OpMod:
		if l.Tag != TagInt || r.Tag != TagInt {
			fail(loc, ErrTypeMismatch, "arithmetic requires int operands, got %s and %s", typeName(l), typeName(r))
		}
		a, b := l.AsInt(), r.AsInt()
		switch op {
		case OpSub:
			return IntVal(a - b)
		case OpMul:
			return IntVal(a * b)
		case OpDiv:
			if b == 0 {
				fail(loc, ErrDivideByZero, "division by zero")
			}
			return IntVal(a / b)
		case OpMod:
			if b == 0 {
				fail(loc, ErrDivideByZero, "modulus by zero")
			}
			return IntVal(a % b)
		}
	case OpLt, OpLte, OpGt, OpGte:
		return compareOrdering(op, l, r, loc)
	}
	fail(loc, ErrTypeMismatch, "unsupported operator")
	panic("unreachable")
}

func compareOrdering(op BinaryOp, l, r Value, loc Location) Value {
	var cmp int
	switch {
	case l.Tag == TagInt && r.Tag == TagInt:
		a, b := l.AsInt(), r.AsInt()
		switch {
		case a < b:
			cmp = -1
		case a > b:
			cmp = 1
		}
	case l.Tag == TagStr && r.Tag == TagStr:
		a, b := l.AsStr(), r.AsStr()
		switch {
		case a < b:
			cmp = -1
		case a > b:
			cmp = 1
		}
	default:
		fail(loc, ErrTypeMismatch, "ordering not defined for %s and %s", typeName(l), typeName(r))
	}
	switch op {
	case OpLt:
		return BoolVal(cmp < 0)
	case OpLte:
		return BoolVal(cmp <= 0)
	case OpGt:
		return BoolVal(cmp > 0)
	case OpGte:
		return BoolVal(cmp >= 0)
	}
	panic("unreachable")
}
