// destructure.go — shared destructuring logic (D), used by DeclareStmt/
// AssignStmt when the l-value is a pattern (ListExpr/ObjectExpr reused
// as a pattern shape, per ast.go) and by ForStmt's loop-variable
// pattern. `_` is the discard identifier: it matches anything and binds
// nothing.
package seed

// bindPattern binds value against pattern. declare selects Declare
// (`:=`, always succeeds in the current frame) vs. Assign (`=`, walks
// outward, fails if a name is undefined).
func bindPattern(i *Interp, env *Env, pattern Expr, value Value, declare bool) {
	switch p := pattern.(type) {
	case *VarExpr:
		if p.Name == "_" {
			return
		}
		if declare {
			env.Declare(p.Name, value)
		} else {
			if !env.Assign(p.Name, value) {
				fail(p.Loc, ErrNotDefined, "`%s` is not defined", p.Name)
			}
		}

	case *ListExpr:
		bindListPattern(i, env, p, value, declare)

	case *ObjectExpr:
		bindObjectPattern(i, env, p, value, declare)

	default:
		// Any other assignable expression (Prop/Index/RangeIndex) used
		// as a pattern: only legal in assign mode, written through its
		// place like an ordinary assignment target.
		if declare {
			fail(pattern.loc(), ErrTypeMismatch, "invalid declaration target")
		}
		evalPlace(i, env, pattern).Set(value)
	}
}

func bindListPattern(i *Interp, env *Env, p *ListExpr, value Value, declare bool) {
	if value.Tag != TagList {
		fail(p.Loc, ErrTypeMismatch, "cannot destructure a %s as a list", typeName(value))
	}
	items := value.AsList().Items
	k := len(p.Items)
	if len(items) < k {
		fail(p.Loc, ErrArityMismatch, "list pattern expects at least %d elements, got %d", k, len(items))
	}
	for idx, item := range p.Items {
		bindPattern(i, env, item.Value, items[idx], declare)
	}
	if p.Collect != "" {
		rest := make([]Value, len(items)-k)
		copy(rest, items[k:])
		bindName(env, p.Collect, NewList(rest), declare, p.Loc)
	}
}

func bindObjectPattern(i *Interp, env *Env, p *ObjectExpr, value Value, declare bool) {
	if value.Tag != TagObject {
		fail(p.Loc, ErrTypeMismatch, "cannot destructure a %s as an object", typeName(value))
	}
	src := value.AsObject()
	matched := make(map[string]bool, len(p.Items))
	for _, item := range p.Items {
		key := item.Name
		v, ok := src.Get(key)
		if !ok {
			fail(p.Loc, ErrKeyMissing, "object has no key %q", key)
		}
		matched[key] = true
		sub := item.Value
		if sub == nil {
			sub = &VarExpr{Loc: p.Loc, Name: key}
		}
		bindPattern(i, env, sub, v, declare)
	}
	if p.Collect != "" {
		rest := NewObject()
		for _, k := range src.Keys {
			if !matched[k] {
				rest.Set(k, src.Entries[k])
			}
		}
		bindName(env, p.Collect, Value{Tag: TagObject, Data: rest}, declare, p.Loc)
	}
}

func bindName(env *Env, name string, v Value, declare bool, loc Location) {
	if name == "_" {
		return
	}
	if declare {
		env.Declare(name, v)
		return
	}
	if !env.Assign(name, v) {
		fail(loc, ErrNotDefined, "`%s` is not defined", name)
	}
}
