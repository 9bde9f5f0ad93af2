// place.go — l-value places (the part of E that handles Assign/
// OpAssign/destructuring targets), grounded on spec §4.3's four place
// kinds: Var, Index, RangeSlice, Prop. evalPlace computes the place
// exactly once; callers read/write through it so that, e.g.,
// `person.age += 1` evaluates `person` only once.
package seed

// Place is an l-value: something Assign/OpAssign can read from and
// write back to without re-evaluating the expression that produced it.
type Place interface {
	Get() Value
	Set(v Value)
}

type varPlace struct {
	env  *Env
	name string
	loc  Location
}

func (p *varPlace) Get() Value {
	v, ok := p.env.Lookup(p.name)
	if !ok {
		fail(p.loc, ErrNotDefined, "`%s` is not defined", p.name)
	}
	return v
}

func (p *varPlace) Set(v Value) {
	if !p.env.Assign(p.name, v) {
		fail(p.loc, ErrNotDefined, "`%s` is not defined", p.name)
	}
}

type propPlace struct {
	obj  *objectData
	name string
}

func (p *propPlace) Get() Value {
	v, ok := p.obj.Get(p.name)
	if !ok {
		return Null
	}
	return v
}

func (p *propPlace) Set(v Value) { p.obj.Set(p.name, v) }

type listIndexPlace struct {
	list *listData
	idx  int64
	loc  Location
}

func (p *listIndexPlace) Get() Value {
	if p.idx < 0 || p.idx >= int64(len(p.list.Items)) {
		fail(p.loc, ErrOutOfRange, "list index %d out of range (len %d)", p.idx, len(p.list.Items))
	}
	return p.list.Items[p.idx]
}

func (p *listIndexPlace) Set(v Value) {
	if p.idx < 0 || p.idx >= int64(len(p.list.Items)) {
		fail(p.loc, ErrOutOfRange, "list index %d out of range (len %d)", p.idx, len(p.list.Items))
	}
	p.list.Items[p.idx] = v
}

type objectIndexPlace struct {
	obj *objectData
	key string
}

func (p *objectIndexPlace) Get() Value {
	v, ok := p.obj.Get(p.key)
	if !ok {
		return Null
	}
	return v
}

func (p *objectIndexPlace) Set(v Value) { p.obj.Set(p.key, v) }

type listRangePlace struct {
	list       *listData
	start, end int64
	loc        Location
}

func (p *listRangePlace) Get() Value {
	out := make([]Value, p.end-p.start)
	copy(out, p.list.Items[p.start:p.end])
	return NewList(out)
}

func (p *listRangePlace) Set(v Value) {
	var repl []Value
	switch v.Tag {
	case TagList:
		repl = v.AsList().Items
	case TagStr:
		s := v.AsStr()
		repl = make([]Value, len(s))
		for i := 0; i < len(s); i++ {
			repl[i] = StrVal(string(s[i]))
		}
	default:
		fail(p.loc, ErrTypeMismatch, "slice assignment requires a list or str, got %s", typeName(v))
	}
	items := p.list.Items
	out := make([]Value, 0, int64(len(items))-(p.end-p.start)+int64(len(repl)))
	out = append(out, items[:p.start]...)
	out = append(out, repl...)
	out = append(out, items[p.end:]...)
	p.list.Items = out
}

// evalPlace computes the l-value place an assignable expression refers
// to. It is used by AssignStmt/OpAssignStmt and by destructuring
// (destructure.go) for non-declare (`=`) patterns.
func evalPlace(i *Interp, env *Env, e Expr) Place {
	switch n := e.(type) {
	case *VarExpr:
		return &varPlace{env: env, name: n.Name, loc: n.Loc}

	case *PropExpr:
		if n.TypeProp {
			fail(n.Loc, ErrTypeMismatch, "cannot assign through `->`")
		}
		target := evalExpr(i, env, n.Target)
		if target.Tag == TagNull {
			fail(n.Loc, ErrBadReceiver, "cannot access property `%s` of null", n.Name)
		}
		if target.Tag != TagObject {
			fail(n.Loc, ErrTypeMismatch, "cannot access property `%s` of a %s", n.Name, typeName(target))
		}
		return &propPlace{obj: target.AsObject(), name: n.Name}

	case *IndexExpr:
		target := evalExpr(i, env, n.Target)
		idx := evalExpr(i, env, n.Index)
		switch target.Tag {
		case TagList:
			if idx.Tag != TagInt {
				fail(n.Loc, ErrTypeMismatch, "list index must be an int")
			}
			return &listIndexPlace{list: target.AsList(), idx: idx.AsInt(), loc: n.Loc}
		case TagObject:
			if idx.Tag != TagStr {
				fail(n.Loc, ErrTypeMismatch, "object key must be a str")
			}
			return &objectIndexPlace{obj: target.AsObject(), key: idx.AsStr()}
		}
		fail(n.Loc, ErrTypeMismatch, "cannot assign through an index on a %s", typeName(target))

	case *RangeIndexExpr:
		target := evalExpr(i, env, n.Target)
		if target.Tag != TagList {
			fail(n.Loc, ErrTypeMismatch, "slice assignment target must be a list, got %s", typeName(target))
		}
		length := int64(len(target.AsList().Items))
		start, end := int64(0), length
		if n.Start != nil {
			sv := evalExpr(i, env, n.Start)
			if sv.Tag != TagInt {
				fail(n.Loc, ErrTypeMismatch, "slice bound must be an int")
			}
			start = sv.AsInt()
		}
		if n.End != nil {
			ev := evalExpr(i, env, n.End)
			if ev.Tag != TagInt {
				fail(n.Loc, ErrTypeMismatch, "slice bound must be an int")
			}
			end = ev.AsInt()
		}
		if start < 0 || end < start || end > length {
			fail(n.Loc, ErrOutOfRange, "slice [%d:%d] out of range (len %d)", start, end, length)
		}
		return &listRangePlace{list: target.AsList(), start: start, end: end, loc: n.Loc}
	}
	fail(e.loc(), ErrTypeMismatch, "expression is not assignable")
	panic("unreachable")
}
