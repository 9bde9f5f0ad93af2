// typefuncs.go — the type-function dispatch table (T): `v->name(args)`
// looks up name in a static table keyed on v's dynamic type tag. This
// is deliberately a plain Go switch rather than a map-of-closures: the
// table is tiny and fixed (spec §4.5 names exactly `type` for every
// type and `len` for Str), so a switch reads as the whole table at a
// glance, the way the teacher's small dispatch tables in printer.go do.
package seed

func callTypeFunc(target Value, name string, args []Value, loc Location) Value {
	switch name {
	case "type":
		if len(args) != 0 {
			fail(loc, ErrArityMismatch, "type() takes no arguments")
		}
		return StrVal(typeName(target))

	case "len":
		if target.Tag != TagStr {
			fail(loc, ErrNoSuchTypeFunc, "no such type function `len` for %s", typeName(target))
		}
		if len(args) != 0 {
			fail(loc, ErrArityMismatch, "len() takes no arguments")
		}
		return IntVal(int64(len(target.AsStr())))
	}
	fail(loc, ErrNoSuchTypeFunc, "no such type function `%s` for %s", name, typeName(target))
	panic("unreachable")
}
