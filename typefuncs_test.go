package seed

import "testing"

func TestCallTypeFuncTypeForEveryTag(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Null, "null"},
		{BoolVal(true), "bool"},
		{IntVal(1), "int"},
		{StrVal("s"), "str"},
		{NewList(nil), "list"},
		{NewObjectValue(), "object"},
	}
	for _, c := range cases {
		got := callTypeFunc(c.v, "type", nil, Location{})
		if got.AsStr() != c.want {
			t.Errorf("type() of %v = %q, want %q", c.v, got.AsStr(), c.want)
		}
	}
}

func TestCallTypeFuncLenOnStr(t *testing.T) {
	got := callTypeFunc(StrVal("hello"), "len", nil, Location{})
	if got.AsInt() != 5 {
		t.Fatalf("got %v, want 5", got)
	}
}

func TestCallTypeFuncLenOnNonStrFails(t *testing.T) {
	e := mustPanicRt(t, func() {
		callTypeFunc(NewList([]Value{IntVal(1)}), "len", nil, Location{})
	})
	if e.kind != ErrNoSuchTypeFunc {
		t.Fatalf("got kind %v, want ErrNoSuchTypeFunc", e.kind)
	}
}

func TestCallTypeFuncUnknownNameFails(t *testing.T) {
	e := mustPanicRt(t, func() {
		callTypeFunc(IntVal(1), "bogus", nil, Location{})
	})
	if e.kind != ErrNoSuchTypeFunc {
		t.Fatalf("got kind %v, want ErrNoSuchTypeFunc", e.kind)
	}
}

func TestCallTypeFuncArityMismatchFails(t *testing.T) {
	e := mustPanicRt(t, func() {
		callTypeFunc(IntVal(1), "type", []Value{IntVal(1)}, Location{})
	})
	if e.kind != ErrArityMismatch {
		t.Fatalf("got kind %v, want ErrArityMismatch", e.kind)
	}
}
