package seed

import (
	"strings"
	"testing"
)

func mustRun(t *testing.T, src string) string {
	t.Helper()
	out, err := Run(src)
	if err != nil {
		t.Fatalf("unexpected error: %v\n--- source ---\n%s", err, src)
	}
	return out
}

func mustFail(t *testing.T, src string) error {
	t.Helper()
	_, err := Run(src)
	if err == nil {
		t.Fatalf("expected an error, got none\n--- source ---\n%s", src)
	}
	return err
}

// mustFailKind runs src and returns the unwrapped *RuntimeError so tests
// can assert on Kind rather than on the rendered diagnostic text.
func mustFailKind(t *testing.T, src string) *RuntimeError {
	t.Helper()
	prog, err := ParseProgram(src)
	if err != nil {
		t.Fatalf("unexpected parse error: %v\n--- source ---\n%s", err, src)
	}
	i := NewInterp(&strings.Builder{})
	rerr := i.execProgram(prog)
	if rerr == nil {
		t.Fatalf("expected a runtime error, got none\n--- source ---\n%s", src)
	}
	re, ok := rerr.(*RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T (%v)", rerr, rerr)
	}
	return re
}

func TestShadowLawBlockScopedDeclareDoesNotLeak(t *testing.T) {
	src := `
x := 1;
if true {
	x := 2;
	print(x);
}
print(x);
`
	got := mustRun(t, src)
	want := "2\n1\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReferenceLawSharedListMutation(t *testing.T) {
	src := `
a := [1, 2, 3];
b := a;
b[0] = 99;
print(a[0]);
`
	got := mustRun(t, src)
	if got != "99\n" {
		t.Fatalf("got %q, want mutation visible through the alias", got)
	}
}

func TestClosureCapturesScopeByReference(t *testing.T) {
	src := `
func makeCounter() {
	n := 0;
	return func() {
		n = n + 1;
		return n;
	};
}
c := makeCounter();
print(c());
print(c());
print(c());
`
	got := mustRun(t, src)
	want := "1\n2\n3\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReceiverAttachesThroughDotCall(t *testing.T) {
	src := `
a := {"_v": "H", "v": func() { return this._v; }};
print(a.v());
`
	got := mustRun(t, src)
	if got != "H\n" {
		t.Fatalf("got %q, want \"H\\n\"", got)
	}
}

func TestAssignmentStripsReceiver(t *testing.T) {
	src := `
a := {"_v": "H", "v": func() { return this._v; }};
f := a.v;
f();
`
	re := mustFailKind(t, src)
	if re.Kind != ErrBadReceiver {
		t.Fatalf("expected ErrBadReceiver, got kind %v (%v)", re.Kind, re)
	}
}

func TestStructuralVsReferenceEquality(t *testing.T) {
	src := `
a := [1, 2];
b := [1, 2];
print(a == b);
print(a === b);
`
	got := mustRun(t, src)
	want := "true\nfalse\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestListDestructuringWithCollect(t *testing.T) {
	src := `
[a, b, ..rest] := [1, 2, 3, 4, 5];
print(a);
print(b);
print(rest);
`
	got := mustRun(t, src)
	want := "1\n2\n[3, 4, 5]\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestObjectDestructuringWithRename(t *testing.T) {
	src := `
{x, y: yy} := {"x": 1, "y": 2};
print(x);
print(yy);
`
	got := mustRun(t, src)
	want := "1\n2\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestListSpreadInLiteral(t *testing.T) {
	src := `
xs := [1, 2];
ys := [0, xs.., 3];
print(ys);
`
	got := mustRun(t, src)
	if got != "[0, 1, 2, 3]\n" {
		t.Fatalf("got %q", got)
	}
}

func TestRangeProducesIntList(t *testing.T) {
	got := mustRun(t, `print(1..5);`)
	if got != "[1, 2, 3, 4]\n" {
		t.Fatalf("got %q", got)
	}
}

func TestRangeEmptyWhenStartNotLessThanEnd(t *testing.T) {
	got := mustRun(t, `print(5..5);`)
	if got != "[]\n" {
		t.Fatalf("got %q", got)
	}
}

func TestOpAssignEvaluatesTargetOnce(t *testing.T) {
	src := `
person := {"age": 1};
person.age += 1;
print(person.age);
`
	got := mustRun(t, src)
	if got != "2\n" {
		t.Fatalf("got %q", got)
	}
}

func TestCollectParamGathersTrailingArgs(t *testing.T) {
	src := `
func sum(..xs) {
	total := 0;
	for x in xs {
		total = total + x;
	}
	return total;
}
print(sum(1, 2, 3));
`
	got := mustRun(t, src)
	if got != "6\n" {
		t.Fatalf("got %q", got)
	}
}

func TestForLoopOverObjectYieldsKeyValuePairs(t *testing.T) {
	src := `
o := {"a": 1, "b": 2};
for p in o {
	print(p);
}
`
	got := mustRun(t, src)
	want := "[\"a\", 1]\n[\"b\", 2]\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTypeFunctionDispatch(t *testing.T) {
	got := mustRun(t, `print("hello"->len()); print(1->type());`)
	want := "5\nint\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDivideByZeroFails(t *testing.T) {
	mustFail(t, `x := 1 / 0;`)
}

func TestUndefinedVariableFails(t *testing.T) {
	mustFail(t, `print(nope);`)
}

func TestIntAdditionOverflowFails(t *testing.T) {
	mustFail(t, `x := 9223372036854775807 + 1;`)
}

func TestBreakContinueInWhileLoop(t *testing.T) {
	src := `
i := 0;
out := [];
while i < 10 {
	i = i + 1;
	if i == 3 {
		continue;
	}
	if i == 6 {
		break;
	}
	out = out + [i];
}
print(out);
`
	got := mustRun(t, src)
	if got != "[1, 2, 4, 5]\n" {
		t.Fatalf("got %q", got)
	}
}

func TestSliceIndexAssignmentReplacesRange(t *testing.T) {
	src := `
xs := [1, 2, 3, 4, 5];
xs[1:3] = [9, 9, 9];
print(xs);
`
	got := mustRun(t, src)
	if got != "[1, 9, 9, 9, 4, 5]\n" {
		t.Fatalf("got %q", got)
	}
}

func TestStrIndexAndLen(t *testing.T) {
	got := mustRun(t, `s := "abc"; print(s[1]); print(s->len());`)
	if got != "b\n3\n" {
		t.Fatalf("got %q", got)
	}
}
