// value.go — the runtime value model: a tagged union over Null, Bool,
// Int, Str, List, Object and Func, grounded on the teacher's Value{Tag,
// Data} shape. List, Object and Func carry reference semantics by being
// represented as pointers to their backing structs, so two Values sharing
// one *listData/*objectData/*funcData alias the same storage, exactly as
// two variables holding the same List/Object/Func in the language do.
package seed

import "fmt"

type ValueTag int

const (
	TagNull ValueTag = iota
	TagBool
	TagInt
	TagStr
	TagList
	TagObject
	TagFunc
)

func (t ValueTag) String() string {
	switch t {
	case TagNull:
		return "null"
	case TagBool:
		return "bool"
	case TagInt:
		return "int"
	case TagStr:
		return "str"
	case TagList:
		return "list"
	case TagObject:
		return "object"
	case TagFunc:
		return "func"
	default:
		return "?"
	}
}

// Value is the universal runtime representation. For TagList/TagObject/
// TagFunc, Data holds a pointer (*listData/*objectData/*funcData); copying
// a Value copies the pointer, not the pointee, which is what gives lists,
// objects and functions their sharing semantics.
type Value struct {
	Tag  ValueTag
	Data any
}

var Null = Value{Tag: TagNull}

func BoolVal(b bool) Value { return Value{Tag: TagBool, Data: b} }
func IntVal(n int64) Value { return Value{Tag: TagInt, Data: n} }
func StrVal(s string) Value { return Value{Tag: TagStr, Data: s} }

func (v Value) AsBool() bool   { return v.Data.(bool) }
func (v Value) AsInt() int64   { return v.Data.(int64) }
func (v Value) AsStr() string  { return v.Data.(string) }
func (v Value) AsList() *listData { return v.Data.(*listData) }
func (v Value) AsObject() *objectData { return v.Data.(*objectData) }
func (v Value) AsFunc() *funcData { return v.Data.(*funcData) }

// listData is the shared backing store of a List value.
type listData struct {
	Items []Value
}

func NewList(items []Value) Value {
	return Value{Tag: TagList, Data: &listData{Items: items}}
}

// objectData is the shared backing store of an Object value. Keys is the
// insertion order; Entries is the lookup table. A key's position in Keys
// never changes once inserted, even if its value is overwritten — this is
// the corrected, insertion-ordered behaviour the language requires.
type objectData struct {
	Entries map[string]Value
	Keys    []string
}

func NewObject() *objectData {
	return &objectData{Entries: make(map[string]Value)}
}

func NewObjectValue() Value {
	return Value{Tag: TagObject, Data: NewObject()}
}

// Set inserts or overwrites a key, appending it to Keys only the first
// time it is seen.
func (o *objectData) Set(key string, v Value) {
	if _, ok := o.Entries[key]; !ok {
		o.Keys = append(o.Keys, key)
	}
	o.Entries[key] = v
}

func (o *objectData) Get(key string) (Value, bool) {
	v, ok := o.Entries[key]
	return v, ok
}

func (o *objectData) Delete(key string) {
	if _, ok := o.Entries[key]; !ok {
		return
	}
	delete(o.Entries, key)
	for i, k := range o.Keys {
		if k == key {
			o.Keys = append(o.Keys[:i], o.Keys[i+1:]...)
			break
		}
	}
}

// Clone makes a shallow copy: a fresh map and key slice, same Values.
func (o *objectData) Clone() *objectData {
	n := NewObject()
	for _, k := range o.Keys {
		n.Set(k, o.Entries[k])
	}
	return n
}

// funcData is the shared backing store of a Func value: either a closure
// over user code, or a native implementation registered by the runtime.
// Exactly one of Body/Native is set.
type funcData struct {
	Params  []string
	Collect string // "" if the function takes no trailing collect param
	Body    Block
	Env     *Env // lexical parent scope captured at definition time

	Native   NativeFunc
	NativeName string
}

// NativeFunc is the signature of a builtin implemented in Go. this is the
// bound receiver, or a zero Value with ok=false if unbound. Errors are
// raised with fail (panic/recover), the same as every other evaluation
// path, so natives compose with user code without a separate error
// return threading through apply.
type NativeFunc func(i *Interp, this Value, thisOK bool, args []Value, loc Location) Value

func NewNativeFunc(name string, fn NativeFunc) Value {
	return Value{Tag: TagFunc, Data: &funcData{NativeName: name, Native: fn}}
}

func NewClosure(params []string, collect string, body Block, env *Env) Value {
	return Value{Tag: TagFunc, Data: &funcData{Params: params, Collect: collect, Body: body, Env: env}}
}

// Truthy implements the language's notion of a condition: only Bool
// participates; every other type is a type error at the call site, which
// is enforced by the evaluator, not here.
func (v Value) Truthy() bool {
	return v.Tag == TagBool && v.AsBool()
}

// refEq is reference identity: for List/Object/Func it compares the
// backing pointers: for Null/Bool/Int/Str (which have no separate
// identity from their value) it falls back to structural equality.
func refEq(a, b Value) bool {
	switch a.Tag {
	case TagList:
		if b.Tag != TagList {
			return false
		}
		return a.AsList() == b.AsList()
	case TagObject:
		if b.Tag != TagObject {
			return false
		}
		return a.AsObject() == b.AsObject()
	case TagFunc:
		if b.Tag != TagFunc {
			return false
		}
		return a.AsFunc() == b.AsFunc()
	default:
		return structEq(a, b)
	}
}

// structEq is deep structural equality: lists/objects compare element by
// element (order matters for lists, not for objects); functions are never
// structurally equal to anything but themselves by reference.
func structEq(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case TagNull:
		return true
	case TagBool:
		return a.AsBool() == b.AsBool()
	case TagInt:
		return a.AsInt() == b.AsInt()
	case TagStr:
		return a.AsStr() == b.AsStr()
	case TagList:
		la, lb := a.AsList(), b.AsList()
		if la == lb {
			return true
		}
		if len(la.Items) != len(lb.Items) {
			return false
		}
		for i := range la.Items {
			if !structEq(la.Items[i], lb.Items[i]) {
				return false
			}
		}
		return true
	case TagObject:
		oa, ob := a.AsObject(), b.AsObject()
		if oa == ob {
			return true
		}
		if len(oa.Keys) != len(ob.Keys) {
			return false
		}
		for _, k := range oa.Keys {
			vb, ok := ob.Get(k)
			if !ok {
				return false
			}
			if !structEq(oa.Entries[k], vb) {
				return false
			}
		}
		return true
	case TagFunc:
		return refEq(a, b)
	default:
		return false
	}
}

func typeName(v Value) string {
	return v.Tag.String()
}

func debugStr(v Value) string {
	return fmt.Sprintf("%s(%v)", v.Tag, v.Data)
}
