// Package value implements sputter's runtime Value: the sum type every
// expression evaluates to. There is no garbage collector and no sharing --
// a Value is copied wherever it is bound or passed, exactly as object.rs's
// derived Clone does for the original interpreter.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags which variant of Value is populated.
type Kind int

const (
	Int Kind = iota
	Bool
	String
	List
	Function
	None
	Any // only ever used as a declared parameter type, never a runtime kind
)

// String names a Kind the way a type annotation or error message spells it.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Bool:
		return "bool"
	case String:
		return "string"
	case List:
		return "list"
	case Function:
		return "function"
	case None:
		return "none"
	case Any:
		return "any"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Param is one declared parameter slot of a function: a name and its
// annotated type, defaulting to Any when the source omits the annotation.
type Param struct {
	Name string
	Type Kind
}

// Func is a function value: its declared name (empty for a lambda), the
// byte offset into the source buffer where its single body expression
// starts, and its parameter slots.
type Func struct {
	Name   string
	Addr   int
	Params []Param
}

// Value is sputter's tagged union of runtime values. Only the field named
// by Kind is meaningful; the rest are zero.
type Value struct {
	Kind Kind
	I    int64
	B    bool
	S    string
	L    []Value
	Fn   Func
}

// NewInt constructs an int Value.
func NewInt(i int64) Value { return Value{Kind: Int, I: i} }

// NewBool constructs a bool Value.
func NewBool(b bool) Value { return Value{Kind: Bool, B: b} }

// NewString constructs a string Value.
func NewString(s string) Value { return Value{Kind: String, S: s} }

// NewList constructs a list Value, cloning elements so the new list never
// aliases its source.
func NewList(items []Value) Value {
	return Value{Kind: List, L: Clone(items)}
}

// NewFunc constructs a function Value.
func NewFunc(fn Func) Value { return Value{Kind: Function, Fn: fn} }

// NoneValue is the single unit value, the result of expressions with no
// meaningful value (`print`, a bare `def`).
var NoneValue = Value{Kind: None}

// Clone deep-copies a slice of values, so a list assigned or passed never
// shares backing storage with its source.
func Clone(vs []Value) []Value {
	if vs == nil {
		return nil
	}
	out := make([]Value, len(vs))
	for i, v := range vs {
		if v.Kind == List {
			out[i] = Value{Kind: List, L: Clone(v.L)}
		} else {
			out[i] = v
		}
	}
	return out
}

// Repr renders a Value the way the REPL's `=> ` line and `format`/`print`
// builtins do: strings unquoted, lists bracketed and space-separated,
// functions by name.
func (v Value) Repr() string {
	switch v.Kind {
	case Int:
		return strconv.FormatInt(v.I, 10)
	case Bool:
		if v.B {
			return "true"
		}
		return "false"
	case String:
		return v.S
	case List:
		parts := make([]string, len(v.L))
		for i, item := range v.L {
			parts[i] = item.Repr()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case Function:
		if v.Fn.Name != "" {
			return "<function " + v.Fn.Name + ">"
		}
		return "<lambda>"
	case None:
		return "none"
	default:
		return "<invalid>"
	}
}

// Equal implements sputter's `=` operator: structural equality over the
// whole value universe. Values of different Kind are never equal.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Int:
		return a.I == b.I
	case Bool:
		return a.B == b.B
	case String:
		return a.S == b.S
	case None:
		return true
	case List:
		if len(a.L) != len(b.L) {
			return false
		}
		for i := range a.L {
			if !Equal(a.L[i], b.L[i]) {
				return false
			}
		}
		return true
	case Function:
		return a.Fn.Name == b.Fn.Name && a.Fn.Addr == b.Fn.Addr
	default:
		return false
	}
}
