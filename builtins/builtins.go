// Package builtins implements the built in functions supported by sputter,
// it also exports functions which other packages may use to retrieve and
// call a builtin function by name.
package builtins

import (
	"fmt"
	"strings"

	"github.com/FollowTheProcess/sputter/value"
)

// Context is everything a builtin needs from the evaluator that called it,
// kept small and interface-shaped so this package never imports eval and
// the two can't form an import cycle.
type Context interface {
	// Write sends s to the program's stdout stream, unbuffered.
	Write(s string)
	// ReadLine reads a single line from stdin, with its trailing newline
	// retained exactly as the underlying reader produced it. ok is false
	// at EOF.
	ReadLine() (line string, ok bool)
	// RunShell runs cmd through the embedded shell interpreter and
	// returns its trimmed stdout, or an error describing a non-zero exit.
	RunShell(cmd string) (string, error)
	// Exit terminates the process with the given status code.
	Exit(code int)
}

// Func is a sputter built in function.
type Func func(ctx Context, args []value.Value) (value.Value, error)

// Doc documents one builtin for the `--builtins` introspection flag, and
// carries its declared parameter types so the evaluator can type-check a
// call's arguments the same way it does for a user-defined function.
type Doc struct {
	Name    string
	Arity   string
	Params  []value.Param
	Summary string
}

// read-only package scoped map mapping the names of the builtins to their
// underlying function. Client packages access this through Get.
var registry = map[string]Func{
	"print":   print_,
	"println": println_,
	"readln":  readln_,
	"format":  format_,
	"exit":    exit_,
	"get":     get_,
	"len":     len_,
	"range":   range_,
	"shell":   shell_,
}

// Docs describes every builtin in a stable, sorted-by-name order, for the
// `--builtins` CLI flag.
var Docs = []Doc{
	{Name: "exit", Arity: "1", Params: []value.Param{{Name: "code", Type: value.Int}},
		Summary: "terminate the process with the given int status code"},
	{Name: "format", Arity: "2", Params: []value.Param{{Name: "fmt", Type: value.String}, {Name: "obj", Type: value.Any}},
		Summary: "substitute every % in a format string with the repr of the second argument"},
	{Name: "get", Arity: "2", Params: []value.Param{{Name: "ls", Type: value.Any}, {Name: "idx", Type: value.Int}},
		Summary: "index a list; negative indices count from the end"},
	{Name: "len", Arity: "1", Params: []value.Param{{Name: "ls", Type: value.Any}},
		Summary: "the length of a list or string"},
	{Name: "print", Arity: "1", Params: []value.Param{{Name: "content", Type: value.Any}},
		Summary: "write a value's representation to stdout"},
	{Name: "println", Arity: "1", Params: []value.Param{{Name: "content", Type: value.Any}},
		Summary: "write a value's representation to stdout, followed by a newline"},
	{Name: "range", Arity: "2", Params: []value.Param{{Name: "start", Type: value.Int}, {Name: "end", Type: value.Int}},
		Summary: "a list of ints from start (inclusive) to end (exclusive)"},
	{Name: "readln", Arity: "0", Summary: "read a single line from stdin"},
	{Name: "shell", Arity: "1", Params: []value.Param{{Name: "cmd", Type: value.String}},
		Summary: "run a string as a shell command, returning its trimmed stdout"},
}

// Get looks up a builtin function by name, it returns the Func and a bool
// indicating whether or not it was found, in the same way that item, ok is
// used for maps.
func Get(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

func print_(ctx Context, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, fmt.Errorf("print takes 1 argument, got %d", len(args))
	}
	ctx.Write(args[0].Repr())
	return value.NoneValue, nil
}

func println_(ctx Context, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, fmt.Errorf("println takes 1 argument, got %d", len(args))
	}
	ctx.Write(args[0].Repr() + "\n")
	return value.NoneValue, nil
}

func readln_(ctx Context, args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return value.Value{}, fmt.Errorf("readln takes 0 arguments, got %d", len(args))
	}
	line, ok := ctx.ReadLine()
	if !ok {
		return value.NoneValue, nil
	}
	return value.NewString(line), nil
}

// format substitutes every `%` in args[0] with the Repr of args[1], the
// same value each time. args[0] must be a string.
func format_(ctx Context, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Value{}, fmt.Errorf("format takes 2 arguments, got %d", len(args))
	}
	if args[0].Kind != value.String {
		return value.Value{}, fmt.Errorf("format expects a string as its first argument, got %s", args[0].Kind)
	}
	repr := args[1].Repr()
	var sb strings.Builder
	for _, r := range args[0].S {
		if r == '%' {
			sb.WriteString(repr)
		} else {
			sb.WriteRune(r)
		}
	}
	return value.NewString(sb.String()), nil
}

func exit_(ctx Context, args []value.Value) (value.Value, error) {
	if len(args) != 1 || args[0].Kind != value.Int {
		return value.Value{}, fmt.Errorf("exit expects 1 int argument")
	}
	ctx.Exit(int(args[0].I))
	return value.NoneValue, nil
}

// get indexes a list. A negative index counts back from the end of the
// list (len+idx), the clearer of the two readings of the original
// interpreter's ambiguous negative-index formula.
func get_(ctx Context, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Value{}, fmt.Errorf("get takes 2 arguments, got %d", len(args))
	}
	if args[0].Kind != value.List {
		return value.Value{}, fmt.Errorf("get expects a list as its first argument, got %s", args[0].Kind)
	}
	if args[1].Kind != value.Int {
		return value.Value{}, fmt.Errorf("get expects an int as its second argument, got %s", args[1].Kind)
	}
	idx := int(args[1].I)
	if idx < 0 {
		idx += len(args[0].L)
	}
	if idx < 0 || idx >= len(args[0].L) {
		return value.Value{}, fmt.Errorf("get index %d out of range for list of length %d", args[1].I, len(args[0].L))
	}
	return args[0].L[idx], nil
}

func len_(ctx Context, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, fmt.Errorf("len takes 1 argument, got %d", len(args))
	}
	switch args[0].Kind {
	case value.List:
		return value.NewInt(int64(len(args[0].L))), nil
	case value.String:
		return value.NewInt(int64(len(args[0].S))), nil
	default:
		return value.Value{}, fmt.Errorf("len expects a list or string, got %s", args[0].Kind)
	}
}

func range_(ctx Context, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Value{}, fmt.Errorf("range takes 2 arguments, got %d", len(args))
	}
	if args[0].Kind != value.Int || args[1].Kind != value.Int {
		return value.Value{}, fmt.Errorf("range expects 2 int arguments")
	}
	start, end := args[0].I, args[1].I
	if end < start {
		return value.NewList(nil), nil
	}
	items := make([]value.Value, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, value.NewInt(i))
	}
	return value.NewList(items), nil
}

func shell_(ctx Context, args []value.Value) (value.Value, error) {
	if len(args) != 1 || args[0].Kind != value.String {
		return value.Value{}, fmt.Errorf("shell expects 1 string argument")
	}
	out, err := ctx.RunShell(args[0].S)
	if err != nil {
		return value.Value{}, err
	}
	return value.NewString(out), nil
}
