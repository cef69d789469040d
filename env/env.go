// Package env implements sputter's name resolution: a global namespace, a
// stack of lexical scopes introduced by `let`, and a stack of active call
// frames. It is the Go rendering of call.rs's CallInfo/scope bookkeeping.
package env

import (
	"fmt"

	"github.com/FollowTheProcess/collections"
	"github.com/FollowTheProcess/sputter/value"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/exp/maps"
)

// CallFrame records what a call needs to restore the caller's state when
// the callee's single body expression has been evaluated: the cursor to
// seek back to, and the parameter/argument bindings visible inside the
// call.
type CallFrame struct {
	SavedCursor int
	Params      []value.Param
	Args        []value.Value
}

// lookup finds the value bound to name, if any, among this frame's
// parameters.
func (f CallFrame) lookup(name string) (value.Value, bool) {
	for i, p := range f.Params {
		if p.Name == name {
			return f.Args[i], true
		}
	}
	return value.Value{}, false
}

// Env holds sputter's entire name-resolution state: the global namespace,
// the active `let` scopes, and the active call stack.
type Env struct {
	globals    map[string]value.Value
	scopeStack *collections.Stack[[]string]
	callStack  *collections.Stack[CallFrame]
}

// New returns an empty Env, ready for a fresh REPL or file run.
func New() *Env {
	return &Env{
		globals:    make(map[string]value.Value),
		scopeStack: collections.NewStack[[]string](),
		callStack:  collections.NewStack[CallFrame](),
	}
}

// Get resolves a name: the innermost active call's parameters take
// precedence, then the globals. Returns ok=false if name is bound nowhere.
func (e *Env) Get(name string) (value.Value, bool) {
	if frame, ok := e.callStack.Peek(); ok {
		if v, ok := frame.lookup(name); ok {
			return v, true
		}
	}
	v, ok := e.globals[name]
	return v, ok
}

// SetGlobal binds name to v in the global namespace, overwriting any
// previous binding. Used for `def` and for recording builtins.
func (e *Env) SetGlobal(name string, v value.Value) {
	e.globals[name] = v
}

// HasGlobal reports whether name is currently bound globally.
func (e *Env) HasGlobal(name string) bool {
	_, ok := e.globals[name]
	return ok
}

// Let binds name to v as a scoped `let` binding: it is written into the
// global namespace (so nested expressions see it as an ordinary name) and
// recorded against the innermost active scope so PopScope can remove it
// again. Rebinding a name that is already a global (including one from an
// enclosing `let`) is an error -- sputter has no shadowing.
func (e *Env) Let(name string, v value.Value) error {
	if e.HasGlobal(name) {
		return fmt.Errorf("cannot rebind existing name %q with let", name)
	}
	e.globals[name] = v
	if names, ok := e.scopeStack.Peek(); ok {
		names = append(names, name)
		e.scopeStack.Pop()
		e.scopeStack.Push(names)
	} else {
		e.scopeStack.Push([]string{name})
	}
	return nil
}

// PushScope opens a new `let` scope.
func (e *Env) PushScope() {
	e.scopeStack.Push(nil)
}

// PopScope closes the innermost `let` scope, removing every name it bound
// from the global namespace.
func (e *Env) PopScope() {
	names, ok := e.scopeStack.Pop()
	if !ok {
		return
	}
	for _, name := range names {
		delete(e.globals, name)
	}
}

// allScopedNames returns every name introduced by any currently active
// `let` scope, across the whole scope stack. It drains the stack and
// pushes every frame straight back in the same order, since collections.Stack
// exposes no way to iterate without popping.
func (e *Env) allScopedNames() []string {
	var frames [][]string
	for {
		names, ok := e.scopeStack.Pop()
		if !ok {
			break
		}
		frames = append(frames, names)
	}
	var all []string
	for i := len(frames) - 1; i >= 0; i-- {
		e.scopeStack.Push(frames[i])
		all = append(all, frames[i]...)
	}
	return all
}

// ShadowClone clones the global namespace with every name bound by an
// active `let` scope stripped out, the "shadow cleanup" a call performs
// before evaluating its callee's body so enclosing `let` bindings are
// invisible to the callee while every other global -- including sibling
// function definitions -- remains visible.
func (e *Env) ShadowClone() map[string]value.Value {
	clone := maps.Clone(e.globals)
	for _, name := range e.allScopedNames() {
		delete(clone, name)
	}
	return clone
}

// Swap replaces the global namespace wholesale, used by a call to install
// its shadow-cleaned clone for the duration of the callee's body and then
// restore the caller's globals afterwards.
func (e *Env) Swap(globals map[string]value.Value) map[string]value.Value {
	old := e.globals
	e.globals = globals
	return old
}

// PushCall opens a new call frame.
func (e *Env) PushCall(frame CallFrame) {
	e.callStack.Push(frame)
}

// PopCall closes the innermost call frame.
func (e *Env) PopCall() (CallFrame, bool) {
	return e.callStack.Pop()
}

// CallDepth reports how many calls are currently active.
func (e *Env) CallDepth() int {
	return e.callStack.Len()
}

// GlobalNames returns every currently bound global name, sorted, for the
// `--env` introspection flag.
func (e *Env) GlobalNames() []string {
	names := maps.Keys(e.globals)
	sortStrings(names)
	return names
}

// Suggest finds the closest existing global name to an undefined one, for
// the "did you mean" hint in undefined-name errors. Only names containing
// every character of name in order (case-insensitively) are candidates;
// among them the one with the smallest edit distance wins. Returns "" if
// there is no candidate.
func (e *Env) Suggest(name string) string {
	candidates := maps.Keys(e.globals)
	ranked := fuzzy.RankFindNormalizedFold(name, candidates)
	if len(ranked) == 0 {
		return ""
	}
	best := ranked[0]
	for _, r := range ranked {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
