package eval

import (
	"fmt"

	"github.com/FollowTheProcess/sputter/builtins"
	"github.com/FollowTheProcess/sputter/env"
	"github.com/FollowTheProcess/sputter/token"
	"github.com/FollowTheProcess/sputter/value"
)

// builtinAddr marks a function value as a native builtin rather than a
// user-defined one with a real body address in the source buffer -- every
// real buffer address is >= 0, so -1 never collides with one.
const builtinAddr = -1

// registerBuiltins binds every builtins.Doc into the global namespace as a
// Function value with Addr set to builtinAddr and its declared Params, so
// a bare call to e.g. `get` resolves, has its arguments read and type
// checked, and dispatches exactly like a call to a user-defined function.
func (e *Eval) registerBuiltins() {
	for _, doc := range builtins.Docs {
		fn := value.Func{Name: doc.Name, Addr: builtinAddr, Params: doc.Params}
		e.env.SetGlobal(doc.Name, value.NewFunc(fn))
	}
}

// evalCall evaluates a function call once its callee fn is already
// resolved: it reads exactly len(fn.Params) argument expressions, checks
// each against its declared type, then dispatches to either a builtin or a
// user-defined call. The Go rendering of parse_call_expr.
func (e *Eval) evalCall(tok token.Item, fn value.Func) value.Value {
	args := make([]value.Value, 0, len(fn.Params))
	for i, param := range fn.Params {
		argTok := e.next()
		if argTok.Tok == token.RPAREN {
			return e.fail(argTok, fmt.Sprintf("%q takes %d argument(s), got %d", fn.Name, len(fn.Params), i))
		}
		val := e.evalExpr(argTok)
		if param.Type != value.Any && val.Kind != param.Type {
			return e.fail(argTok, fmt.Sprintf("argument %d to %q must be %s, got %s", i+1, fn.Name, param.Type, val.Kind))
		}
		args = append(args, val)
	}

	if fn.Addr == builtinAddr {
		native, ok := builtins.Get(fn.Name)
		if !ok {
			return e.fail(tok, fmt.Sprintf("unknown builtin %q", fn.Name))
		}
		e.log.Debug("dispatching builtin %q with %d argument(s)", fn.Name, len(args))
		result, err := native(e, args)
		if err != nil {
			return e.fail(tok, err.Error())
		}
		return result
	}

	return e.callFunction(fn, args)
}

// callFunction invokes a user-defined function by seeking the buffer to
// its recorded body address, evaluating its single body expression under
// a shadow-cleaned namespace, then restoring the caller's cursor -- the
// seek-and-resume mechanism that lets a function value carry nothing but
// a byte offset. The Go rendering of call_function.
func (e *Eval) callFunction(fn value.Func, args []value.Value) value.Value {
	savedCursor := e.buf.Index()
	e.env.PushCall(env.CallFrame{SavedCursor: savedCursor, Params: fn.Params, Args: args})

	shadow := e.env.ShadowClone()
	caller := e.env.Swap(shadow)

	e.buf.Seek(fn.Addr)
	e.log.Debug("calling %q at address %d with %d argument(s)", fn.Name, fn.Addr, len(args))

	bodyTok := e.next()
	result := e.evalExpr(bodyTok)

	e.env.Swap(caller)
	frame, _ := e.env.PopCall()
	e.buf.Seek(frame.SavedCursor)

	return result
}
