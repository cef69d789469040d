package eval

import (
	"github.com/FollowTheProcess/sputter/token"
	"github.com/FollowTheProcess/sputter/value"
)

// evalIf evaluates `if cond then else`. Exactly one branch is ever
// evaluated; the other is skipped structurally via skipExpr. The Go
// rendering of parse_if_expr.
func (e *Eval) evalIf() value.Value {
	condTok := e.next()
	cond := e.evalExpr(condTok)
	if cond.Kind != value.Bool {
		return e.fail(condTok, "if condition must be bool")
	}

	if cond.B {
		thenTok := e.next()
		result := e.evalExpr(thenTok)
		e.expect(token.ELSE)
		e.skipExpr()
		return result
	}

	e.skipExpr()
	e.expect(token.ELSE)
	elseTok := e.next()
	return e.evalExpr(elseTok)
}
