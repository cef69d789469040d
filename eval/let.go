package eval

import (
	"github.com/FollowTheProcess/sputter/token"
	"github.com/FollowTheProcess/sputter/value"
)

// evalLet evaluates `let ((name value)...) body`, binding each name into
// the global namespace for the duration of body, then removing them all
// again. Rebinding an existing name is fatal -- sputter has no shadowing.
// The Go rendering of parse_let_expr.
func (e *Eval) evalLet() value.Value {
	e.expect(token.LPAREN)
	e.env.PushScope()

	for {
		tok := e.next()
		if tok.Tok == token.RPAREN {
			break
		}
		if tok.Tok != token.LPAREN {
			e.env.PopScope()
			return e.unexpected(tok, token.LPAREN, token.RPAREN)
		}

		nameTok := e.expect(token.IDENT)
		valTok := e.next()
		val := e.evalExpr(valTok)
		e.expect(token.RPAREN)

		if err := e.env.Let(nameTok.Value, val); err != nil {
			e.env.PopScope()
			return e.fail(nameTok, err.Error())
		}
	}

	bodyTok := e.next()
	result := e.evalExpr(bodyTok)
	e.env.PopScope()
	return result
}
