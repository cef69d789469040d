package eval

import (
	"github.com/FollowTheProcess/sputter/token"
	"github.com/FollowTheProcess/sputter/value"
)

// evalDef evaluates `def (name params) body`, recording a global function
// binding whose body is skipped, not evaluated, at definition time. The
// name is the first token inside the parameter-list parens, matching the
// EBNF `'def' '(' IDENT param* ')' expr`. The Go rendering of
// parse_def_expr.
func (e *Eval) evalDef() value.Value {
	e.expect(token.LPAREN)
	nameTok := e.expect(token.IDENT)
	params := e.parseParamList()

	addr := e.buf.Index()
	e.skipExpr()

	fn := value.Func{Name: nameTok.Value, Addr: addr, Params: params}
	e.env.SetGlobal(nameTok.Value, value.NewFunc(fn))
	return value.NoneValue
}

// evalLambda evaluates `lambda (params) body`, returning an anonymous
// function value directly instead of binding it globally.
func (e *Eval) evalLambda() value.Value {
	e.expect(token.LPAREN)
	params := e.parseParamList()

	addr := e.buf.Index()
	e.skipExpr()

	return value.NewFunc(value.Func{Addr: addr, Params: params})
}

// parseParamList reads parameter names up to the closing `)`, each
// optionally followed by `: typename`. The Go rendering of funcdef.rs's
// param_list: after a name it saves the cursor, reads one more token, and
// only keeps it if it's a `:`, rewinding otherwise -- the buffer-index
// save/restore idiom the original uses everywhere instead of a token
// pushback buffer.
func (e *Eval) parseParamList() []value.Param {
	var params []value.Param
	for {
		tok := e.next()
		if tok.Tok == token.RPAREN {
			return params
		}
		if tok.Tok != token.IDENT {
			e.unexpected(tok, token.IDENT, token.RPAREN)
			return params
		}

		param := value.Param{Name: tok.Value, Type: value.Any}

		save := e.buf.Index()
		next := e.next()
		if next.Tok == token.COLON {
			typeTok := e.next()
			if typeTok.Tok != token.TYPENAME && typeTok.Tok != token.IDENT {
				e.unexpected(typeTok, token.TYPENAME)
			}
			param.Type = typeFromToken(typeTok.Value)
		} else {
			e.buf.Seek(save)
		}

		params = append(params, param)
	}
}

// typeFromToken maps a type annotation's name to its Kind, defaulting to
// Any for anything sputter doesn't recognise -- parameter types are
// arity/shape hints, not a static type system, so an unrecognised name is
// not an error.
func typeFromToken(name string) value.Kind {
	switch name {
	case "int":
		return value.Int
	case "bool":
		return value.Bool
	case "string":
		return value.String
	case "list":
		return value.List
	case "function":
		return value.Function
	case "none_t":
		return value.None
	default:
		return value.Any
	}
}
