package eval

import (
	"fmt"

	"github.com/FollowTheProcess/sputter/token"
	"github.com/FollowTheProcess/sputter/value"
)

// evalOperator evaluates a binary operator form `(op lhs rhs)`, the Go
// rendering of parse_op_expr. `+` type-dispatches on the left operand as
// int-sum or string-concat; `and`/`or` are not short-circuiting, both
// operands are always evaluated, exactly as op.rs's match arms do.
func (e *Eval) evalOperator(op token.Item) value.Value {
	lhsTok := e.next()
	lhs := e.evalExpr(lhsTok)
	rhsTok := e.next()
	rhs := e.evalExpr(rhsTok)

	switch op.Tok {
	case token.PLUS:
		return e.evalPlus(op, lhs, rhs)
	case token.MINUS:
		return e.evalIntOp(op, lhs, rhs, func(a, b int64) int64 { return a - b })
	case token.STAR:
		return e.evalIntOp(op, lhs, rhs, func(a, b int64) int64 { return a * b })
	case token.SLASH:
		return e.evalDivide(op, lhs, rhs)
	case token.EQUAL:
		return value.NewBool(value.Equal(lhs, rhs))
	case token.LESS:
		return e.evalCompare(op, lhs, rhs, func(a, b int64) bool { return a < b })
	case token.GREATER:
		return e.evalCompare(op, lhs, rhs, func(a, b int64) bool { return a > b })
	case token.AND:
		return e.evalBoolOp(op, lhs, rhs, func(a, b bool) bool { return a && b })
	case token.OR:
		return e.evalBoolOp(op, lhs, rhs, func(a, b bool) bool { return a || b })
	default:
		return e.fail(op, fmt.Sprintf("%q is not an operator", op.String()))
	}
}

// evalPlus dispatches on the left operand's type: int addition or string
// concatenation, the two cases op.rs's Add arm handles.
func (e *Eval) evalPlus(op token.Item, lhs, rhs value.Value) value.Value {
	switch lhs.Kind {
	case value.Int:
		if rhs.Kind != value.Int {
			return e.fail(op, fmt.Sprintf("+ expects int + int, got int + %s", rhs.Kind))
		}
		return value.NewInt(lhs.I + rhs.I)
	case value.String:
		if rhs.Kind != value.String {
			return e.fail(op, fmt.Sprintf("+ expects string + string, got string + %s", rhs.Kind))
		}
		return value.NewString(lhs.S + rhs.S)
	default:
		return e.fail(op, fmt.Sprintf("+ expects int or string operands, got %s", lhs.Kind))
	}
}

func (e *Eval) evalIntOp(op token.Item, lhs, rhs value.Value, f func(int64, int64) int64) value.Value {
	if lhs.Kind != value.Int || rhs.Kind != value.Int {
		return e.fail(op, fmt.Sprintf("%s expects int operands, got %s and %s", op.String(), lhs.Kind, rhs.Kind))
	}
	return value.NewInt(f(lhs.I, rhs.I))
}

func (e *Eval) evalDivide(op token.Item, lhs, rhs value.Value) value.Value {
	if lhs.Kind != value.Int || rhs.Kind != value.Int {
		return e.fail(op, fmt.Sprintf("/ expects int operands, got %s and %s", lhs.Kind, rhs.Kind))
	}
	if rhs.I == 0 {
		return e.fail(op, "division by zero")
	}
	return value.NewInt(lhs.I / rhs.I)
}

func (e *Eval) evalCompare(op token.Item, lhs, rhs value.Value, f func(int64, int64) bool) value.Value {
	if lhs.Kind != value.Int || rhs.Kind != value.Int {
		return e.fail(op, fmt.Sprintf("%s expects int operands, got %s and %s", op.String(), lhs.Kind, rhs.Kind))
	}
	return value.NewBool(f(lhs.I, rhs.I))
}

func (e *Eval) evalBoolOp(op token.Item, lhs, rhs value.Value, f func(bool, bool) bool) value.Value {
	if lhs.Kind != value.Bool || rhs.Kind != value.Bool {
		return e.fail(op, fmt.Sprintf("%s expects bool operands, got %s and %s", op.String(), lhs.Kind, rhs.Kind))
	}
	return value.NewBool(f(lhs.B, rhs.B))
}
