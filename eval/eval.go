// Package eval implements sputter's evaluator: a single recursive-descent
// pass over the source buffer that parses and evaluates at the same time,
// with no separate AST. A function value stores nothing but a byte offset
// into the buffer; calling it seeks the buffer there, re-lexes, evaluates
// one expression, and seeks back -- the Go rendering of parser.rs's
// match_expr/parse_paren_expr and call.rs's call_function.
package eval

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/FollowTheProcess/sputter/buffer"
	"github.com/FollowTheProcess/sputter/env"
	"github.com/FollowTheProcess/sputter/includes"
	"github.com/FollowTheProcess/sputter/iostream"
	"github.com/FollowTheProcess/sputter/lexer"
	"github.com/FollowTheProcess/sputter/logger"
	"github.com/FollowTheProcess/sputter/report"
	"github.com/FollowTheProcess/sputter/shell"
	"github.com/FollowTheProcess/sputter/token"
	"github.com/FollowTheProcess/sputter/value"
)

// Eval holds all of sputter's running state: the source buffer and lexer,
// the name-resolution environment, the error reporter, and everything a
// dispatched builtin needs by way of the builtins.Context methods below.
type Eval struct {
	buf      *buffer.Buffer
	lex      *lexer.Lexer
	env      *env.Env
	reporter *report.Reporter
	log      logger.Logger
	runner   shell.Runner
	includes *includes.Tracker
	stream   iostream.IOStream
	stdin    *bufio.Reader
	dir      string
	regions  []useRegion
}

// New constructs an Eval ready to run. dir is the directory a relative
// `use` path is resolved against; entryPath names the file currently
// loaded into buf, or "" for a REPL session with no file of its own.
func New(buf *buffer.Buffer, stream iostream.IOStream, log logger.Logger, runner shell.Runner, reporter *report.Reporter, dir string, entryPath string) *Eval {
	e := &Eval{
		buf:      buf,
		lex:      lexer.New(buf),
		env:      env.New(),
		reporter: reporter,
		log:      log,
		runner:   runner,
		includes: includes.New(),
		stream:   stream,
		stdin:    bufio.NewReader(stream.Stdin),
		dir:      dir,
	}
	if entryPath != "" {
		e.regions = []useRegion{{path: entryPath, start: 0, end: buf.Len()}}
	}
	e.registerBuiltins()
	return e
}

// Env exposes the evaluator's namespace, for the `--env` introspection
// flag.
func (e *Eval) Env() *env.Env {
	return e.env
}

// Run evaluates every complete expression currently sitting in the buffer,
// in encounter order, and returns the value of the last one. A file run
// loads the whole program up front and calls Run once; a REPL calls it
// again after every AppendLine.
func (e *Eval) Run() value.Value {
	result := value.NoneValue
	for {
		tok := e.next()
		if tok.Tok == token.EOF {
			return result
		}
		result = e.evalExpr(tok)
	}
}

// next reads the next lexical token from the buffer.
func (e *Eval) next() token.Item {
	return e.lex.Next()
}

// evalExpr evaluates a single top-level expression starting with tok, the
// Go rendering of match_expr. A bare identifier here never triggers a
// call -- only the identifier branch of evalParenForm does.
func (e *Eval) evalExpr(tok token.Item) value.Value {
	switch tok.Tok {
	case token.INT:
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return e.fail(tok, fmt.Sprintf("invalid integer literal %q", tok.Value))
		}
		return value.NewInt(n)
	case token.STRING:
		return value.NewString(tok.Value)
	case token.TRUE:
		return value.NewBool(true)
	case token.FALSE:
		return value.NewBool(false)
	case token.NONE:
		return value.NoneValue
	case token.IDENT:
		return e.resolveName(tok, false)
	case token.LPAREN:
		return e.evalParenForm()
	case token.LBRACKET:
		return e.evalListLiteral()
	case token.EOF:
		return e.fail(tok, "unexpected end of input")
	case token.ERROR:
		return e.fail(tok, tok.Value)
	default:
		return e.unexpected(tok, token.INT, token.STRING, token.IDENT, token.LPAREN, token.LBRACKET)
	}
}

// evalParenForm evaluates a parenthesized form after its opening `(` has
// already been consumed, the Go rendering of parse_paren_expr. Every
// branch except `use` falls through to the shared trailing check that the
// form closes with `)`; `use` consumes its own closing paren and returns
// directly.
func (e *Eval) evalParenForm() value.Value {
	tok := e.next()

	var result value.Value
	switch tok.Tok {
	case token.IDENT:
		result = e.resolveName(tok, true)
	case token.INT, token.STRING, token.TRUE, token.FALSE, token.NONE:
		result = e.evalExpr(tok)
	case token.LPAREN:
		inner := e.evalParenForm()
		if inner.Kind == value.Function {
			result = e.evalCall(tok, inner.Fn)
		} else {
			result = inner
		}
	case token.LBRACKET:
		result = e.evalListLiteral()
	case token.DEF:
		result = e.evalDef()
	case token.LAMBDA:
		result = e.evalLambda()
	case token.IF:
		result = e.evalIf()
	case token.LET:
		result = e.evalLet()
	case token.USE:
		return e.evalUse()
	default:
		if token.IsOperator(tok.Tok) {
			result = e.evalOperator(tok)
		} else {
			return e.unexpected(tok, token.IDENT, token.LPAREN, token.LBRACKET, token.DEF,
				token.LAMBDA, token.IF, token.LET, token.USE)
		}
	}

	e.expect(token.RPAREN)
	return result
}

// evalListLiteral evaluates `[` expr* `]`, the Go rendering of
// parse_list_expr.
func (e *Eval) evalListLiteral() value.Value {
	var items []value.Value
	for {
		tok := e.next()
		if tok.Tok == token.RBRACKET {
			return value.NewList(items)
		}
		items = append(items, e.evalExpr(tok))
	}
}

// resolveName resolves a bare identifier against the active call's
// parameters, then the globals. When call is true and the resolved value
// is a function, it is invoked immediately -- the distinction between
// parse_single_name_expr (call=false) and parse_name_expr (call=true).
func (e *Eval) resolveName(tok token.Item, call bool) value.Value {
	v, ok := e.env.Get(tok.Value)
	if !ok {
		suggestion := e.env.Suggest(tok.Value)
		err := report.UndefinedName{Name: tok.Value, Suggestion: suggestion}
		return e.fail(tok, err.Error())
	}
	if call && v.Kind == value.Function {
		return e.evalCall(tok, v.Fn)
	}
	return v
}

// skipExpr advances the cursor past one full expression without
// evaluating it, used by `if`/`else` to jump over the untaken branch. It
// tracks `(`/`)` and `[`/`]` depth together, extending the original's
// lparens-only counter so a list-literal branch skips correctly too.
func (e *Eval) skipExpr() {
	tok := e.next()
	switch tok.Tok {
	case token.LPAREN, token.LBRACKET:
		depth := 1
		for depth > 0 {
			t := e.next()
			switch t.Tok {
			case token.LPAREN, token.LBRACKET:
				depth++
			case token.RPAREN, token.RBRACKET:
				depth--
			case token.EOF:
				e.fail(t, "unexpected end of input while skipping expression")
				return
			}
		}
	}
}

// expect reads the next token and fails unless it is of kind t.
func (e *Eval) expect(t token.Token) token.Item {
	tok := e.next()
	if tok.Tok != t {
		e.unexpected(tok, t)
	}
	return tok
}

// unexpected fails with a report.UnexpectedToken built from tok and the
// tokens that would have been acceptable.
func (e *Eval) unexpected(tok token.Item, expected ...token.Token) value.Value {
	err := report.UnexpectedToken{Expected: expected, Encountered: tok, Line: tok.Line}
	return e.fail(tok, err.Error())
}

// fail points the reporter at tok and reports msg. In production Report
// never returns (it calls os.Exit); the dummy value.NoneValue it returns
// here only matters under test, where Reporter.SetExitFunc stubs the exit
// so callers can inspect it and the reporter's captured output instead.
func (e *Eval) fail(tok token.Item, msg string) value.Value {
	e.buf.SetPrevIndex(tok.Pos)
	e.reporter.Report(e.buf, msg)
	return value.NoneValue
}

// Write implements builtins.Context, sending s to the program's stdout
// stream unbuffered.
func (e *Eval) Write(s string) {
	fmt.Fprint(e.stream.Stdout, s)
}

// ReadLine implements builtins.Context, reading one line from stdin with
// its trailing newline retained exactly as produced.
func (e *Eval) ReadLine() (string, bool) {
	line, err := e.stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}

// RunShell implements builtins.Context, running cmd through the embedded
// shell interpreter and returning its trimmed stdout.
func (e *Eval) RunShell(cmd string) (string, error) {
	result, err := e.runner.Run(cmd, e.stream, "shell", nil)
	if err != nil {
		return "", err
	}
	if !result.Ok() {
		return "", fmt.Errorf("command exited with status %d: %s", result.Status, strings.TrimSpace(result.Stderr))
	}
	return strings.TrimSpace(result.Stdout), nil
}

// Exit implements builtins.Context, flushing the logger and terminating
// the process.
func (e *Eval) Exit(code int) {
	_ = e.log.Sync()
	os.Exit(code)
}
