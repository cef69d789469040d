package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/FollowTheProcess/sputter/buffer"
	"github.com/FollowTheProcess/sputter/report"
	"github.com/FollowTheProcess/sputter/token"
)

func TestReportRendersLineAndCaret(t *testing.T) {
	buf := buffer.New([]byte("(+ 1 x)"))
	buf.SetPrevIndex(5) // points at 'x'

	var out bytes.Buffer
	exited := -1
	r := report.New(&out, true)
	r.SetExitFunc(func(code int) { exited = code })

	r.Report(buf, "undefined name \"x\"")

	if exited != 1 {
		t.Errorf("exit code = %d, want 1", exited)
	}
	got := out.String()
	if !strings.Contains(got, "Error at line 1: undefined name \"x\"") {
		t.Errorf("output missing header, got %q", got)
	}
	if !strings.Contains(got, "(+ 1 x)") {
		t.Errorf("output missing source line, got %q", got)
	}
	if !strings.Contains(got, "^") {
		t.Errorf("output missing caret, got %q", got)
	}
}

func TestUnexpectedTokenError(t *testing.T) {
	err := report.UnexpectedToken{
		Expected:    []token.Token{token.RPAREN},
		Encountered: token.Item{Tok: token.EOF},
		Line:        3,
	}
	got := err.Error()
	if !strings.Contains(got, "expected )") {
		t.Errorf("Error() = %q, want it to mention expected )", got)
	}
}

func TestUndefinedNameWithSuggestion(t *testing.T) {
	err := report.UndefinedName{Name: "legnth", Suggestion: "length"}
	got := err.Error()
	if !strings.Contains(got, "did you mean \"length\"") {
		t.Errorf("Error() = %q, want a did-you-mean hint", got)
	}
}
