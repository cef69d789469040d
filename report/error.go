package report

import (
	"fmt"
	"strings"

	"github.com/FollowTheProcess/sputter/token"
)

// UnexpectedToken is a syntax error raised when the evaluator finds a token
// it cannot start or continue a form with. It renders a list of what would
// have been acceptable, the same as the teacher's illegalToken.
type UnexpectedToken struct {
	Expected    []token.Token
	Encountered token.Item
	Line        int
}

func (e UnexpectedToken) Error() string {
	expected := make([]string, len(e.Expected))
	for i, t := range e.Expected {
		expected[i] = t.String()
	}
	switch len(expected) {
	case 0:
		return fmt.Sprintf("unexpected token %q", e.Encountered.String())
	case 1:
		return fmt.Sprintf("unexpected token %q, expected %s", e.Encountered.String(), expected[0])
	default:
		return fmt.Sprintf("unexpected token %q, expected one of (%s)", e.Encountered.String(), strings.Join(expected, ", "))
	}
}

// UndefinedName is raised when a bare identifier resolves to nothing, in
// either the active call's parameters or the globals. Suggestion is a
// fuzzy-matched existing name, empty if nothing was close.
type UndefinedName struct {
	Name       string
	Suggestion string
}

func (e UndefinedName) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("undefined name %q", e.Name)
	}
	return fmt.Sprintf("undefined name %q, did you mean %q?", e.Name, e.Suggestion)
}
