// Package report implements sputter's single error taxonomy and reporter:
// every fatal error, whatever raised it, is rendered the same way and ends
// the process.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/FollowTheProcess/sputter/buffer"
	"github.com/fatih/color"
)

// Reporter renders a fatal error pointing at the offending source position
// and exits the process with status 1. It is the Go rendering of
// parser.rs's `error` function.
type Reporter struct {
	stream   io.Writer
	colorOff bool
	exit     func(int)
}

// SetExitFunc overrides how Report terminates the process, for tests that
// need to observe the exit code without actually exiting.
func (r *Reporter) SetExitFunc(f func(int)) {
	r.exit = f
}

// New returns a Reporter writing to w. If colorOff is true the rendered
// message carries no ANSI color codes, for `-o/--color-off` or a
// non-terminal stream.
func New(w io.Writer, colorOff bool) *Reporter {
	return &Reporter{stream: w, colorOff: colorOff, exit: os.Exit}
}

// Report renders "Error at line N: msg", the offending line, and a `^`
// caret under the column the buffer's cursor sat at before the token that
// triggered the error, then terminates the process with status 1.
func (r *Reporter) Report(buf *buffer.Buffer, msg string) {
	pos := buf.PrevIndex()
	line, text := buf.Line(pos)
	col := buf.Column(pos)

	header := fmt.Sprintf("Error at line %d: %s", line, msg)
	caret := strings.Repeat(" ", col) + "^"

	red := color.New(color.FgRed)
	if r.colorOff {
		red.DisableColor()
	}
	red.Fprintln(r.stream, header)
	fmt.Fprintln(r.stream, text)
	fmt.Fprintln(r.stream, caret)

	r.exit(1)
}
