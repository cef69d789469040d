package eval

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/FollowTheProcess/sputter/token"
	"github.com/FollowTheProcess/sputter/value"
)

// useRegion records the buffer span a spliced file's content occupies.
// There is no call-stack-like return event when a splice's content
// finishes -- splicing just inserts bytes for the ordinary top-level loop
// to read through later -- so the file a nested `use` belongs to is found
// by looking up which recorded region currently contains the cursor,
// rather than by any push/pop of call frames.
type useRegion struct {
	path  string
	start int
	end   int
}

// evalUse evaluates `use "pattern"`. Unlike every other paren form it
// consumes its own closing `)`, the one exception parse_paren_expr makes
// for the Use branch. pattern may glob-expand to several files, each
// spliced in sorted order; a leading `~` is substituted with
// $SPUTTER_INCLUDE.
func (e *Eval) evalUse() value.Value {
	strTok := e.next()
	if strTok.Tok != token.STRING {
		return e.unexpected(strTok, token.STRING)
	}
	// Looked up before the closing `)`: past it the cursor can sit exactly
	// on the using file's region end, outside every region.
	parent := e.currentUseFile()
	e.expect(token.RPAREN)

	pattern := e.resolvePath(strTok.Value)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return e.fail(strTok, fmt.Sprintf("invalid use pattern %q: %s", strTok.Value, err))
	}
	if len(matches) == 0 {
		return e.fail(strTok, fmt.Sprintf("use %q matched no files", strTok.Value))
	}
	sort.Strings(matches)

	contents := make([][]byte, len(matches))
	for i, path := range matches {
		if err := e.includes.Use(parent, path); err != nil {
			return e.fail(strTok, err.Error())
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return e.fail(strTok, fmt.Sprintf("could not read %q: %s", path, err))
		}
		contents[i] = raw
	}

	// Buffer.Splice always inserts immediately ahead of the cursor, so
	// the matches are spliced in reverse: the last match ends up
	// furthest from the cursor and the first match nearest, leaving the
	// whole set in sorted order in the final buffer. Each match gets a
	// trailing newline so the next one starts on a line of its own.
	insertAt := e.buf.Index()
	grown := 0
	for i := len(matches) - 1; i >= 0; i-- {
		e.buf.Splice(append(contents[i], '\n'))
		grown += len(contents[i]) + 2
	}

	// Already recorded regions move with their bytes past the splice point.
	for i := range e.regions {
		if e.regions[i].start >= insertAt {
			e.regions[i].start += grown
		}
		if e.regions[i].end > insertAt {
			e.regions[i].end += grown
		}
	}

	pos := e.buf.Index()
	for i, path := range matches {
		end := pos + len(contents[i])
		e.regions = append(e.regions, useRegion{path: path, start: pos, end: end})
		pos = end + 1
		e.log.Debug("spliced %q via use %q", path, strTok.Value)
	}

	return value.NoneValue
}

// resolvePath substitutes a leading `~` with $SPUTTER_INCLUDE and, if the
// result isn't already absolute, resolves it relative to the directory of
// the file currently loaded into the buffer.
func (e *Eval) resolvePath(raw string) string {
	if strings.HasPrefix(raw, "~") {
		raw = os.Getenv("SPUTTER_INCLUDE") + strings.TrimPrefix(raw, "~")
	}
	if !filepath.IsAbs(raw) {
		raw = filepath.Join(e.dir, raw)
	}
	return raw
}

// currentUseFile returns the path of the innermost recorded region
// containing the cursor -- the file whose `use` directive is currently
// executing -- or "" if the cursor sits outside every recorded region, a
// REPL session with no entry file of its own.
func (e *Eval) currentUseFile() string {
	best := ""
	bestSpan := -1
	pos := e.buf.Index()
	for _, r := range e.regions {
		if pos >= r.start && pos < r.end {
			span := r.end - r.start
			if bestSpan == -1 || span < bestSpan {
				best = r.path
				bestSpan = span
			}
		}
	}
	return best
}
