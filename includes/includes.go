// Package includes tracks the chain of files spliced in by `use`, so a
// file that would splice one of its own ancestors is reported as a cyclic
// use instead of recursing the splice forever.
package includes

import "github.com/FollowTheProcess/sputter/graph"

// Tracker records every `use` edge seen so far (source file uses target
// file) across an entire run, built on graph.Graph's cycle-rejecting edges.
type Tracker struct {
	g *graph.Graph
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{g: graph.New()}
}

// Use records that `from` uses `to`, returning an error if that would close
// a cycle. `from` is the empty string when the using side has no file of
// its own (a REPL session), which can never itself be the target of a cycle.
func (t *Tracker) Use(from, to string) error {
	if from == "" {
		t.g.EnsureVertex(to)
		return nil
	}
	t.g.EnsureVertex(from)
	t.g.EnsureVertex(to)
	return t.g.AddEdge(from, to)
}
