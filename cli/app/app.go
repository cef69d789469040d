// Package app implements sputter's CLI functionality; the cobra command
// in cli/cmd defers execution to the exported methods here.
package app

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"

	"github.com/FollowTheProcess/sputter/buffer"
	"github.com/FollowTheProcess/sputter/builtins"
	"github.com/FollowTheProcess/sputter/eval"
	"github.com/FollowTheProcess/sputter/iostream"
	"github.com/FollowTheProcess/sputter/logger"
	"github.com/FollowTheProcess/sputter/report"
	"github.com/FollowTheProcess/sputter/shell"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/juju/ansiterm/tabwriter"
)

// defaultStackSizeMB is the ceiling applied to the goroutine that runs the
// evaluator when -s/--stack-size is not given, the same default the
// original interpreter's dedicated thread used.
const defaultStackSizeMB = 32

// prompt is printed before every line read in an interactive session.
const prompt = ">>> "

// App represents the sputter program.
type App struct {
	Stream  iostream.IOStream
	Options *Options
	logger  logger.Logger
}

// Options holds all the flag options for sputter, at their zero values if
// the flags were not set and the value of the flag otherwise.
type Options struct {
	File         string // Positional [FILE] argument, "" for REPL mode
	StackSize    int    // -s/--stack-size, in MiB
	ColorOff     bool   // -o/--color-off
	Verbose      bool   // -v/--verbose
	ShowBuiltins bool   // --builtins
	ShowEnv      bool   // --env
}

// New creates and returns a new App.
func New(stream iostream.IOStream) *App {
	return &App{
		Stream:  stream,
		Options: &Options{},
	}
}

// Run is the entry point to the sputter program: it loads the requested
// file (or starts a REPL if none was given), runs the evaluator on its own
// goroutine with a bounded stack, and handles the --builtins/--env
// introspection flags.
func (a *App) Run() error {
	log, err := a.setup()
	if err != nil {
		return err
	}
	defer log.Sync() // nolint: errcheck
	a.logger = log

	if a.Options.ShowBuiltins {
		return a.showBuiltins()
	}

	reporter := report.New(a.Stream.Stderr, a.Options.ColorOff)
	runner := shell.NewIntegratedRunner()

	if a.Options.File != "" {
		return a.runFile(reporter, runner)
	}
	return a.runREPL(reporter, runner)
}

// setup loads a .env file (if present in the cwd) and builds the logger.
func (a *App) setup() (logger.Logger, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	dotenvPath := filepath.Join(cwd, ".env")
	if exists(dotenvPath) {
		if err := godotenv.Load(dotenvPath); err != nil {
			return nil, fmt.Errorf("could not load .env file: %w", err)
		}
	}

	log, err := logger.NewZapLogger(a.Options.Verbose)
	if err != nil {
		return nil, err
	}
	return log, nil
}

// runFile loads the file named by a.Options.File, evaluates it on a
// goroutine whose stack is bounded per -s/--stack-size, and (if requested)
// prints the bound globals afterwards.
func (a *App) runFile(reporter *report.Reporter, runner shell.Runner) error {
	path, err := filepath.Abs(a.Options.File)
	if err != nil {
		return err
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	buf := buffer.New(contents)
	e := eval.New(buf, a.Stream, a.logger, runner, reporter, filepath.Dir(path), path)

	a.runBounded(func() { e.Run() })

	if a.Options.ShowEnv {
		return a.showEnv(e)
	}
	return nil
}

// runREPL starts an interactive read-eval-print loop over a.Stream.
func (a *App) runREPL(reporter *report.Reporter, runner shell.Runner) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	buf := buffer.Empty()
	e := eval.New(buf, a.Stream, a.logger, runner, reporter, cwd, "")

	resultStyle := color.New(color.FgCyan, color.Bold)
	if a.Options.ColorOff {
		resultStyle.DisableColor()
	}

	scanner := bufio.NewScanner(a.Stream.Stdin)
	for {
		fmt.Fprint(a.Stream.Stdout, prompt)
		if !scanner.Scan() {
			return nil
		}
		buf.AppendLine(scanner.Text())

		var repr string
		a.runBounded(func() { repr = e.Run().Repr() })
		resultStyle.Fprintf(a.Stream.Stdout, "=> %s\n", repr)
	}
}

// runBounded runs fn on its own goroutine with its max stack size bounded
// by -s/--stack-size (default 32MiB), the Go analogue of the original
// interpreter's dedicated thread with a configurable stack.
func (a *App) runBounded(fn func()) {
	size := a.Options.StackSize
	if size <= 0 {
		size = defaultStackSizeMB
	}
	debug.SetMaxStackSize(size * 1024 * 1024)

	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	<-done
}

// showBuiltins prints every builtin function, its arity and one-line
// summary, tab-aligned, for the --builtins introspection flag.
func (a *App) showBuiltins() error {
	writer := tabwriter.NewWriter(a.Stream.Stdout, 0, 8, 1, '\t', tabwriter.AlignRight)

	titleStyle := color.New(color.FgHiWhite, color.Bold)
	nameStyle := color.New(color.FgHiCyan, color.Bold)
	descStyle := color.New(color.FgHiBlack, color.Italic)
	if a.Options.ColorOff {
		titleStyle.DisableColor()
		nameStyle.DisableColor()
		descStyle.DisableColor()
	}

	fmt.Fprintln(a.Stream.Stdout, "Builtin functions:")
	titleStyle.Fprintln(writer, "Name\tArity\tSummary")

	for _, doc := range builtins.Docs {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", nameStyle.Sprint(doc.Name), doc.Arity, descStyle.Sprint(doc.Summary))
	}

	return writer.Flush()
}

// showEnv prints every currently bound global name and its representation,
// sorted, for the --env introspection flag.
func (a *App) showEnv(e *eval.Eval) error {
	writer := tabwriter.NewWriter(a.Stream.Stdout, 0, 8, 1, '\t', tabwriter.AlignRight)

	titleStyle := color.New(color.FgHiWhite, color.Bold)
	if a.Options.ColorOff {
		titleStyle.DisableColor()
	}

	names := e.Env().GlobalNames()
	sort.Strings(names)

	fmt.Fprintln(a.Stream.Stdout, "Bound globals:")
	titleStyle.Fprintln(writer, "Name\tValue")

	for _, name := range names {
		v, _ := e.Env().Get(name)
		fmt.Fprintf(writer, "%s\t%s\n", name, v.Repr())
	}

	return writer.Flush()
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
