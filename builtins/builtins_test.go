package builtins_test

import (
	"testing"

	"github.com/FollowTheProcess/sputter/builtins"
	"github.com/FollowTheProcess/sputter/value"
)

// fakeContext is a minimal builtins.Context for testing, recording what was
// written and returning scripted stdin lines and shell results.
type fakeContext struct {
	written    string
	lines      []string
	shellOut   string
	shellErr   error
	exitCalled bool
	exitCode   int
}

func (f *fakeContext) Write(s string) { f.written += s }

func (f *fakeContext) ReadLine() (string, bool) {
	if len(f.lines) == 0 {
		return "", false
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, true
}

func (f *fakeContext) RunShell(cmd string) (string, error) { return f.shellOut, f.shellErr }

func (f *fakeContext) Exit(code int) { f.exitCalled = true; f.exitCode = code }

func TestGetKnownAndUnknown(t *testing.T) {
	if _, ok := builtins.Get("print"); !ok {
		t.Fatal("Get(print) ok = false, want true")
	}
	if _, ok := builtins.Get("nonexistent"); ok {
		t.Fatal("Get(nonexistent) ok = true, want false")
	}
}

func TestPrintWritesRepr(t *testing.T) {
	fn, _ := builtins.Get("print")
	ctx := &fakeContext{}
	_, err := fn(ctx, []value.Value{value.NewInt(42)})
	if err != nil {
		t.Fatalf("print returned error: %v", err)
	}
	if ctx.written != "42" {
		t.Errorf("written = %q, want %q", ctx.written, "42")
	}
}

func TestPrintlnAddsNewline(t *testing.T) {
	fn, _ := builtins.Get("println")
	ctx := &fakeContext{}
	_, err := fn(ctx, []value.Value{value.NewString("hi")})
	if err != nil {
		t.Fatalf("println returned error: %v", err)
	}
	if ctx.written != "hi\n" {
		t.Errorf("written = %q, want %q", ctx.written, "hi\n")
	}
}

func TestReadlnReturnsLine(t *testing.T) {
	fn, _ := builtins.Get("readln")
	ctx := &fakeContext{lines: []string{"hello"}}
	got, err := fn(ctx, nil)
	if err != nil {
		t.Fatalf("readln returned error: %v", err)
	}
	if got.Kind != value.String || got.S != "hello" {
		t.Errorf("readln = %+v, want string %q", got, "hello")
	}
}

func TestReadlnEOFReturnsNone(t *testing.T) {
	fn, _ := builtins.Get("readln")
	ctx := &fakeContext{}
	got, err := fn(ctx, nil)
	if err != nil {
		t.Fatalf("readln returned error: %v", err)
	}
	if got.Kind != value.None {
		t.Errorf("readln at EOF = %+v, want None", got)
	}
}

func TestFormatSubstitutesSameValueEveryPlaceholder(t *testing.T) {
	fn, _ := builtins.Get("format")
	ctx := &fakeContext{}
	got, err := fn(ctx, []value.Value{value.NewString("% plus % is not %"), value.NewInt(1)})
	if err != nil {
		t.Fatalf("format returned error: %v", err)
	}
	if want := "1 plus 1 is not 1"; got.S != want {
		t.Errorf("format = %q, want %q", got.S, want)
	}
}

func TestFormatWrongArgCountErrors(t *testing.T) {
	fn, _ := builtins.Get("format")
	ctx := &fakeContext{}
	_, err := fn(ctx, []value.Value{value.NewString("%")})
	if err == nil {
		t.Fatal("format with 1 arg returned nil error")
	}
}

func TestExitCallsContext(t *testing.T) {
	fn, _ := builtins.Get("exit")
	ctx := &fakeContext{}
	_, err := fn(ctx, []value.Value{value.NewInt(2)})
	if err != nil {
		t.Fatalf("exit returned error: %v", err)
	}
	if !ctx.exitCalled || ctx.exitCode != 2 {
		t.Errorf("exitCalled=%v exitCode=%d, want true, 2", ctx.exitCalled, ctx.exitCode)
	}
}

func TestGetBuiltinPositiveIndex(t *testing.T) {
	fn, _ := builtins.Get("get")
	ctx := &fakeContext{}
	list := value.NewList([]value.Value{value.NewInt(10), value.NewInt(20), value.NewInt(30)})
	got, err := fn(ctx, []value.Value{list, value.NewInt(1)})
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if got.I != 20 {
		t.Errorf("get[1] = %d, want 20", got.I)
	}
}

func TestGetBuiltinNegativeIndex(t *testing.T) {
	fn, _ := builtins.Get("get")
	ctx := &fakeContext{}
	list := value.NewList([]value.Value{value.NewInt(10), value.NewInt(20), value.NewInt(30)})
	got, err := fn(ctx, []value.Value{list, value.NewInt(-1)})
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if got.I != 30 {
		t.Errorf("get[-1] = %d, want 30", got.I)
	}
}

func TestGetBuiltinOutOfRange(t *testing.T) {
	fn, _ := builtins.Get("get")
	ctx := &fakeContext{}
	list := value.NewList([]value.Value{value.NewInt(1)})
	_, err := fn(ctx, []value.Value{list, value.NewInt(5)})
	if err == nil {
		t.Fatal("get out of range returned nil error")
	}
}

func TestLenListAndString(t *testing.T) {
	fn, _ := builtins.Get("len")
	ctx := &fakeContext{}
	list := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2)})
	got, err := fn(ctx, []value.Value{list})
	if err != nil {
		t.Fatalf("len returned error: %v", err)
	}
	if got.I != 2 {
		t.Errorf("len(list) = %d, want 2", got.I)
	}

	got, err = fn(ctx, []value.Value{value.NewString("abcd")})
	if err != nil {
		t.Fatalf("len returned error: %v", err)
	}
	if got.I != 4 {
		t.Errorf("len(string) = %d, want 4", got.I)
	}
}

func TestRangeBuildsList(t *testing.T) {
	fn, _ := builtins.Get("range")
	ctx := &fakeContext{}
	got, err := fn(ctx, []value.Value{value.NewInt(2), value.NewInt(5)})
	if err != nil {
		t.Fatalf("range returned error: %v", err)
	}
	want := []int64{2, 3, 4}
	if len(got.L) != len(want) {
		t.Fatalf("range length = %d, want %d", len(got.L), len(want))
	}
	for i, w := range want {
		if got.L[i].I != w {
			t.Errorf("range[%d] = %d, want %d", i, got.L[i].I, w)
		}
	}
}

func TestShellReturnsRunnerOutput(t *testing.T) {
	fn, _ := builtins.Get("shell")
	ctx := &fakeContext{shellOut: "hello"}
	got, err := fn(ctx, []value.Value{value.NewString("echo hello")})
	if err != nil {
		t.Fatalf("shell returned error: %v", err)
	}
	if got.S != "hello" {
		t.Errorf("shell = %q, want %q", got.S, "hello")
	}
}
