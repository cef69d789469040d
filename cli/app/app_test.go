package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FollowTheProcess/sputter/iostream"
)

func TestAppRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.sptr")
	if err := os.WriteFile(path, []byte(`(print (+ 1 2))`), 0o644); err != nil {
		t.Fatal(err)
	}

	stream := iostream.Test()
	a := New(stream)
	a.Options.File = path

	if err := a.Run(); err != nil {
		t.Fatalf("App.Run() error = %v", err)
	}
	if got := stream.Stdout.(interface{ String() string }).String(); got != "3" {
		t.Errorf("stdout = %q, want %q", got, "3")
	}
}

func TestAppShowBuiltins(t *testing.T) {
	stream := iostream.Test()
	a := New(stream)
	a.Options.ShowBuiltins = true

	if err := a.Run(); err != nil {
		t.Fatalf("App.Run() error = %v", err)
	}
	got := stream.Stdout.(interface{ String() string }).String()
	if got == "" {
		t.Error("expected --builtins output, got empty string")
	}
}

func TestAppShowEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.sptr")
	if err := os.WriteFile(path, []byte(`(def (answer) 42)`), 0o644); err != nil {
		t.Fatal(err)
	}

	stream := iostream.Test()
	a := New(stream)
	a.Options.File = path
	a.Options.ShowEnv = true

	if err := a.Run(); err != nil {
		t.Fatalf("App.Run() error = %v", err)
	}
	got := stream.Stdout.(interface{ String() string }).String()
	if !contains(got, "answer") {
		t.Errorf("stdout = %q, want it to mention %q", got, "answer")
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
