package env_test

import (
	"testing"

	"github.com/FollowTheProcess/sputter/env"
	"github.com/FollowTheProcess/sputter/value"
)

func TestSetGlobalAndGet(t *testing.T) {
	e := env.New()
	e.SetGlobal("x", value.NewInt(5))
	got, ok := e.Get("x")
	if !ok {
		t.Fatal("Get(x) ok = false, want true")
	}
	if got.I != 5 {
		t.Errorf("Get(x) = %d, want 5", got.I)
	}
}

func TestCallFrameParamsShadowGlobals(t *testing.T) {
	e := env.New()
	e.SetGlobal("x", value.NewInt(1))
	e.PushCall(env.CallFrame{
		Params: []value.Param{{Name: "x"}},
		Args:   []value.Value{value.NewInt(99)},
	})
	got, ok := e.Get("x")
	if !ok || got.I != 99 {
		t.Errorf("Get(x) inside call = %+v, want 99", got)
	}
	e.PopCall()
	got, ok = e.Get("x")
	if !ok || got.I != 1 {
		t.Errorf("Get(x) after call = %+v, want 1", got)
	}
}

func TestLetRejectsRebind(t *testing.T) {
	e := env.New()
	e.SetGlobal("x", value.NewInt(1))
	e.PushScope()
	if err := e.Let("x", value.NewInt(2)); err == nil {
		t.Error("Let(x) over existing global returned nil error, want error")
	}
	e.PopScope()
}

func TestPopScopeRemovesBinding(t *testing.T) {
	e := env.New()
	e.PushScope()
	if err := e.Let("y", value.NewInt(10)); err != nil {
		t.Fatalf("Let(y) returned error: %v", err)
	}
	if _, ok := e.Get("y"); !ok {
		t.Fatal("Get(y) ok = false before PopScope, want true")
	}
	e.PopScope()
	if _, ok := e.Get("y"); ok {
		t.Error("Get(y) ok = true after PopScope, want false")
	}
}

func TestShadowCloneStripsLetBindings(t *testing.T) {
	e := env.New()
	e.SetGlobal("add", value.NewFunc(value.Func{Name: "add"}))
	e.PushScope()
	if err := e.Let("local", value.NewInt(1)); err != nil {
		t.Fatalf("Let returned error: %v", err)
	}
	clone := e.ShadowClone()
	if _, ok := clone["local"]; ok {
		t.Error("ShadowClone retained a let-scoped name")
	}
	if _, ok := clone["add"]; !ok {
		t.Error("ShadowClone dropped a non-let global")
	}
	e.PopScope()
}

func TestSuggestFindsClosest(t *testing.T) {
	e := env.New()
	e.SetGlobal("length", value.NewInt(1))
	got := e.Suggest("lenth")
	if got != "length" {
		t.Errorf("Suggest(lenth) = %q, want %q", got, "length")
	}
}
