package form

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapSkipsInvalid(t *testing.T) {
	t.Parallel()

	called := false
	r := Map(Invalid[int]("nope"), func(n int) string {
		called = true
		return fmt.Sprint(n)
	})
	if called {
		t.Fatal("mapping function ran on an Invalid result")
	}
	if r.IsOk() || r.Reason() != "nope" {
		t.Fatalf("result = %+v, want Invalid(nope)", r)
	}
	if !IsValidation(r.Err()) {
		t.Fatalf("Err() = %v, want validation error", r.Err())
	}
}

func TestMapOk(t *testing.T) {
	t.Parallel()

	r := Map(Ok(21), func(n int) int { return n * 2 })
	v, ok := r.Value()
	if !ok || v != 42 {
		t.Fatalf("Value() = %d, %v; want 42, true", v, ok)
	}
	if r.Err() != nil {
		t.Fatalf("Err() = %v, want nil", r.Err())
	}
}

func TestFailKeepsMessage(t *testing.T) {
	t.Parallel()

	r := Fail[int](errors.New("broken"))
	if r.Reason() != "broken" {
		t.Fatalf("Reason() = %q", r.Reason())
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	out := Render(Ok(3), func(n int) []string { return []string{fmt.Sprint(n)} })
	if out.Status != StatusOk || len(out.Lines) != 1 || out.Lines[0] != "3" {
		t.Fatalf("ok outcome = %+v", out)
	}
	out = Render(Invalid[int]("bad"), func(int) []string {
		t.Fatal("format ran on Invalid")
		return nil
	})
	if out.Status != StatusInvalid || out.Message != "bad" {
		t.Fatalf("invalid outcome = %+v", out)
	}
	if Pending().Status != StatusPending {
		t.Fatal("Pending() is not pending")
	}
}
