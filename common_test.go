package hotscript

import (
	"errors"
	"testing"
)

// num parses a literal that the test knows is well-formed.
func num(t *testing.T, s string) Operand {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return v
}

// wantNum asserts a final numeric result with the given decimal text.
func wantNum(t *testing.T, v Value, want string) {
	t.Helper()
	x, ok := v.Number()
	if !ok {
		t.Fatalf("expected a number, got %s (tag %d)", v, v.Tag)
	}
	if got := x.String(); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

// wantPending asserts the value is a partial binding with n open slots.
func wantPending(t *testing.T, v Value, open int) *Binding {
	t.Helper()
	b, ok := v.Pending()
	if !ok {
		t.Fatalf("expected a pending binding, got %s", v)
	}
	if b.Open() != open {
		t.Fatalf("binding %s has %d open slot(s), want %d", b, b.Open(), open)
	}
	return b
}

// wantErrCode asserts err carries the given error code.
func wantErrCode(t *testing.T, err error, sentinel *Error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", sentinel.Code)
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected %s error, got %v", sentinel.Code, err)
	}
}

func mustOp(t *testing.T, name string) *Descriptor {
	t.Helper()
	d, err := Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", name, err)
	}
	return d
}
