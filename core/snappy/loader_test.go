package snappy

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDefaultLoaderDisabled(t *testing.T) {
	l := NewLoader()
	if l.Available() {
		t.Fatalf("gate ships disabled, Available must be false")
	}
	// Non-forcing wraps answer "no wrapping", never an error.
	if l.WrapInput(strings.NewReader("x")) != nil {
		t.Errorf("WrapInput must return nil when unavailable")
	}
	if l.WrapOutput(io.Discard) != nil {
		t.Errorf("WrapOutput must return nil when unavailable")
	}
}

func TestMustWrapErrorNamesCause(t *testing.T) {
	explicit := newLoader(true)
	_, err := explicit.MustWrapInput(strings.NewReader("x"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "explicitly disabled") {
		t.Errorf("explicit-disable cause missing from %q", err)
	}
	if _, err := explicit.MustWrapOutput(io.Discard); !errors.Is(err, ErrUnavailable) {
		t.Errorf("MustWrapOutput: want ErrUnavailable, got %v", err)
	}
}

func TestEnabledLoaderRoundTrip(t *testing.T) {
	l := newLoader(false)
	if !l.Available() {
		t.Fatalf("codec probe failed unexpectedly")
	}

	var buf bytes.Buffer
	w := l.WrapOutput(&buf)
	if w == nil {
		t.Fatalf("WrapOutput returned nil while available")
	}
	const payload = "r1\t0\tchr1\t100\t60\t4M\t*\t0\t0\tACGT\tFFFF\n"
	if _, err := io.WriteString(w, payload); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	r := l.WrapInput(&buf)
	if r == nil {
		t.Fatalf("WrapInput returned nil while available")
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != payload {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestMustWrapSucceedsWhenAvailable(t *testing.T) {
	l := newLoader(false)
	if _, err := l.MustWrapInput(strings.NewReader("")); err != nil {
		t.Fatalf("MustWrapInput: %v", err)
	}
	if _, err := l.MustWrapOutput(io.Discard); err != nil {
		t.Fatalf("MustWrapOutput: %v", err)
	}
}
