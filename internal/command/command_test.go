package command

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestDispatch(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	called := 0
	r.Register("zoom-in", func() { called++ })

	if !r.Dispatch("zoom-in") {
		t.Fatal("Dispatch of a registered command should succeed")
	}
	if called != 1 {
		t.Errorf("handler called %d times, want 1", called)
	}
}

func TestDispatchUnknownIsNoop(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	if r.Dispatch("no-such-command") {
		t.Error("Dispatch of an unknown command should return false")
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry(zerolog.Nop())

	first, second := false, false
	r.Register("quit", func() { first = true })
	r.Register("quit", func() { second = true })

	r.Dispatch("quit")
	if first || !second {
		t.Error("re-registering should replace the handler")
	}
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry(zerolog.Nop())
	r.Register("zoom-in", func() {})
	r.Register("next-page", func() {})
	r.Register("quit", func() {})

	names := r.Names()
	want := []string{"next-page", "quit", "zoom-in"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
