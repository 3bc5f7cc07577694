package mode

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/dshills/folio/internal/input/key"
	"github.com/dshills/folio/internal/input/keymap"
)

// fakeDispatcher records dispatched command names.
type fakeDispatcher struct {
	known      map[string]bool
	dispatched []string
}

func newFakeDispatcher(known ...string) *fakeDispatcher {
	d := &fakeDispatcher{known: make(map[string]bool)}
	for _, name := range known {
		d.known[name] = true
	}
	return d
}

func (d *fakeDispatcher) Dispatch(name string) bool {
	if !d.known[name] {
		return false
	}
	d.dispatched = append(d.dispatched, name)
	return true
}

func (d *fakeDispatcher) Known(name string) bool { return d.known[name] }

// fakeFinder records find/till calls.
type fakeFinder struct {
	calls []string
}

func (f *fakeFinder) Find(ch byte, forward bool) bool {
	f.calls = append(f.calls, "find:"+string(ch)+fwd(forward))
	return true
}

func (f *fakeFinder) Till(ch byte, forward bool) bool {
	f.calls = append(f.calls, "till:"+string(ch)+fwd(forward))
	return true
}

func fwd(forward bool) string {
	if forward {
		return ">"
	}
	return "<"
}

// fakeSearcher records queries.
type fakeSearcher struct {
	queries []string
}

func (s *fakeSearcher) Search(query string, forward bool) bool {
	s.queries = append(s.queries, query+fwd(forward))
	return true
}

// fakeToc toggles visibility.
type fakeToc struct {
	visible bool
}

func (t *fakeToc) Visible() bool { return t.visible }

func newController(d *fakeDispatcher) (*Controller, *fakeFinder, *fakeSearcher, *fakeToc) {
	f := &fakeFinder{}
	s := &fakeSearcher{}
	toc := &fakeToc{}
	c := NewController(keymap.Default(), d, f, s, toc, zerolog.Nop())
	return c, f, s, toc
}

func press(c *Controller, specs ...string) {
	for _, spec := range specs {
		c.HandleKey(key.MustParse(spec))
	}
}

func typeText(c *Controller, text string) {
	for _, r := range text {
		c.HandleKey(key.NewRuneEvent(r, key.ModNone))
	}
}

func TestNormalDispatchesBoundKey(t *testing.T) {
	d := newFakeDispatcher("scroll-down")
	c, _, _, _ := newController(d)

	press(c, "j")
	if len(d.dispatched) != 1 || d.dispatched[0] != "scroll-down" {
		t.Errorf("dispatched = %v, want [scroll-down]", d.dispatched)
	}
}

func TestNormalIgnoresUnboundKey(t *testing.T) {
	d := newFakeDispatcher()
	c, _, _, _ := newController(d)

	press(c, "Z")
	if len(d.dispatched) != 0 {
		t.Errorf("dispatched = %v, want none", d.dispatched)
	}
	if c.Mode() != Normal {
		t.Errorf("Mode() = %v, want Normal", c.Mode())
	}
}

func TestCommandLineExecute(t *testing.T) {
	d := newFakeDispatcher("zoom-in")
	c, _, _, _ := newController(d)

	press(c, ":")
	if c.Mode() != Command {
		t.Fatalf("Mode() = %v after colon, want Command", c.Mode())
	}
	typeText(c, "zoom-in")
	press(c, "Enter")

	if c.Mode() != Normal {
		t.Errorf("Mode() = %v after Enter, want Normal", c.Mode())
	}
	if len(d.dispatched) != 1 || d.dispatched[0] != "zoom-in" {
		t.Errorf("dispatched = %v, want [zoom-in]", d.dispatched)
	}
}

func TestCommandLineIgnoresExtraArguments(t *testing.T) {
	d := newFakeDispatcher("zoom-in")
	c, _, _, _ := newController(d)

	press(c, ":")
	typeText(c, "zoom-in   fast now")
	press(c, "Enter")

	if len(d.dispatched) != 1 || d.dispatched[0] != "zoom-in" {
		t.Errorf("dispatched = %v, want [zoom-in]", d.dispatched)
	}
}

func TestCommandLineUnknownCommandNoop(t *testing.T) {
	d := newFakeDispatcher("zoom-in")
	c, _, _, _ := newController(d)

	press(c, ":")
	typeText(c, "frobnicate")
	press(c, "Enter")

	if len(d.dispatched) != 0 {
		t.Errorf("dispatched = %v, want none", d.dispatched)
	}
	if c.Mode() != Normal {
		t.Errorf("Mode() = %v, want Normal after unknown command", c.Mode())
	}
}

func TestCommandLineEscapeDiscards(t *testing.T) {
	d := newFakeDispatcher("quit")
	c, _, _, _ := newController(d)

	press(c, ":")
	typeText(c, "quit")
	press(c, "Esc")

	if c.Mode() != Normal {
		t.Errorf("Mode() = %v, want Normal", c.Mode())
	}
	if len(d.dispatched) != 0 {
		t.Errorf("dispatched = %v, want none after Escape", d.dispatched)
	}
}

func TestCommandLineEditing(t *testing.T) {
	d := newFakeDispatcher()
	c, _, _, _ := newController(d)

	press(c, ":")
	typeText(c, "qit")
	press(c, "Left", "Left")
	typeText(c, "u")

	cl := c.CommandLine()
	if cl.Text() != "quit" {
		t.Errorf("Text() = %q, want %q", cl.Text(), "quit")
	}
	if cl.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", cl.Cursor())
	}

	press(c, "BS")
	if cl.Text() != "qit" {
		t.Errorf("Text() = %q after backspace, want %q", cl.Text(), "qit")
	}
}

func TestFindPending(t *testing.T) {
	d := newFakeDispatcher()
	c, f, _, _ := newController(d)

	press(c, "f")
	if c.Mode() != FindPending {
		t.Fatalf("Mode() = %v, want FindPending", c.Mode())
	}
	if c.Pending() != FindForward {
		t.Fatalf("Pending() = %v, want FindForward", c.Pending())
	}

	press(c, "x")
	if c.Mode() != Normal {
		t.Errorf("Mode() = %v after resolution, want Normal", c.Mode())
	}
	if len(f.calls) != 1 || f.calls[0] != "find:x>" {
		t.Errorf("finder calls = %v, want [find:x>]", f.calls)
	}
}

func TestFindPendingVariants(t *testing.T) {
	tests := []struct {
		op   string
		want string
	}{
		{"F", "find:x<"},
		{"t", "till:x>"},
		{"T", "till:x<"},
	}
	for _, tt := range tests {
		d := newFakeDispatcher()
		c, f, _, _ := newController(d)

		press(c, tt.op, "x")
		if len(f.calls) != 1 || f.calls[0] != tt.want {
			t.Errorf("operator %q: finder calls = %v, want [%s]", tt.op, f.calls, tt.want)
		}
	}
}

func TestFindPendingEscapeCancels(t *testing.T) {
	d := newFakeDispatcher()
	c, f, _, _ := newController(d)

	press(c, "f", "Esc")
	if c.Mode() != Normal || c.Pending() != FindNone {
		t.Errorf("Mode() = %v Pending() = %v, want Normal/FindNone", c.Mode(), c.Pending())
	}
	if len(f.calls) != 0 {
		t.Errorf("finder calls = %v, want none after cancel", f.calls)
	}
}

func TestSearchPrompt(t *testing.T) {
	d := newFakeDispatcher()
	c, _, s, _ := newController(d)

	c.BeginSearchPrompt(true)
	if c.CommandLine().Prompt() != '/' {
		t.Errorf("Prompt() = %q, want '/'", c.CommandLine().Prompt())
	}
	typeText(c, "lemma 4")
	press(c, "Enter")

	if len(s.queries) != 1 || s.queries[0] != "lemma 4>" {
		t.Errorf("queries = %v, want [lemma 4>]", s.queries)
	}

	c.BeginSearchPrompt(false)
	typeText(c, "proof")
	press(c, "Enter")
	if len(s.queries) != 2 || s.queries[1] != "proof<" {
		t.Errorf("queries = %v, want backward query", s.queries)
	}
}

func TestTocOverrideBlocksPromptsAndFind(t *testing.T) {
	d := newFakeDispatcher("toc-next", "quit")
	c, f, _, toc := newController(d)
	toc.visible = true

	press(c, ":")
	if c.Mode() != Normal {
		t.Errorf("':' with TOC open entered %v, want Normal", c.Mode())
	}

	press(c, "f", "o")
	if c.Mode() != Normal {
		t.Errorf("'f' with TOC open entered %v, want Normal", c.Mode())
	}
	if len(f.calls) != 0 {
		t.Errorf("find calls = %v, want none", f.calls)
	}
	if len(d.dispatched) != 0 {
		t.Errorf("dispatched = %v, want none", d.dispatched)
	}
}

func TestTocOverride(t *testing.T) {
	d := newFakeDispatcher("toc-next", "toc-prev", "toc-select", "toc-toggle", "scroll-down", "zoom-in")
	c, _, _, toc := newController(d)
	toc.visible = true

	press(c, "j", "k", "Enter", "+")

	want := []string{"toc-next", "toc-prev", "toc-select"}
	if len(d.dispatched) != len(want) {
		t.Fatalf("dispatched = %v, want %v", d.dispatched, want)
	}
	for i := range want {
		if d.dispatched[i] != want[i] {
			t.Errorf("dispatched[%d] = %q, want %q", i, d.dispatched[i], want[i])
		}
	}
}
