package search

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dshills/folio/internal/cursor"
	"github.com/dshills/folio/internal/doc"
	"github.com/dshills/folio/internal/textcache"
)

type pageText []string

func (p pageText) TextForPage(page uint32) (string, error) {
	if int(page) >= len(p) {
		return "", errors.New("no such page")
	}
	return p[page], nil
}

type noopPlacer struct{}

func (noopPlacer) CharacterRect(page, index uint32) (doc.Rect, error) {
	return doc.Rect{X2: 1, Y2: 1}, nil
}

func newEngine(t *testing.T, texts ...string) (*Engine, *cursor.Navigator) {
	t.Helper()
	cache := textcache.New(pageText(texts), zerolog.Nop())
	nav := cursor.New(cache, noopPlacer{}, uint32(len(texts)))
	return New(cache, nav, uint32(len(texts))), nav
}

func TestSearchForwardSamePage(t *testing.T) {
	e, nav := newEngine(t, "the proof of the theorem")

	if !e.Search("the", true) {
		t.Fatal("Search should find a match")
	}
	// Starts past the cursor, so skips the match at index 0.
	if nav.Page() != 0 || nav.Index() != 13 {
		t.Errorf("cursor at %d:%d, want 0:13", nav.Page(), nav.Index())
	}
}

func TestSearchForwardCrossesPages(t *testing.T) {
	e, nav := newEngine(t, "nothing here", "also nothing", "theorem 2")

	if !e.Search("theorem", true) {
		t.Fatal("Search should find the match on page 2")
	}
	if nav.Page() != 2 || nav.Index() != 0 {
		t.Errorf("cursor at %d:%d, want 2:0", nav.Page(), nav.Index())
	}
}

func TestSearchBackward(t *testing.T) {
	e, nav := newEngine(t, "alpha beta alpha")

	nav.MoveTo(0, 12)
	if !e.Search("alpha", false) {
		t.Fatal("backward Search should find a match")
	}
	if nav.Index() != 0 {
		t.Errorf("cursor index = %d, want 0", nav.Index())
	}
}

func TestSearchBackwardCrossesPages(t *testing.T) {
	e, nav := newEngine(t, "key here", "nothing")

	nav.MoveTo(1, 3)
	if !e.Search("key", false) {
		t.Fatal("backward Search should find the match on page 0")
	}
	if nav.Page() != 0 || nav.Index() != 0 {
		t.Errorf("cursor at %d:%d, want 0:0", nav.Page(), nav.Index())
	}
}

func TestSearchMissLeavesCursor(t *testing.T) {
	e, nav := newEngine(t, "some text")

	nav.MoveTo(0, 3)
	if e.Search("absent", true) {
		t.Error("Search should miss")
	}
	if nav.Page() != 0 || nav.Index() != 3 {
		t.Errorf("cursor at %d:%d, want unchanged 0:3", nav.Page(), nav.Index())
	}
}

func TestNextPrev(t *testing.T) {
	e, nav := newEngine(t, "ab ab ab")

	if !e.Search("ab", true) {
		t.Fatal("Search should succeed")
	}
	if nav.Index() != 3 {
		t.Fatalf("cursor index = %d, want 3", nav.Index())
	}

	if !e.Next() {
		t.Fatal("Next should succeed")
	}
	if nav.Index() != 6 {
		t.Errorf("cursor index = %d, want 6", nav.Index())
	}

	if !e.Prev() {
		t.Fatal("Prev should succeed")
	}
	if nav.Index() != 3 {
		t.Errorf("cursor index = %d, want 3", nav.Index())
	}

	// Prev does not flip the remembered direction.
	if !e.Next() {
		t.Fatal("Next should still search forward")
	}
	if nav.Index() != 6 {
		t.Errorf("cursor index = %d, want 6", nav.Index())
	}
}

func TestRepeatWithoutSearch(t *testing.T) {
	e, _ := newEngine(t, "text")

	if e.Next() || e.Prev() {
		t.Error("repeat without a prior search should fail")
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	e, _ := newEngine(t, "text")

	if e.Search("", true) {
		t.Error("empty query should fail")
	}
}
