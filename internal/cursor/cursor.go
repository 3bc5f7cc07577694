// Package cursor implements the text cursor: a (page, character index)
// position walked over the cached page text by vim-style motions, with
// a derived on-screen position recomputed from the page layout and the
// character's bounding box.
package cursor

import (
	"github.com/dshills/folio/internal/doc"
	"github.com/dshills/folio/internal/layout"
	"github.com/dshills/folio/internal/textcache"
)

// Placer resolves character bounding boxes; the backend implements it.
type Placer interface {
	CharacterRect(page uint32, charIndex uint32) (doc.Rect, error)
}

// findState remembers the last successful find/till for repeats.
type findState struct {
	ch      byte
	forward bool
	till    bool
	valid   bool
}

// Navigator is the text cursor. The invariant maintained by every
// motion: index < len(text) for a non-empty page text, or index == 0
// with the cursor marked not visible on an empty page; page is always
// < totalPages.
type Navigator struct {
	cache      *textcache.Cache
	placer     Placer
	totalPages uint32

	page  uint32
	index uint32

	visible    bool
	screenRect doc.Rect

	lastFind findState
}

// New creates a navigator positioned at page 0, index 0.
func New(cache *textcache.Cache, placer Placer, totalPages uint32) *Navigator {
	return &Navigator{
		cache:      cache,
		placer:     placer,
		totalPages: totalPages,
	}
}

// Page returns the cursor's page.
func (n *Navigator) Page() uint32 {
	return n.page
}

// Index returns the cursor's byte index into the page text.
func (n *Navigator) Index() uint32 {
	return n.index
}

// Visible reports whether the cursor has an on-screen position. It is
// false on pages with no extractable text and after a failed bounding
// box lookup.
func (n *Navigator) Visible() bool {
	return n.visible
}

// ScreenRect returns the cursor's on-screen bounding box as of the
// last Reposition call. Only meaningful while Visible reports true.
func (n *Navigator) ScreenRect() doc.Rect {
	return n.screenRect
}

// Text returns the cached text of the cursor's page.
func (n *Navigator) Text() string {
	return n.cache.Get(n.page)
}

// MoveTo places the cursor on a page, clamping the index into the page
// text. Out-of-range pages are ignored.
func (n *Navigator) MoveTo(page, index uint32) {
	if page >= n.totalPages {
		return
	}
	n.page = page
	text := n.cache.Get(page)
	if len(text) == 0 {
		n.index = 0
		return
	}
	if index >= uint32(len(text)) {
		index = uint32(len(text)) - 1
	}
	n.index = index
}

// Reposition recomputes the on-screen position from the current layout
// and scale. A bounding box lookup failure, or an empty page, marks
// the cursor not visible instead of erroring.
func (n *Navigator) Reposition(grid *layout.Grid, scale float64) {
	n.visible = false

	if len(n.cache.Get(n.page)) == 0 {
		return
	}
	pageRect, ok := grid.PageRect(n.page)
	if !ok {
		return
	}
	charRect, err := n.placer.CharacterRect(n.page, n.index)
	if err != nil {
		return
	}

	n.screenRect = doc.Rect{
		X1: pageRect.X1 + charRect.X1*scale,
		Y1: pageRect.Y1 + charRect.Y1*scale,
		X2: pageRect.X1 + charRect.X2*scale,
		Y2: pageRect.Y1 + charRect.Y2*scale,
	}
	n.visible = true
}

// pageEnd returns the last valid index of a page, 0 for empty text.
func pageEnd(text string) uint32 {
	if len(text) == 0 {
		return 0
	}
	return uint32(len(text)) - 1
}
