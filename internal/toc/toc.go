// Package toc holds the table-of-contents navigator: a leveled outline
// extracted lazily from the document, a selection index, and a
// hidden/visible display mode.
package toc

import (
	"github.com/rs/zerolog"

	"github.com/dshills/folio/internal/doc"
)

// Extractor is the slice of the backend contract the navigator needs.
type Extractor interface {
	ExtractToc() ([]doc.TocEntry, error)
}

// Navigator owns the outline state. Entries are extracted once, on the
// first toggle, and cached for the session in extraction order.
type Navigator struct {
	extractor  Extractor
	totalPages uint32
	log        zerolog.Logger

	entries   []doc.TocEntry
	extracted bool
	visible   bool
	selected  int
}

// New creates a hidden navigator with no entries extracted yet.
func New(extractor Extractor, totalPages uint32, log zerolog.Logger) *Navigator {
	return &Navigator{
		extractor:  extractor,
		totalPages: totalPages,
		log:        log,
	}
}

// Visible reports whether the TOC overlay is showing.
func (n *Navigator) Visible() bool {
	return n.visible
}

// Entries returns the outline, nil before the first toggle or for
// documents without one. Target pages are clamped into the document.
func (n *Navigator) Entries() []doc.TocEntry {
	return n.entries
}

// Selected returns the selection index.
func (n *Navigator) Selected() int {
	return n.selected
}

// Toggle shows or hides the TOC. The first show extracts the outline;
// an extraction failure, or an empty outline, is logged and leaves the
// TOC hidden.
func (n *Navigator) Toggle() {
	if n.visible {
		n.visible = false
		return
	}

	if !n.extracted {
		n.extract()
	}
	if len(n.entries) == 0 {
		return
	}
	n.visible = true
}

func (n *Navigator) extract() {
	n.extracted = true

	entries, err := n.extractor.ExtractToc()
	if err != nil {
		n.log.Warn().Err(err).Msg("outline extraction failed")
		return
	}
	for i := range entries {
		if entries[i].Page >= n.totalPages && n.totalPages > 0 {
			entries[i].Page = n.totalPages - 1
		}
	}
	n.entries = entries
}

// Next moves the selection down, clamped at the last entry.
func (n *Navigator) Next() {
	if n.selected < len(n.entries)-1 {
		n.selected++
	}
}

// Prev moves the selection up, clamped at the first entry.
func (n *Navigator) Prev() {
	if n.selected > 0 {
		n.selected--
	}
}

// Select returns the selected entry's target page and hides the TOC.
// Reports false while hidden or without entries.
func (n *Navigator) Select() (uint32, bool) {
	if !n.visible || len(n.entries) == 0 {
		return 0, false
	}
	n.visible = false
	return n.entries[n.selected].Page, true
}
