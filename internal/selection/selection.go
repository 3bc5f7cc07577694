// Package selection implements the two selection mechanisms of the
// viewer: pointer-drag rectangle selection with text extraction, and
// keyboard visual-mode selection anchored at the text cursor. Both
// resolve to a normalized rectangle in unscaled page coordinates
// through the same two-point primitive (doc.NewRect).
package selection

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/folio/internal/cursor"
	"github.com/dshills/folio/internal/doc"
	"github.com/dshills/folio/internal/layout"
)

// DragState is the pointer-drag selection state.
type DragState uint8

const (
	// DragNone means no drag selection exists.
	DragNone DragState = iota

	// DragSelecting means the pointer is down and the rectangle is
	// tracking pointer movement.
	DragSelecting

	// DragSelected means the pointer is up and the selection owns its
	// extracted text.
	DragSelected
)

// String returns a human-readable drag state name.
func (s DragState) String() string {
	switch s {
	case DragNone:
		return "none"
	case DragSelecting:
		return "selecting"
	case DragSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Annotator is the slice of the backend contract highlight creation
// needs.
type Annotator interface {
	Path() string
	TextForArea(page uint32, rect doc.Rect) (string, error)
	CreateHighlightAnnotation(page uint32, rect doc.Rect, color doc.Color, text string) error
	SaveDocument(path string) error
}

// Highlight is a highlight created during this session. The list is
// session-local; previously saved highlights are not reloaded.
type Highlight struct {
	ID    string
	Page  uint32
	Rect  doc.Rect
	Color doc.Color
	Text  string
}

// Manager owns both selection mechanisms and highlight creation.
type Manager struct {
	annotator Annotator
	placer    cursor.Placer
	log       zerolog.Logger

	color doc.Color

	dragState        DragState
	startPage        uint32
	startX, startY   float64
	endPage          uint32
	endX, endY       float64
	dragRect         doc.Rect
	dragText         string

	visual      bool
	anchorPage  uint32
	anchorIndex uint32

	highlights []Highlight
}

// New creates a manager. color is the highlight color applied to saved
// highlights.
func New(annotator Annotator, placer cursor.Placer, color doc.Color, log zerolog.Logger) *Manager {
	return &Manager{
		annotator: annotator,
		placer:    placer,
		color:     color,
		log:       log,
	}
}

// SetColor changes the color applied to highlights saved from now on.
func (m *Manager) SetColor(color doc.Color) {
	m.color = color
}

// DragState returns the drag selection state.
func (m *Manager) DragState() DragState {
	return m.dragState
}

// DragPage returns the page the drag selection started on.
func (m *Manager) DragPage() uint32 {
	return m.startPage
}

// DragRect returns the normalized drag rectangle in unscaled page
// coordinates. Only meaningful while the state is not DragNone.
func (m *Manager) DragRect() doc.Rect {
	return m.dragRect
}

// DragText returns the text extracted for the selection. Populated on
// the transition to DragSelected.
func (m *Manager) DragText() string {
	return m.dragText
}

// PointerDown begins a drag selection at the given screen coordinates.
// Any prior selection is discarded. Returns false when the point hits
// no page.
func (m *Manager) PointerDown(g *layout.Grid, scale, screenX, screenY float64) bool {
	page, px, py, ok := hitTest(g, scale, screenX, screenY)
	if !ok {
		m.ClearDrag()
		return false
	}
	m.dragState = DragSelecting
	m.startPage, m.startX, m.startY = page, px, py
	m.endPage, m.endX, m.endY = page, px, py
	m.dragText = ""
	m.dragRect = doc.NewRect(px, py, px, py)
	return true
}

// PointerMove updates the drag endpoint while selecting. Points
// outside every page are ignored.
func (m *Manager) PointerMove(g *layout.Grid, scale, screenX, screenY float64) {
	if m.dragState != DragSelecting {
		return
	}
	page, px, py, ok := hitTest(g, scale, screenX, screenY)
	if !ok {
		return
	}
	m.endPage, m.endX, m.endY = page, px, py
	m.dragRect = doc.NewRect(m.startX, m.startY, m.endX, m.endY)
}

// PointerUp completes the drag selection and extracts its text once.
// Extraction failure is logged and leaves an empty text on the
// selection.
func (m *Manager) PointerUp() {
	if m.dragState != DragSelecting {
		return
	}
	m.dragState = DragSelected

	text, err := m.annotator.TextForArea(m.startPage, m.dragRect)
	if err != nil {
		m.log.Warn().Err(err).Uint32("page", m.startPage).Msg("selection text extraction failed")
		text = ""
	}
	m.dragText = text
}

// ClearDrag discards the drag selection.
func (m *Manager) ClearDrag() {
	m.dragState = DragNone
	m.dragText = ""
	m.dragRect = doc.Rect{}
}

// hitTest maps screen coordinates to (page, unscaled page coords).
// Pages are assumed not to overlap; the first containing page wins.
func hitTest(g *layout.Grid, scale, screenX, screenY float64) (page uint32, x, y float64, ok bool) {
	page, ok = g.PageAt(screenX, screenY)
	if !ok {
		return 0, 0, 0, false
	}
	r, _ := g.PageRect(page)
	return page, (screenX - r.X1) / scale, (screenY - r.Y1) / scale, true
}

// VisualActive reports whether visual mode is on.
func (m *Manager) VisualActive() bool {
	return m.visual
}

// EnterVisual anchors a visual selection at the given cursor position.
func (m *Manager) EnterVisual(page, index uint32) {
	m.visual = true
	m.anchorPage = page
	m.anchorIndex = index
}

// ExitVisual leaves visual mode.
func (m *Manager) ExitVisual() {
	m.visual = false
}

// Anchor returns the visual anchor position.
func (m *Manager) Anchor() (page, index uint32) {
	return m.anchorPage, m.anchorIndex
}

// VisualRect resolves the visual selection rectangle as the union of
// the anchor's and the cursor's character boxes, in unscaled page
// coordinates. It reports false while visual mode is off, when the
// cursor has left the anchor's page (cross-page visual selection is
// out of scope), or when either bounding box lookup fails.
func (m *Manager) VisualRect(curPage, curIndex uint32) (doc.Rect, bool) {
	if !m.visual || curPage != m.anchorPage {
		return doc.Rect{}, false
	}
	anchorRect, err := m.placer.CharacterRect(m.anchorPage, m.anchorIndex)
	if err != nil {
		return doc.Rect{}, false
	}
	curRect, err := m.placer.CharacterRect(curPage, curIndex)
	if err != nil {
		return doc.Rect{}, false
	}
	return anchorRect.Union(curRect), true
}

// SaveHighlight creates a highlight annotation from the completed drag
// selection, saves the document to its derived annotated path, and
// clears the selection. There is no in-memory rollback: a save failure
// is logged and the selection stays cleared. Returns false when no
// completed selection exists or the backend rejects the annotation.
func (m *Manager) SaveHighlight() bool {
	if m.dragState != DragSelected {
		return false
	}

	h := Highlight{
		ID:    uuid.NewString(),
		Page:  m.startPage,
		Rect:  m.dragRect,
		Color: m.color,
		Text:  m.dragText,
	}

	if err := m.annotator.CreateHighlightAnnotation(h.Page, h.Rect, h.Color, h.Text); err != nil {
		m.log.Error().Err(err).Uint32("page", h.Page).Msg("highlight annotation failed")
		m.ClearDrag()
		return false
	}
	m.highlights = append(m.highlights, h)

	out := doc.AnnotatedPath(m.annotator.Path())
	if err := m.annotator.SaveDocument(out); err != nil {
		m.log.Error().Err(err).Str("path", out).Msg("document save failed")
	}

	m.ClearDrag()
	return true
}

// Highlights returns the highlights created this session.
func (m *Manager) Highlights() []Highlight {
	return m.highlights
}
