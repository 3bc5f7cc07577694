// Package view tracks the viewport: scroll offsets, viewport size, and
// which pages of the layout grid are currently visible.
//
// The state is mutated only by toolkit notifications (scroll, resize)
// relayed through the session; the layout engine reads it and never
// writes it.
package view

import "github.com/dshills/folio/internal/layout"

// State is the viewport state.
type State struct {
	scrollTop  float64
	scrollLeft float64
	width      float64
	height     float64
}

// New creates a viewport with the given size.
func New(width, height float64) *State {
	return &State{width: width, height: height}
}

// ScrollTop returns the vertical scroll offset.
func (s *State) ScrollTop() float64 {
	return s.scrollTop
}

// ScrollLeft returns the horizontal scroll offset.
func (s *State) ScrollLeft() float64 {
	return s.scrollLeft
}

// Width returns the viewport width.
func (s *State) Width() float64 {
	return s.width
}

// Height returns the viewport height.
func (s *State) Height() float64 {
	return s.height
}

// Resize updates the viewport size.
func (s *State) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width = width
	s.height = height
}

// SetScroll moves the scroll offsets, clamped to the grid extent.
func (s *State) SetScroll(g *layout.Grid, top, left float64) {
	totalW, totalH := g.TotalSize()
	s.scrollTop = clamp(top, 0, max(0, totalH-s.height))
	s.scrollLeft = clamp(left, 0, max(0, totalW-s.width))
}

// ScrollBy moves the scroll offsets by a delta, clamped to the grid
// extent.
func (s *State) ScrollBy(g *layout.Grid, dTop, dLeft float64) {
	s.SetScroll(g, s.scrollTop+dTop, s.scrollLeft+dLeft)
}

// ScrollToPage positions the scroll window at the top of a page's row.
func (s *State) ScrollToPage(g *layout.Grid, page uint32) {
	r, ok := g.PageRect(page)
	if !ok {
		return
	}
	s.SetScroll(g, r.Y1, s.scrollLeft)
}

// VisibleRange returns the first and last page intersecting the scroll
// window. ok is false when no page is visible.
func (s *State) VisibleRange(g *layout.Grid) (first, last uint32, ok bool) {
	bottom := s.scrollTop + s.height
	found := false
	for page := uint32(0); page < g.PageCount(); page++ {
		r, _ := g.PageRect(page)
		if r.Y2 <= s.scrollTop || r.Y1 >= bottom {
			continue
		}
		if !found {
			first = page
			found = true
		}
		last = page
	}
	return first, last, found
}

// CurrentPage returns the page with the greatest visible height inside
// the scroll window, preferring the lower index on ties. Returns 0 when
// nothing is visible.
func (s *State) CurrentPage(g *layout.Grid) uint32 {
	first, last, ok := s.VisibleRange(g)
	if !ok {
		return 0
	}

	bottom := s.scrollTop + s.height
	best := first
	bestOverlap := -1.0
	for page := first; page <= last; page++ {
		r, _ := g.PageRect(page)
		overlap := min(r.Y2, bottom) - max(r.Y1, s.scrollTop)
		if overlap > bestOverlap {
			best = page
			bestOverlap = overlap
		}
	}
	return best
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
