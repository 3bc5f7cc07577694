package session

import "github.com/dshills/folio/internal/zoom"

// registerCommands installs the full command vocabulary. Every
// binding in the default keymap and every name accepted on the ':'
// line resolves here.
func (s *Session) registerCommands() {
	r := s.registry

	// Page and scroll navigation.
	r.Register("next-page", func() { s.gotoPage(s.currentPage + 1) })
	r.Register("prev-page", func() {
		if s.currentPage > 0 {
			s.gotoPage(s.currentPage - 1)
		}
	})
	r.Register("first-page", func() { s.gotoPage(0) })
	r.Register("last-page", func() {
		if n := s.PageCount(); n > 0 {
			s.gotoPage(n - 1)
		}
	})
	r.Register("scroll-down", func() { s.scrollCommand(scrollStep, 0) })
	r.Register("scroll-up", func() { s.scrollCommand(-scrollStep, 0) })
	r.Register("scroll-left", func() { s.scrollCommand(0, -scrollStep) })
	r.Register("scroll-right", func() { s.scrollCommand(0, scrollStep) })

	// Zoom.
	r.Register("zoom-in", func() { s.zoom.In(); s.relayout() })
	r.Register("zoom-out", func() { s.zoom.Out(); s.relayout() })
	r.Register("zoom-reset", func() { s.zoom.Reset(); s.relayout() })
	r.Register("fit-page", func() { s.zoom.SetMode(zoom.FitPage); s.relayout() })
	r.Register("fit-width", func() { s.zoom.SetMode(zoom.FitWidth); s.relayout() })

	// Grid shape.
	r.Register("rows-more", func() { s.setPagesPerRow(s.pagesPerRow + 1) })
	r.Register("rows-less", func() {
		if s.pagesPerRow > 1 {
			s.setPagesPerRow(s.pagesPerRow - 1)
		}
	})
	r.Register("single-row", func() { s.setPagesPerRow(1) })
	r.Register("double-row", func() { s.setPagesPerRow(2) })

	// Search.
	r.Register("search-forward", func() { s.ctrl.BeginSearchPrompt(true) })
	r.Register("search-backward", func() { s.ctrl.BeginSearchPrompt(false) })
	r.Register("search-next", func() {
		if s.finder.Next() {
			s.revealCursor()
		}
	})
	r.Register("search-prev", func() {
		if s.finder.Prev() {
			s.revealCursor()
		}
	})

	// Table of contents.
	r.Register("toc-toggle", func() { s.toc.Toggle() })
	r.Register("toc-next", func() { s.toc.Next() })
	r.Register("toc-prev", func() { s.toc.Prev() })
	r.Register("toc-select", func() {
		if page, ok := s.toc.Select(); ok {
			s.gotoPage(page)
		}
	})

	// Text cursor motions.
	r.Register("cursor-left", s.motion(s.nav.Left))
	r.Register("cursor-right", s.motion(s.nav.Right))
	r.Register("cursor-up", s.motion(s.nav.Up))
	r.Register("cursor-down", s.motion(s.nav.Down))
	r.Register("word-next", s.motion(s.nav.WordNext))
	r.Register("word-back", s.motion(s.nav.WordBack))
	r.Register("word-end", s.motion(s.nav.WordEnd))
	r.Register("line-start", s.motion(s.nav.LineStart))
	r.Register("line-end", s.motion(s.nav.LineEnd))
	r.Register("repeat-find", s.motion(s.nav.RepeatFind))
	r.Register("repeat-find-back", s.motion(s.nav.RepeatFindReverse))

	// Selections and highlights.
	r.Register("visual-toggle", func() {
		if s.sel.VisualActive() {
			s.sel.ExitVisual()
			return
		}
		s.sel.EnterVisual(s.nav.Page(), s.nav.Index())
	})
	r.Register("save-highlight", func() { s.sel.SaveHighlight() })
	r.Register("clear-selection", func() {
		s.sel.ClearDrag()
		s.sel.ExitVisual()
	})

	// Front-end and mode commands.
	r.Register("command-mode", func() { s.ctrl.BeginCommandPrompt() })
	r.Register("quit", func() {
		if s.hooks.Quit != nil {
			s.hooks.Quit()
		}
	})
	r.Register("refresh", func() {
		s.relayout()
		if s.hooks.Refresh != nil {
			s.hooks.Refresh()
		}
	})
	r.Register("fullscreen", func() {
		if s.hooks.ToggleFullscreen != nil {
			s.hooks.ToggleFullscreen()
		}
	})
}

// scrollCommand is a discrete keyboard scroll: move and settle in one
// step.
func (s *Session) scrollCommand(dTop, dLeft float64) {
	s.Scroll(dTop, dLeft)
	s.Settle()
}

func (s *Session) setPagesPerRow(n uint32) {
	if n < 1 {
		n = 1
	}
	page := s.currentPage
	s.pagesPerRow = n
	s.relayout()
	s.gotoPage(page)
}

// motion wraps a cursor motion in a reveal of the resulting position.
func (s *Session) motion(move func() bool) func() {
	return func() {
		if move() {
			s.revealCursor()
		}
	}
}
