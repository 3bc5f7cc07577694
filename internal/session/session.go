// Package session composes the viewer: one open document, its layout
// grid, viewport, zoom state, text cursor, selections, search, table
// of contents, and the modal input controller, glued together by the
// command registry.
//
// A session is single threaded. The front end delivers key, pointer,
// scroll, and resize notifications one at a time; nothing here may be
// called concurrently.
package session

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"github.com/dshills/folio/internal/command"
	"github.com/dshills/folio/internal/config"
	"github.com/dshills/folio/internal/cursor"
	"github.com/dshills/folio/internal/doc"
	"github.com/dshills/folio/internal/input/key"
	"github.com/dshills/folio/internal/input/keymap"
	"github.com/dshills/folio/internal/input/mode"
	"github.com/dshills/folio/internal/layout"
	"github.com/dshills/folio/internal/search"
	"github.com/dshills/folio/internal/selection"
	"github.com/dshills/folio/internal/textcache"
	"github.com/dshills/folio/internal/toc"
	"github.com/dshills/folio/internal/view"
	"github.com/dshills/folio/internal/zoom"
)

// scrollStep is the distance of one keyboard scroll command, in
// screen units.
const scrollStep = 60.0

// Hooks are the front-end callbacks the session invokes for commands
// it cannot satisfy itself. Nil hooks are skipped.
type Hooks struct {
	Quit             func()
	Refresh          func()
	ToggleFullscreen func()
}

// Session is one open document and all its interaction state.
type Session struct {
	log     zerolog.Logger
	backend doc.Backend
	hooks   Hooks

	sizes       []doc.PageSize
	spacing     float64
	pagesPerRow uint32

	zoom     *zoom.Controller
	grid     *layout.Grid
	view     *view.State
	cache    *textcache.Cache
	nav      *cursor.Navigator
	sel      *selection.Manager
	finder   *search.Engine
	toc      *toc.Navigator
	registry *command.Registry
	ctrl     *mode.Controller

	currentPage uint32
	pageDirty   bool
	closed      bool
}

// New opens the document at path and builds a session around it. An
// open failure is fatal: the session is not created.
func New(backend doc.Backend, path string, cfg config.Config, hooks Hooks, log zerolog.Logger) (*Session, error) {
	if err := backend.Open(path); err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	n := backend.PageCount()
	sizes := make([]doc.PageSize, n)
	for p := uint32(0); p < n; p++ {
		info, err := backend.PageInfo(p)
		if err != nil {
			log.Warn().Err(err).Uint32("page", p).Msg("page geometry unavailable, using letter size")
			info = doc.PageSize{Width: 612, Height: 792}
		}
		sizes[p] = info
	}

	s := &Session{
		log:         log,
		backend:     backend,
		hooks:       hooks,
		sizes:       sizes,
		spacing:     cfg.Viewer.PageSpacing,
		pagesPerRow: cfg.Viewer.PagesPerRow,
		zoom:        zoom.New(),
		view:        view.New(0, 0),
	}

	s.cache = textcache.New(backend, log)
	s.nav = cursor.New(s.cache, backend, n)
	s.sel = selection.New(backend, backend, cfg.HighlightColor(), log)
	s.finder = search.New(s.cache, s.nav, n)
	s.toc = toc.New(backend, n, log)

	s.registry = command.NewRegistry(log)
	s.registerCommands()

	km := keymap.Default()
	s.ctrl = mode.NewController(km, s.registry, s, s, s.toc, log)
	s.ApplyRemap(cfg.Remap)

	s.relayout()
	return s, nil
}

// Close releases the document. Safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.backend.Close()
}

// Grid returns the current layout grid.
func (s *Session) Grid() *layout.Grid {
	return s.grid
}

// View returns the viewport state.
func (s *Session) View() *view.State {
	return s.view
}

// Zoom returns the zoom controller.
func (s *Session) Zoom() *zoom.Controller {
	return s.zoom
}

// Cursor returns the text cursor navigator.
func (s *Session) Cursor() *cursor.Navigator {
	return s.nav
}

// Selection returns the selection manager.
func (s *Session) Selection() *selection.Manager {
	return s.sel
}

// Toc returns the table-of-contents navigator.
func (s *Session) Toc() *toc.Navigator {
	return s.toc
}

// Controller returns the modal input controller.
func (s *Session) Controller() *mode.Controller {
	return s.ctrl
}

// CurrentPage returns the page occupying most of the viewport.
func (s *Session) CurrentPage() uint32 {
	return s.currentPage
}

// PageCount returns the document's page count.
func (s *Session) PageCount() uint32 {
	return uint32(len(s.sizes))
}

// relayout recomputes the grid after any change to scale, pages per
// row, or viewport size, then re-clamps the scroll window and
// repositions the cursor against the new geometry.
func (s *Session) relayout() {
	s.rederiveZoom()
	scale := s.zoom.Scale()
	s.grid = layout.Compute(layout.Params{
		Sizes:         s.sizes,
		Scale:         scale,
		PagesPerRow:   s.pagesPerRow,
		ViewportWidth: s.view.Width(),
		Spacing:       s.spacing * scale,
	})
	s.view.ScrollBy(s.grid, 0, 0)
	s.nav.Reposition(s.grid, scale)
	s.updateCurrentPage()
}

// rederiveZoom recomputes the fit-mode scale from the current page's
// row of natural sizes. A no-op outside fit modes.
func (s *Session) rederiveZoom() {
	if s.zoom.Mode() == zoom.FitNone || len(s.sizes) == 0 {
		return
	}
	perRow := s.pagesPerRow
	if perRow < 1 {
		perRow = 1
	}
	current := s.currentPage
	if current >= uint32(len(s.sizes)) {
		current = uint32(len(s.sizes)) - 1
	}
	first := (current / perRow) * perRow
	end := first + perRow
	if end > uint32(len(s.sizes)) {
		end = uint32(len(s.sizes))
	}
	s.zoom.Rederive(s.sizes[first:end], s.sizes[current], s.spacing, s.view.Width(), s.view.Height())
}

func (s *Session) updateCurrentPage() {
	prev := s.currentPage
	s.currentPage = s.view.CurrentPage(s.grid)
	if s.currentPage != prev {
		s.log.Debug().Uint32("page", s.currentPage).Msg("current page changed")
	}
}

// Resize updates the viewport size and relays out.
func (s *Session) Resize(width, height float64) {
	s.view.Resize(width, height)
	s.relayout()
}

// Scroll moves the scroll window by a delta. The current page is
// recomputed lazily by Settle so a burst of scroll events pays for
// one recomputation.
func (s *Session) Scroll(dTop, dLeft float64) {
	s.view.ScrollBy(s.grid, dTop, dLeft)
	s.pageDirty = true
}

// Settle finishes a scroll burst: recomputes the current page and,
// when a fit mode is active and the page's row changed, the fit scale.
func (s *Session) Settle() {
	if !s.pageDirty {
		return
	}
	s.pageDirty = false
	prev := s.currentPage
	s.currentPage = s.view.CurrentPage(s.grid)
	if s.currentPage != prev && s.zoom.Mode() != zoom.FitNone {
		s.relayout()
	}
}

// HandleKey routes one key event through the modal controller.
func (s *Session) HandleKey(e key.Event) {
	s.ctrl.HandleKey(e)
}

// PointerDown begins a drag selection at viewport coordinates.
func (s *Session) PointerDown(x, y float64) {
	s.sel.PointerDown(s.grid, s.zoom.Scale(), x+s.view.ScrollLeft(), y+s.view.ScrollTop())
}

// PointerMove extends the drag selection at viewport coordinates.
func (s *Session) PointerMove(x, y float64) {
	s.sel.PointerMove(s.grid, s.zoom.Scale(), x+s.view.ScrollLeft(), y+s.view.ScrollTop())
}

// PointerUp completes the drag selection.
func (s *Session) PointerUp() {
	s.sel.PointerUp()
}

// Find implements mode.Finder: a resolved f/F motion, then a cursor
// reveal.
func (s *Session) Find(ch byte, forward bool) bool {
	if !s.nav.Find(ch, forward) {
		return false
	}
	s.revealCursor()
	return true
}

// Till implements mode.Finder: a resolved t/T motion, then a cursor
// reveal.
func (s *Session) Till(ch byte, forward bool) bool {
	if !s.nav.Till(ch, forward) {
		return false
	}
	s.revealCursor()
	return true
}

// Search implements mode.Searcher for the '/' and '?' prompts.
func (s *Session) Search(query string, forward bool) bool {
	if !s.finder.Search(query, forward) {
		return false
	}
	s.revealCursor()
	return true
}

// gotoPage scrolls the viewport to the top of a page's row.
func (s *Session) gotoPage(page uint32) {
	if len(s.sizes) == 0 {
		return
	}
	if page >= uint32(len(s.sizes)) {
		page = uint32(len(s.sizes)) - 1
	}
	s.view.ScrollToPage(s.grid, page)
	prev := s.currentPage
	s.currentPage = s.view.CurrentPage(s.grid)
	if s.currentPage != prev && s.zoom.Mode() != zoom.FitNone {
		s.relayout()
	}
}

// revealCursor repositions the cursor against the grid and scrolls
// just enough to bring its box into the viewport.
func (s *Session) revealCursor() {
	s.nav.Reposition(s.grid, s.zoom.Scale())
	if !s.nav.Visible() {
		s.gotoPage(s.nav.Page())
		return
	}

	r := s.nav.ScreenRect()
	top, left := s.view.ScrollTop(), s.view.ScrollLeft()
	bottom := top + s.view.Height()
	right := left + s.view.Width()

	switch {
	case r.Y1 < top:
		top = r.Y1
	case r.Y2 > bottom:
		top += r.Y2 - bottom
	}
	switch {
	case r.X1 < left:
		left = r.X1
	case r.X2 > right:
		left += r.X2 - right
	}
	s.view.SetScroll(s.grid, top, left)

	prev := s.currentPage
	s.currentPage = s.view.CurrentPage(s.grid)
	if s.currentPage != prev && s.zoom.Mode() != zoom.FitNone {
		s.relayout()
	}
}

// ApplyRemap rebinds keys from a remap table. Bad key specs and
// unknown commands are logged and skipped; the rest apply.
func (s *Session) ApplyRemap(remap map[string]string) {
	for spec, cmd := range remap {
		if err := s.Remap(spec, cmd); err != nil {
			s.log.Warn().Err(err).Str("keys", spec).Str("command", cmd).Msg("remap skipped")
		}
	}
}

// Remap binds a key spec to a command by name.
func (s *Session) Remap(spec, cmd string) error {
	if !s.registry.Known(cmd) {
		return fmt.Errorf("unknown command %q", cmd)
	}
	return s.ctrl.Keymap().Bind(spec, cmd)
}

// SetOption applies a named runtime option, for the rc script and the
// config watcher.
func (s *Session) SetOption(name, value string) error {
	switch name {
	case "pagesPerRow":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil || n < 1 {
			return fmt.Errorf("pagesPerRow %q: want a positive integer", value)
		}
		s.pagesPerRow = uint32(n)
		s.relayout()
	case "pageSpacing":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("pageSpacing %q: want a non-negative number", value)
		}
		s.spacing = f
		s.relayout()
	case "highlightColor":
		c, err := colorful.Hex(value)
		if err != nil {
			return fmt.Errorf("highlightColor %q: %w", value, err)
		}
		s.sel.SetColor(doc.Color{R: c.R, G: c.G, B: c.B})
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}
