// Package search finds substrings in the cached page text, moving the
// text cursor to matches. Queries walk page by page from the cursor
// toward the document end (or start), without wrapping around.
package search

import (
	"strings"

	"github.com/dshills/folio/internal/cursor"
	"github.com/dshills/folio/internal/textcache"
)

// Engine runs searches and remembers the last query for repeats.
type Engine struct {
	cache      *textcache.Cache
	nav        *cursor.Navigator
	totalPages uint32

	lastQuery   string
	lastForward bool
}

// New creates a search engine over the given cache and cursor.
func New(cache *textcache.Cache, nav *cursor.Navigator, totalPages uint32) *Engine {
	return &Engine{
		cache:      cache,
		nav:        nav,
		totalPages: totalPages,
	}
}

// LastQuery returns the remembered query, empty before any search.
func (e *Engine) LastQuery() string {
	return e.lastQuery
}

// Search looks for query starting just past the cursor and moves the
// cursor onto the first match. The query and direction are remembered
// for Next and Prev. An empty query or a miss leaves the cursor
// unchanged and returns false.
func (e *Engine) Search(query string, forward bool) bool {
	if query == "" {
		return false
	}
	e.lastQuery = query
	e.lastForward = forward
	return e.run(query, forward)
}

// Next repeats the last search in its original direction.
func (e *Engine) Next() bool {
	if e.lastQuery == "" {
		return false
	}
	return e.run(e.lastQuery, e.lastForward)
}

// Prev repeats the last search in the opposite direction. The stored
// direction is left untouched.
func (e *Engine) Prev() bool {
	if e.lastQuery == "" {
		return false
	}
	return e.run(e.lastQuery, !e.lastForward)
}

func (e *Engine) run(query string, forward bool) bool {
	if forward {
		return e.searchForward(query)
	}
	return e.searchBackward(query)
}

func (e *Engine) searchForward(query string) bool {
	page := e.nav.Page()

	// Rest of the cursor's page, past the cursor.
	text := e.cache.Get(page)
	from := int(e.nav.Index()) + 1
	if from <= len(text) {
		if i := strings.Index(text[from:], query); i >= 0 {
			e.nav.MoveTo(page, uint32(from+i))
			return true
		}
	}

	for p := page + 1; p < e.totalPages; p++ {
		if i := strings.Index(e.cache.Get(p), query); i >= 0 {
			e.nav.MoveTo(p, uint32(i))
			return true
		}
	}
	return false
}

func (e *Engine) searchBackward(query string) bool {
	page := e.nav.Page()

	text := e.cache.Get(page)
	to := int(e.nav.Index())
	if to > len(text) {
		to = len(text)
	}
	if i := strings.LastIndex(text[:to], query); i >= 0 {
		e.nav.MoveTo(page, uint32(i))
		return true
	}

	for p := int(page) - 1; p >= 0; p-- {
		if i := strings.LastIndex(e.cache.Get(uint32(p)), query); i >= 0 {
			e.nav.MoveTo(uint32(p), uint32(i))
			return true
		}
	}
	return false
}
