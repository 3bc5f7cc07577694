// Package textcache memoizes per-page extracted text.
//
// Extraction is pull-based: a page's text is fetched from the backend
// the first time a cursor motion or search touches it, then kept for
// the rest of the session. Entries are immutable once populated; the
// document's page content never changes within a session, only its
// annotations.
package textcache

import (
	"github.com/rs/zerolog"
)

// Extractor is the slice of the backend contract the cache consumes.
type Extractor interface {
	TextForPage(page uint32) (string, error)
}

// Cache holds the per-page text, keyed by page number.
type Cache struct {
	extractor Extractor
	pages     map[uint32]string
	log       zerolog.Logger
}

// New creates an empty cache backed by the given extractor.
func New(extractor Extractor, log zerolog.Logger) *Cache {
	return &Cache{
		extractor: extractor,
		pages:     make(map[uint32]string),
		log:       log,
	}
}

// Get returns the text of a page, extracting and caching it on first
// access. An extraction failure is logged and cached as empty text;
// downstream motions treat empty text as "no motion possible".
func (c *Cache) Get(page uint32) string {
	if text, ok := c.pages[page]; ok {
		return text
	}

	text, err := c.extractor.TextForPage(page)
	if err != nil {
		c.log.Warn().Err(err).Uint32("page", page).Msg("text extraction failed")
		text = ""
	}
	c.pages[page] = text
	return text
}

// Populated reports whether a page's text has been extracted yet.
func (c *Cache) Populated(page uint32) bool {
	_, ok := c.pages[page]
	return ok
}

// Len returns the number of cached pages.
func (c *Cache) Len() int {
	return len(c.pages)
}
