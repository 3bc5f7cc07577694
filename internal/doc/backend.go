package doc

// Backend is the document collaborator consumed by the viewer core.
// Implementations own the underlying document handle; Close releases it.
//
// All page indices are zero-based. Rectangles are in unscaled page
// coordinates. Operations a backend cannot perform return ErrUnsupported.
type Backend interface {
	// Open loads the document at path. It must be called exactly once
	// before any other method. Failures are fatal to session
	// construction: ErrNotFound or ErrInvalidFormat.
	Open(path string) error

	// Close releases the document handle. Safe to call once after Open.
	Close() error

	// Path returns the path the document was opened from.
	Path() string

	// PageCount returns the number of pages.
	PageCount() uint32

	// PageInfo returns the natural size of a page.
	PageInfo(page uint32) (PageSize, error)

	// RenderPage rasterizes a page onto the surface at the given scale.
	RenderPage(page uint32, surface Surface, scale float64) error

	// ExtractToc returns the document outline in display order. A
	// document without an outline yields a nil slice and no error.
	ExtractToc() ([]TocEntry, error)

	// TextForPage returns the plain text of a page.
	TextForPage(page uint32) (string, error)

	// TextForArea returns the text inside rect on a page.
	TextForArea(page uint32, rect Rect) (string, error)

	// CharacterRect returns the bounding box of the character at the
	// given byte index of the page's extracted text.
	CharacterRect(page uint32, charIndex uint32) (Rect, error)

	// RenderTextHighlightOverlay paints a highlight rectangle over the
	// rendered page.
	RenderTextHighlightOverlay(page uint32, surface Surface, scale float64, rect Rect, glyph, bg Color) error

	// CreateHighlightAnnotation adds a highlight annotation to a page.
	CreateHighlightAnnotation(page uint32, rect Rect, color Color, text string) error

	// SaveDocument writes the document, including added annotations,
	// to path.
	SaveDocument(path string) error
}
