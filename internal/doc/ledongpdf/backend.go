// Package ledongpdf implements the document backend on top of
// github.com/ledongthuc/pdf. The library is extraction-only, so this
// backend serves page geometry and text; rasterization, annotation,
// and outline destinations report doc.ErrUnsupported and the viewer
// degrades accordingly.
package ledongpdf

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/dshills/folio/internal/doc"
)

// Letter-size fallback for pages without a resolvable MediaBox.
const (
	defaultWidth  = 612
	defaultHeight = 792
)

// Backend is a read-only PDF backend.
type Backend struct {
	file   *os.File
	reader *pdf.Reader
	path   string
	sizes  []doc.PageSize

	pages map[uint32]*pageText
}

// New creates an unopened backend.
func New() *Backend {
	return &Backend{pages: make(map[uint32]*pageText)}
}

// Open loads the document at path.
func (b *Backend) Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s: %w", path, doc.ErrNotFound)
	}

	file, reader, err := pdf.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", path, err, doc.ErrInvalidFormat)
	}
	b.file = file
	b.reader = reader
	b.path = path

	n := reader.NumPage()
	b.sizes = make([]doc.PageSize, n)
	for i := 1; i <= n; i++ {
		b.sizes[i-1] = pageSize(reader.Page(i))
	}
	return nil
}

// pageSize resolves a page's MediaBox, falling back to letter size.
func pageSize(p pdf.Page) doc.PageSize {
	box := p.V.Key("MediaBox")
	if box.Kind() != pdf.Array || box.Len() < 4 {
		return doc.PageSize{Width: defaultWidth, Height: defaultHeight}
	}
	x1 := box.Index(0).Float64()
	y1 := box.Index(1).Float64()
	x2 := box.Index(2).Float64()
	y2 := box.Index(3).Float64()

	w, h := x2-x1, y2-y1
	if w <= 0 || h <= 0 {
		return doc.PageSize{Width: defaultWidth, Height: defaultHeight}
	}
	return doc.PageSize{Width: w, Height: h}
}

// Close releases the underlying file.
func (b *Backend) Close() error {
	if b.file == nil {
		return nil
	}
	err := b.file.Close()
	b.file = nil
	return err
}

// Path returns the opened document path.
func (b *Backend) Path() string {
	return b.path
}

// PageCount returns the number of pages.
func (b *Backend) PageCount() uint32 {
	return uint32(len(b.sizes))
}

// PageInfo returns a page's natural size.
func (b *Backend) PageInfo(page uint32) (doc.PageSize, error) {
	if int(page) >= len(b.sizes) {
		return doc.PageSize{}, fmt.Errorf("page %d of %d: %w", page, len(b.sizes), doc.ErrPageOutOfRange)
	}
	return b.sizes[page], nil
}

// RenderPage is not supported by this backend.
func (b *Backend) RenderPage(page uint32, surface doc.Surface, scale float64) error {
	return fmt.Errorf("render page %d: %w", page, doc.ErrUnsupported)
}

// ExtractToc is not supported: the library exposes outline titles but
// not their destination pages, and an outline without targets cannot
// drive navigation.
func (b *Backend) ExtractToc() ([]doc.TocEntry, error) {
	return nil, fmt.Errorf("outline extraction: %w", doc.ErrUnsupported)
}

// TextForPage returns the page's text assembled from content
// fragments in reading order.
func (b *Backend) TextForPage(page uint32) (string, error) {
	pt, err := b.pageText(page)
	if err != nil {
		return "", err
	}
	return pt.text, nil
}

// TextForArea returns the characters whose boxes fall inside rect, in
// text order.
func (b *Backend) TextForArea(page uint32, rect doc.Rect) (string, error) {
	pt, err := b.pageText(page)
	if err != nil {
		return "", err
	}
	var out []byte
	for i := range pt.rects {
		r := pt.rects[i]
		cx, cy := (r.X1+r.X2)/2, (r.Y1+r.Y2)/2
		if rect.Contains(cx, cy) {
			out = append(out, pt.text[i])
		}
	}
	return string(out), nil
}

// CharacterRect returns the bounding box of the character at a byte
// index of the page text.
func (b *Backend) CharacterRect(page uint32, charIndex uint32) (doc.Rect, error) {
	pt, err := b.pageText(page)
	if err != nil {
		return doc.Rect{}, err
	}
	if int(charIndex) >= len(pt.rects) {
		return doc.Rect{}, fmt.Errorf("char %d of %d on page %d: %w",
			charIndex, len(pt.rects), page, doc.ErrPageOutOfRange)
	}
	return pt.rects[charIndex], nil
}

// RenderTextHighlightOverlay is not supported by this backend.
func (b *Backend) RenderTextHighlightOverlay(page uint32, surface doc.Surface, scale float64, rect doc.Rect, glyph, bg doc.Color) error {
	return fmt.Errorf("highlight overlay on page %d: %w", page, doc.ErrUnsupported)
}

// CreateHighlightAnnotation is not supported: the library is
// read-only.
func (b *Backend) CreateHighlightAnnotation(page uint32, rect doc.Rect, color doc.Color, text string) error {
	return fmt.Errorf("annotate page %d: %w", page, doc.ErrUnsupported)
}

// SaveDocument is not supported: the library is read-only.
func (b *Backend) SaveDocument(path string) error {
	return fmt.Errorf("save to %s: %w", path, doc.ErrUnsupported)
}
