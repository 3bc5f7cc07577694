package ledongpdf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/dshills/folio/internal/doc"
)

// pageText holds a page's extracted text with one bounding box per
// byte of the text.
type pageText struct {
	text  string
	rects []doc.Rect
}

// pageText extracts and memoizes the text of a page.
func (b *Backend) pageText(page uint32) (*pageText, error) {
	if pt, ok := b.pages[page]; ok {
		return pt, nil
	}
	if int(page) >= len(b.sizes) {
		return nil, fmt.Errorf("page %d of %d: %w", page, len(b.sizes), doc.ErrPageOutOfRange)
	}

	pt, err := extractPage(b.reader.Page(int(page)+1), b.sizes[page])
	if err != nil {
		return nil, fmt.Errorf("page %d: %v: %w", page, err, doc.ErrExtraction)
	}
	b.pages[page] = pt
	return pt, nil
}

// extractPage assembles a page's content fragments into text with
// per-byte boxes. Fragments are ordered top to bottom, then left to
// right, with a newline inserted at each baseline change. PDF
// coordinates grow upward, so boxes are flipped to the viewer's
// top-left origin here.
func extractPage(p pdf.Page, size doc.PageSize) (pt *pageText, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content stream: %v", r)
		}
	}()

	texts := p.Content().Text
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var sb strings.Builder
	var rects []doc.Rect
	lastY := -1.0

	for _, frag := range texts {
		if frag.S == "" {
			continue
		}
		if lastY >= 0 && frag.Y != lastY {
			// Newline markers carry a zero-width box at the end of
			// the previous line so cursor motions can land on them.
			sb.WriteByte('\n')
			rects = append(rects, endOfLineRect(rects))
		}
		lastY = frag.Y

		runes := []rune(frag.S)
		advance := frag.W / float64(len(runes))
		x := frag.X
		top := size.Height - frag.Y - frag.FontSize
		bottom := size.Height - frag.Y
		for _, r := range runes {
			box := doc.NewRect(x, top, x+advance, bottom)
			for n := len(string(r)); n > 0; n-- {
				rects = append(rects, box)
			}
			x += advance
		}
		sb.WriteString(string(runes))
	}

	return &pageText{text: sb.String(), rects: rects}, nil
}

func endOfLineRect(rects []doc.Rect) doc.Rect {
	if len(rects) == 0 {
		return doc.Rect{}
	}
	last := rects[len(rects)-1]
	return doc.NewRect(last.X2, last.Y1, last.X2, last.Y2)
}
