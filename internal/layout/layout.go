// Package layout computes the page grid geometry for the viewer: the
// scaled size and position of every page, arranged row-major with a
// configurable number of pages per row.
//
// The computation is pure. It is re-run after every change to scale,
// pages per row, or viewport width; it holds no state beyond its inputs
// and outputs.
package layout

import (
	"github.com/dshills/folio/internal/doc"
)

// Params are the inputs of a layout pass.
type Params struct {
	// Sizes are the natural page sizes, indexed by page number.
	Sizes []doc.PageSize

	// Scale is the current zoom factor applied to every page.
	Scale float64

	// PagesPerRow is the number of grid columns. Values below 1 are
	// treated as 1.
	PagesPerRow uint32

	// ViewportWidth is the available width. A grid narrower than the
	// viewport is horizontally centered within it.
	ViewportWidth float64

	// Spacing is the gap between adjacent pages and between rows.
	Spacing float64
}

// Grid is the computed page layout. The four per-page slices are
// parallel, indexed by page number, and always resized together.
type Grid struct {
	widths  []float64
	heights []float64
	xs      []float64
	ys      []float64

	pagesPerRow uint32
	totalWidth  float64
	totalHeight float64
}

// Compute runs a full two-pass layout.
//
// Pass one measures rows: each row's height is the maximum scaled page
// height in it, each row's width the sum of its scaled page widths plus
// spacing; the widest row becomes the grid width. Pass two places each
// page centered within its column slot and vertically centered within
// its row band. A row's measurements are finalized when the next row
// begins; the final row is finalized unconditionally after the last
// page, so a trailing partial row never inherits a stale height.
func Compute(p Params) *Grid {
	perRow := p.PagesPerRow
	if perRow < 1 {
		perRow = 1
	}

	n := len(p.Sizes)
	g := &Grid{
		widths:      make([]float64, n),
		heights:     make([]float64, n),
		xs:          make([]float64, n),
		ys:          make([]float64, n),
		pagesPerRow: perRow,
	}
	if n == 0 {
		return g
	}

	for i, size := range p.Sizes {
		g.widths[i] = size.Width * p.Scale
		g.heights[i] = size.Height * p.Scale
	}

	// Pass 1: row heights and widths.
	rows := (n + int(perRow) - 1) / int(perRow)
	rowHeights := make([]float64, rows)
	rowWidths := make([]float64, rows)

	row := 0
	var height, width float64
	for i := 0; i < n; i++ {
		r := i / int(perRow)
		if r != row {
			rowHeights[row] = height
			rowWidths[row] = width
			row = r
			height, width = 0, 0
		}
		if g.heights[i] > height {
			height = g.heights[i]
		}
		if width > 0 {
			width += p.Spacing
		}
		width += g.widths[i]
	}
	rowHeights[row] = height
	rowWidths[row] = width

	for _, w := range rowWidths {
		if w > g.totalWidth {
			g.totalWidth = w
		}
	}

	// Pass 2: placement. Slot width divides the grid width evenly
	// between columns; each page sits centered in its slot and centered
	// within its row band.
	left := 0.0
	if p.ViewportWidth > g.totalWidth {
		left = (p.ViewportWidth - g.totalWidth) / 2
	}
	slot := g.totalWidth / float64(perRow)

	top := 0.0
	for i := 0; i < n; i++ {
		r := i / int(perRow)
		col := i % int(perRow)
		if col == 0 && i > 0 {
			top += rowHeights[r-1] + p.Spacing
		}
		// A page wider than its slot sits flush at the slot start;
		// a negative offset would push it left of the grid origin,
		// outside the scrollable area.
		off := (slot - g.widths[i]) / 2
		if off < 0 {
			off = 0
		}
		g.xs[i] = left + float64(col)*slot + off
		g.ys[i] = top + (rowHeights[r]-g.heights[i])/2
	}
	g.totalHeight = top + rowHeights[rows-1]

	return g
}

// PageCount returns the number of laid-out pages.
func (g *Grid) PageCount() uint32 {
	return uint32(len(g.widths))
}

// PagesPerRow returns the column count the grid was computed with.
func (g *Grid) PagesPerRow() uint32 {
	return g.pagesPerRow
}

// TotalSize returns the full grid extent.
func (g *Grid) TotalSize() (width, height float64) {
	return g.totalWidth, g.totalHeight
}

// PageRect returns the scaled on-screen rectangle of a page, and false
// if the page index is out of range.
func (g *Grid) PageRect(page uint32) (doc.Rect, bool) {
	if int(page) >= len(g.widths) {
		return doc.Rect{}, false
	}
	return doc.Rect{
		X1: g.xs[page],
		Y1: g.ys[page],
		X2: g.xs[page] + g.widths[page],
		Y2: g.ys[page] + g.heights[page],
	}, true
}

// RowOf returns the row index of a page.
func (g *Grid) RowOf(page uint32) uint32 {
	return page / g.pagesPerRow
}

// RowRange returns the first and one-past-last page of the row
// containing page, clamped to the page count.
func (g *Grid) RowRange(page uint32) (first, end uint32) {
	first = g.RowOf(page) * g.pagesPerRow
	end = first + g.pagesPerRow
	if n := g.PageCount(); end > n {
		end = n
	}
	return first, end
}

// PageAt returns the page whose rectangle contains the point (x, y).
// Pages are assumed not to overlap; the first hit wins.
func (g *Grid) PageAt(x, y float64) (uint32, bool) {
	for i := range g.widths {
		r, _ := g.PageRect(uint32(i))
		if r.Contains(x, y) {
			return uint32(i), true
		}
	}
	return 0, false
}
