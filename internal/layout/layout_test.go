package layout

import (
	"testing"

	"github.com/dshills/folio/internal/doc"
)

func sizes(wh ...float64) []doc.PageSize {
	s := make([]doc.PageSize, 0, len(wh)/2)
	for i := 0; i+1 < len(wh); i += 2 {
		s = append(s, doc.PageSize{Width: wh[i], Height: wh[i+1]})
	}
	return s
}

func TestComputeSinglePage(t *testing.T) {
	g := Compute(Params{
		Sizes:       sizes(600, 800),
		Scale:       1.0,
		PagesPerRow: 1,
	})

	r, ok := g.PageRect(0)
	if !ok {
		t.Fatal("PageRect(0) not found")
	}
	want := doc.Rect{X1: 0, Y1: 0, X2: 600, Y2: 800}
	if r != want {
		t.Errorf("PageRect(0) = %+v, want %+v", r, want)
	}

	w, h := g.TotalSize()
	if w != 600 || h != 800 {
		t.Errorf("TotalSize() = %v, %v, want 600, 800", w, h)
	}
}

func TestComputePairCenteredInViewport(t *testing.T) {
	g := Compute(Params{
		Sizes:         sizes(400, 800, 400, 800),
		Scale:         1.0,
		PagesPerRow:   2,
		ViewportWidth: 1000,
	})

	r0, _ := g.PageRect(0)
	r1, _ := g.PageRect(1)

	if r0.Y1 != 0 || r1.Y1 != 0 {
		t.Errorf("pages sharing a row should share y=0: got %v and %v", r0.Y1, r1.Y1)
	}
	// 800 wide pair centered in a 1000 viewport.
	if r0.X1 != 100 {
		t.Errorf("page 0 x = %v, want 100", r0.X1)
	}
	if r1.X1 != 500 {
		t.Errorf("page 1 x = %v, want 500", r1.X1)
	}
}

func TestComputeMixedWidthRow(t *testing.T) {
	// A page wider than its column slot must not be pushed left of
	// the grid origin; it sits flush at the slot start instead.
	g := Compute(Params{
		Sizes:       sizes(600, 800, 100, 800),
		Scale:       1.0,
		PagesPerRow: 2,
	})

	for page := uint32(0); page < g.PageCount(); page++ {
		r, _ := g.PageRect(page)
		if r.X1 < 0 {
			t.Errorf("page %d x = %v, want >= 0", page, r.X1)
		}
	}

	r0, _ := g.PageRect(0)
	if r0.X1 != 0 {
		t.Errorf("page 0 x = %v, want 0", r0.X1)
	}
	// Narrow page centered in the second 350-wide slot.
	r1, _ := g.PageRect(1)
	if r1.X1 != 475 {
		t.Errorf("page 1 x = %v, want 475", r1.X1)
	}
}

func TestComputeScaleApplied(t *testing.T) {
	g := Compute(Params{
		Sizes:       sizes(600, 800),
		Scale:       2.0,
		PagesPerRow: 1,
	})

	r, _ := g.PageRect(0)
	if r.Width() != 1200 || r.Height() != 1600 {
		t.Errorf("scaled page = %vx%v, want 1200x1600", r.Width(), r.Height())
	}
}

func TestComputePartialFinalRow(t *testing.T) {
	// Two short pages in row 0, one tall page alone in row 1. The tall
	// final row must not overwrite row 0's height, and row 1 must not
	// inherit row 0's.
	g := Compute(Params{
		Sizes:       sizes(100, 100, 100, 100, 100, 300),
		Scale:       1.0,
		PagesPerRow: 2,
	})

	r0, _ := g.PageRect(0)
	r2, _ := g.PageRect(2)

	if r0.Y1 != 0 {
		t.Errorf("row 0 page y = %v, want 0", r0.Y1)
	}
	if r2.Y1 != 100 {
		t.Errorf("row 1 page y = %v, want 100 (stacked below row 0)", r2.Y1)
	}

	_, h := g.TotalSize()
	if h != 400 {
		t.Errorf("TotalSize height = %v, want 400", h)
	}
}

func TestComputeRowVerticalCentering(t *testing.T) {
	// A short page next to a tall one is centered within the row band.
	g := Compute(Params{
		Sizes:       sizes(100, 100, 100, 300),
		Scale:       1.0,
		PagesPerRow: 2,
	})

	r0, _ := g.PageRect(0)
	r1, _ := g.PageRect(1)

	if r1.Y1 != 0 {
		t.Errorf("tall page y = %v, want 0", r1.Y1)
	}
	if r0.Y1 != 100 {
		t.Errorf("short page y = %v, want 100 (centered in 300 band)", r0.Y1)
	}
}

func TestComputeSpacing(t *testing.T) {
	g := Compute(Params{
		Sizes:       sizes(100, 100, 100, 100),
		Scale:       1.0,
		PagesPerRow: 1,
		Spacing:     10,
	})

	r1, _ := g.PageRect(1)
	if r1.Y1 != 110 {
		t.Errorf("second row y = %v, want 110", r1.Y1)
	}
}

func TestComputeEmpty(t *testing.T) {
	g := Compute(Params{Scale: 1.0, PagesPerRow: 1})

	if g.PageCount() != 0 {
		t.Errorf("PageCount() = %d, want 0", g.PageCount())
	}
	if _, ok := g.PageRect(0); ok {
		t.Error("PageRect(0) on empty grid should report not found")
	}
}

func TestRowRange(t *testing.T) {
	g := Compute(Params{
		Sizes:       sizes(100, 100, 100, 100, 100, 100, 100, 100),
		Scale:       1.0,
		PagesPerRow: 2,
	})

	tests := []struct {
		page        uint32
		first, end  uint32
	}{
		{0, 0, 2},
		{1, 0, 2},
		{2, 2, 4},
	}
	for _, tt := range tests {
		first, end := g.RowRange(tt.page)
		if first != tt.first || end != tt.end {
			t.Errorf("RowRange(%d) = %d, %d, want %d, %d", tt.page, first, end, tt.first, tt.end)
		}
	}
}

func TestPageAt(t *testing.T) {
	g := Compute(Params{
		Sizes:         sizes(400, 800, 400, 800),
		Scale:         1.0,
		PagesPerRow:   2,
		ViewportWidth: 1000,
	})

	if page, ok := g.PageAt(150, 400); !ok || page != 0 {
		t.Errorf("PageAt(150,400) = %d, %v, want 0, true", page, ok)
	}
	if page, ok := g.PageAt(600, 400); !ok || page != 1 {
		t.Errorf("PageAt(600,400) = %d, %v, want 1, true", page, ok)
	}
	if _, ok := g.PageAt(50, 400); ok {
		t.Error("PageAt in the centering margin should miss")
	}
}
