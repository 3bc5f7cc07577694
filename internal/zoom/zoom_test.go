package zoom

import (
	"math"
	"testing"

	"github.com/dshills/folio/internal/doc"
)

func TestManualZoomStep(t *testing.T) {
	c := New()

	if got := c.In(); math.Abs(got-1.2) > 1e-9 {
		t.Errorf("In() = %v, want 1.2", got)
	}
	if got := c.Out(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Out() = %v, want 1.0", got)
	}
}

func TestZoomSaturationIdempotent(t *testing.T) {
	c := New()

	for i := 0; i < 50; i++ {
		c.In()
	}
	if c.Scale() != MaxScale {
		t.Errorf("Scale() = %v, want saturated %v", c.Scale(), MaxScale)
	}
	if got := c.In(); got != MaxScale {
		t.Errorf("In() at saturation = %v, want %v", got, MaxScale)
	}

	for i := 0; i < 50; i++ {
		c.Out()
	}
	if c.Scale() != MinScale {
		t.Errorf("Scale() = %v, want saturated %v", c.Scale(), MinScale)
	}
	if got := c.Out(); got != MinScale {
		t.Errorf("Out() at saturation = %v, want %v", got, MinScale)
	}
}

func TestManualZoomCancelsFitMode(t *testing.T) {
	c := New()
	c.SetMode(FitWidth)

	c.In()
	if c.Mode() != FitNone {
		t.Errorf("Mode() = %v after manual zoom, want FitNone", c.Mode())
	}

	c.SetMode(FitPage)
	c.Reset()
	if c.Mode() != FitNone {
		t.Errorf("Mode() = %v after reset, want FitNone", c.Mode())
	}
	if c.Scale() != 1.0 {
		t.Errorf("Scale() = %v after reset, want 1.0", c.Scale())
	}
}

func TestFitPage(t *testing.T) {
	c := New()
	c.SetMode(FitPage)

	row := []doc.PageSize{{Width: 600, Height: 800}}
	got := c.Rederive(row, row[0], 0, 1200, 1200)

	// Height is the binding constraint: 1200/800 = 1.5.
	if math.Abs(got-1.5) > 1e-9 {
		t.Errorf("Rederive() = %v, want 1.5", got)
	}
}

func TestFitWidthWithSpacing(t *testing.T) {
	c := New()
	c.SetMode(FitWidth)

	row := []doc.PageSize{{Width: 400, Height: 800}, {Width: 400, Height: 800}}
	got := c.Rederive(row, row[0], 10, 810, 600)

	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Rederive() = %v, want 1.0", got)
	}
}

func TestFitWidthEmptyRowFallback(t *testing.T) {
	c := New()
	c.SetMode(FitWidth)

	got := c.Rederive(nil, doc.PageSize{Width: 500, Height: 700}, 0, 1000, 1000)
	if math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Rederive() = %v, want 2.0 from current page fallback", got)
	}
}

func TestFitScaleClamped(t *testing.T) {
	c := New()
	c.SetMode(FitWidth)

	row := []doc.PageSize{{Width: 10, Height: 10}}
	if got := c.Rederive(row, row[0], 0, 1e6, 1e6); got != MaxScale {
		t.Errorf("Rederive() huge viewport = %v, want clamp to %v", got, MaxScale)
	}

	if got := c.Rederive(row, row[0], 0, 0.1, 0.1); got != MinScale {
		t.Errorf("Rederive() tiny viewport = %v, want clamp to %v", got, MinScale)
	}
}

func TestFitModePersistsAcrossRederive(t *testing.T) {
	c := New()
	c.SetMode(FitPage)

	row := []doc.PageSize{{Width: 600, Height: 800}}
	c.Rederive(row, row[0], 0, 600, 800)
	c.Rederive(row, row[0], 0, 1200, 1600)

	if c.Mode() != FitPage {
		t.Errorf("Mode() = %v, want FitPage to persist across rederive", c.Mode())
	}
}
