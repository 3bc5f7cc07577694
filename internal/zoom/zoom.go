// Package zoom manages the viewer scale: manual stepped zoom plus the
// fit-to-page and fit-to-width modes that re-derive scale from the
// current page row on every layout pass.
package zoom

import "github.com/dshills/folio/internal/doc"

// Scale bounds and the manual zoom step.
const (
	MinScale = 0.1
	MaxScale = 5.0
	Step     = 1.2
)

// FitMode selects how scale is derived.
type FitMode uint8

const (
	// FitNone keeps the manually chosen scale.
	FitNone FitMode = iota

	// FitPage scales the current row to fit both viewport dimensions.
	FitPage

	// FitWidth scales the current row to fill the viewport width.
	FitWidth
)

// String returns a human-readable fit mode name.
func (m FitMode) String() string {
	switch m {
	case FitNone:
		return "none"
	case FitPage:
		return "page"
	case FitWidth:
		return "width"
	default:
		return "unknown"
	}
}

// Controller holds the scale state. While a fit mode is active the
// scale is a derived value, recomputed by Rederive before every layout
// pass; any manual zoom command cancels the fit mode.
type Controller struct {
	scale float64
	mode  FitMode
}

// New creates a controller at scale 1.0 with no fit mode.
func New() *Controller {
	return &Controller{scale: 1.0, mode: FitNone}
}

// Scale returns the current scale.
func (c *Controller) Scale() float64 {
	return c.scale
}

// Mode returns the active fit mode.
func (c *Controller) Mode() FitMode {
	return c.mode
}

// In zooms in by one step. Cancels any fit mode.
func (c *Controller) In() float64 {
	c.mode = FitNone
	c.scale = clampScale(c.scale * Step)
	return c.scale
}

// Out zooms out by one step. Cancels any fit mode.
func (c *Controller) Out() float64 {
	c.mode = FitNone
	c.scale = clampScale(c.scale / Step)
	return c.scale
}

// Reset restores scale 1.0 and cancels any fit mode.
func (c *Controller) Reset() float64 {
	c.mode = FitNone
	c.scale = 1.0
	return c.scale
}

// SetMode activates a fit mode. The scale takes effect on the next
// Rederive call.
func (c *Controller) SetMode(mode FitMode) {
	c.mode = mode
}

// Rederive recomputes the scale for the active fit mode from the
// natural sizes of the current page's row. currentPage is the size of
// the current page itself, used as a fallback when the row is empty or
// malformed. Returns the (possibly unchanged) scale.
func (c *Controller) Rederive(row []doc.PageSize, currentPage doc.PageSize, spacing, availWidth, availHeight float64) float64 {
	switch c.mode {
	case FitPage:
		var width, height float64
		for _, p := range row {
			width += p.Width
			if p.Height > height {
				height = p.Height
			}
		}
		if width <= 0 {
			width = currentPage.Width
		}
		if height <= 0 {
			height = currentPage.Height
		}
		if width > 0 && height > 0 {
			c.scale = clampScale(min(availWidth/width, availHeight/height))
		}
	case FitWidth:
		var width float64
		for _, p := range row {
			width += p.Width
		}
		if len(row) > 1 {
			width += spacing * float64(len(row)-1)
		}
		if width <= 0 {
			width = currentPage.Width
		}
		if width > 0 {
			c.scale = clampScale(availWidth / width)
		}
	}
	return c.scale
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
