package doc

// Rect is an axis-aligned rectangle in unscaled page coordinates.
// X1/Y1 is the top-left corner, X2/Y2 the bottom-right.
type Rect struct {
	X1, Y1 float64
	X2, Y2 float64
}

// NewRect returns the normalized rectangle spanning two arbitrary
// corner points.
func NewRect(x1, y1, x2, y2 float64) Rect {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the rectangle width.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the rectangle height.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	u := r
	if other.X1 < u.X1 {
		u.X1 = other.X1
	}
	if other.Y1 < u.Y1 {
		u.Y1 = other.Y1
	}
	if other.X2 > u.X2 {
		u.X2 = other.X2
	}
	if other.Y2 > u.Y2 {
		u.Y2 = other.Y2
	}
	return u
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// PageSize is the natural (unscaled) size of a page.
type PageSize struct {
	Width  float64
	Height float64
}

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// TocEntry is one row of the document outline.
type TocEntry struct {
	// Title is the display text of the entry.
	Title string

	// Page is the zero-based target page.
	Page uint32

	// Level is the outline depth, 0 for root entries.
	Level int
}

// Surface is an opaque drawing target supplied by the front end.
// The core passes it through to the backend untouched.
type Surface interface {
	// Size returns the surface dimensions in device units.
	Size() (width, height int)
}
